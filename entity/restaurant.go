package entity

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant statuses. Block/unblock is admin-only and reversible;
// the reason is kept while blocked.
const (
	RestaurantActive  = "active"
	RestaurantBlocked = "blocked"
	RestaurantTrial   = "trial"
)

type Restaurant struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"size:50;uniqueIndex;not null" json:"slug"`

	OwnerName      string `json:"ownerName"`
	Phone          string `json:"phone"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	City           string `json:"city"`
	Address        string `json:"address"`
	RestaurantType string `json:"restaurantType"`
	LogoURL        string `json:"logoUrl"`

	SubscriptionPlan string     `gorm:"not null;default:free_trial" json:"subscriptionPlan"`
	Status           string     `gorm:"not null;default:trial" json:"status"`
	BlockReason      *string    `json:"blockReason,omitempty"`
	TrialEndsAt      *time.Time `json:"trialEndsAt,omitempty"`

	InternalNotes string `json:"-"`

	// set when the tenant was created from an approved request
	RegistrationRequestID *uint `json:"registrationRequestId,omitempty"`

	Users     []User     `json:"-"`
	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}

// Orderable reports whether customers may browse the menu and place orders.
func (r *Restaurant) Orderable() bool {
	return r.Status == RestaurantActive || r.Status == RestaurantTrial
}
