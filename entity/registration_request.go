package entity

import (
	"time"

	"gorm.io/gorm"
)

// Registration request lifecycle: pending -> verified (converted into a
// restaurant) or rejected. Resolved requests stay immutable except for the
// audit fields below.
const (
	RequestPending  = "pending"
	RequestVerified = "verified"
	RequestRejected = "rejected"
)

type RegistrationRequest struct {
	gorm.Model
	RestaurantName string `gorm:"not null" json:"restaurantName"`
	OwnerName      string `gorm:"not null" json:"ownerName"`
	Phone          string `gorm:"not null" json:"phone"`
	Email          string `json:"email"`
	City           string `json:"city"`
	Address        string `json:"address"`
	RestaurantType string `json:"restaurantType"`
	HeardFrom      string `json:"heardFrom"`
	Notes          string `json:"notes"`

	Status string `gorm:"not null;default:pending" json:"status"`

	// audit fields, writable after resolution
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	InternalNotes   *string    `json:"-"`

	// filled in on approval
	RestaurantID *uint `json:"restaurantId,omitempty"`
}
