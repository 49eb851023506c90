package entity

import (
	"gorm.io/gorm"
)

// User is a restaurant-side principal (owner or staff), created by the admin
// approval flow with a generated temporary password.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:owner" json:"role"`

	// true until the user sets their own password
	TempPassword bool `gorm:"not null;default:false" json:"tempPassword"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
