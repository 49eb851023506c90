package entity

import (
	"gorm.io/gorm"
)

// AdminUser is a platform operator. Kept separate from restaurant users so a
// tenant credential can never reach the admin surface.
type AdminUser struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
}
