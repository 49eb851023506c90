package entity

import (
	"gorm.io/gorm"
)

// SizeOption is a mutually exclusive priced alternative; selecting one
// overrides the item's base price.
type SizeOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AddonOption is additive and independently toggleable.
type AddonOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuItem struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	IsAvailable bool    `gorm:"not null;default:true" json:"isAvailable"`

	// If Sizes is non-empty, exactly one size must be chosen before the item
	// can be priced into a cart. Add-ons are zero-or-more.
	Sizes  []SizeOption  `gorm:"serializer:json" json:"sizes,omitempty"`
	Addons []AddonOption `gorm:"serializer:json" json:"addons,omitempty"`
}

// SizeByName returns the size option with the given name, or nil.
func (m *MenuItem) SizeByName(name string) *SizeOption {
	for i := range m.Sizes {
		if m.Sizes[i].Name == name {
			return &m.Sizes[i]
		}
	}
	return nil
}

// AddonByName returns the add-on with the given name, or nil.
func (m *MenuItem) AddonByName(name string) *AddonOption {
	for i := range m.Addons {
		if m.Addons[i].Name == name {
			return &m.Addons[i]
		}
	}
	return nil
}
