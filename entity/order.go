package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order types. "table" is on-premise dine-in (requires a table number),
// "takeaway" is counter pickup.
const (
	OrderTypeTable    = "table"
	OrderTypeTakeaway = "takeaway"
)

type Order struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`
	// opaque token handed to the customer for the tracking page
	PublicToken string `gorm:"uniqueIndex;not null" json:"-"`

	OrderType   string `gorm:"not null" json:"orderType"`
	TableNumber string `json:"tableNumber,omitempty"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerNote  string `json:"customerNote,omitempty"`

	// frozen copy of the cart at submission time; later menu edits must not
	// change what was sold
	Items []OrderItem `json:"items"`

	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`

	Status       string  `gorm:"index;not null;default:pending" json:"status"`
	CancelReason *string `json:"cancelReason,omitempty"`

	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	RejectedAt  *time.Time `json:"rejectedAt,omitempty"`
}

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint `json:"menuItemId"`

	// name at time of order
	Name      string  `gorm:"not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`

	SelectedSize   *SizeOption   `gorm:"serializer:json" json:"selectedSize,omitempty"`
	SelectedAddons []AddonOption `gorm:"serializer:json" json:"selectedAddons,omitempty"`

	ItemTotal float64 `json:"itemTotal"`
}
