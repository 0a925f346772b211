package models

import "time"

// Order statuses. The admin panel flips orders between these two values;
// no monotonic transition guard is enforced.
const (
	StatusPending   = "Pending"
	StatusDelivered = "Delivered"
)

// OrderItem is an immutable snapshot of one cart line at placement time.
// Name and Price are copied from the catalog so later product edits do
// not rewrite order history.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // Unit price at the time of order
}

// ShippingAddress is the destination collected at checkout. All fields
// are mandatory; there is no format validation beyond presence.
type ShippingAddress struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required"`
}

// Order represents a placed customer order.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Items           []OrderItem     `json:"items" gorm:"serializer:json"`
	TotalAmount     float64         `json:"total_amount"`
	Status          string          `json:"status"`
	ShippingAddress ShippingAddress `json:"shipping_address" gorm:"embedded;embeddedPrefix:ship_"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderSummary is the admin listing projection: an order with the
// customer's display fields resolved.
type OrderSummary struct {
	Order
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}
