package models

import "time"

// CartItem is one (product, size) line in a user's cart. At most one row
// exists per (UserID, ProductID, Size); adding the same pair again
// increments Quantity instead of duplicating the row.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"index:idx_cart_line,unique;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"index:idx_cart_line,unique;type:varchar(36)"`
	Size      string    `json:"size" gorm:"index:idx_cart_line,unique;type:varchar(16)"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is a cart item joined with its live catalog product for
// display. Subtotal uses the current catalog price, so an unplaced
// cart's total floats with price changes.
type CartLine struct {
	Product  Product `json:"product"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}
