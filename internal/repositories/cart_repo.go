package repositories

import (
	"urbanfabric/internal/models"
)

// CartRepository defines the interface for cart line-item data access.
// A line is addressed by the (userID, productID, size) triple.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	// GetLine returns (nil, nil) when the line does not exist.
	GetLine(userID, productID, size string) (*models.CartItem, error)
	Save(item *models.CartItem) error
	// DeleteLine is idempotent: deleting an absent line is not an error.
	DeleteLine(userID, productID, size string) error
	// Clear is idempotent: clearing an empty cart is not an error.
	Clear(userID string) error
}
