package repositories

import (
	"urbanfabric/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	// CreateAndClearCart persists the order and empties the user's cart
	// as one atomic unit. On error neither write is visible.
	CreateAndClearCart(order *models.Order, userID string) error
	UpdateStatus(id string, status string) error
}
