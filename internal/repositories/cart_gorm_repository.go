package repositories

import (
	"errors"
	"fmt"
	"urbanfabric/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser retrieves all cart lines for one user, oldest first.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// GetLine retrieves one cart line, or nil if the user has no such line.
func (r *GORMCartRepository) GetLine(userID, productID, size string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "user_id = ? AND product_id = ? AND size = ?", userID, productID, size).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart line for user %s: %w", userID, err)
	}
	return &item, nil
}

// Save inserts a new cart line or updates an existing one by ID.
func (r *GORMCartRepository) Save(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to save cart line: %w", err)
	}
	return nil
}

// DeleteLine removes one cart line. Absent lines are not an error.
func (r *GORMCartRepository) DeleteLine(userID, productID, size string) error {
	err := r.db.Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cart line for user %s: %w", userID, err)
	}
	return nil
}

// Clear removes all cart lines for one user.
func (r *GORMCartRepository) Clear(userID string) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
