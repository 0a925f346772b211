package repositories

import (
	"sort"
	"sync"
	"time"
	"urbanfabric/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items map[string]models.CartItem // keyed by line ID
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]models.CartItem),
	}
}

// GetByUser returns all cart lines for one user, oldest first.
func (r *MockCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			lines = append(lines, item)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].CreatedAt.Before(lines[j].CreatedAt) })
	return lines, nil
}

// GetLine returns one cart line, or nil if absent.
func (r *MockCartRepository) GetLine(userID, productID, size string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID && item.Size == size {
			line := item
			return &line, nil
		}
	}
	return nil, nil
}

// Save inserts or updates a cart line.
func (r *MockCartRepository) Save(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

// DeleteLine removes one cart line. Absent lines are not an error.
func (r *MockCartRepository) DeleteLine(userID, productID, size string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID && item.ProductID == productID && item.Size == size {
			delete(r.items, id)
			return nil
		}
	}
	return nil
}

// Clear removes all cart lines for one user.
func (r *MockCartRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}
