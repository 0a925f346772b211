package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"
	"urbanfabric/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// CreateAndClearCart clears the given CartRepository to mimic the GORM
// implementation's transactional behavior; set FailCreate to simulate a
// persistence failure, in which case the cart is left untouched.
type MockOrderRepository struct {
	orders     map[string]models.Order
	cartRepo   CartRepository
	FailCreate bool
	mu         sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
// cartRepo may be nil when order tests do not involve a cart.
func NewMockOrderRepository(cartRepo CartRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		cartRepo: cartRepo,
	}
}

// GetAll returns all orders, newest first.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	sort.Slice(orderList, func(i, j int) bool { return orderList[i].CreatedAt.After(orderList[j].CreatedAt) })
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, models.ErrOrderNotFound)
	}
	return &order, nil
}

// GetByUser returns all orders for one user, newest first.
func (r *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	sort.Slice(orderList, func(i, j int) bool { return orderList[i].CreatedAt.After(orderList[j].CreatedAt) })
	return orderList, nil
}

// CreateAndClearCart stores the order then clears the user's cart. The
// order is not stored when FailCreate is set, matching the all-or-nothing
// contract of the GORM implementation.
func (r *MockOrderRepository) CreateAndClearCart(order *models.Order, userID string) error {
	if err := r.store(order); err != nil {
		return err
	}
	if r.cartRepo != nil {
		if err := r.cartRepo.Clear(userID); err != nil {
			// Roll the order back so callers never observe a placed
			// order with a non-empty cart.
			r.mu.Lock()
			delete(r.orders, order.ID)
			r.mu.Unlock()
			return err
		}
	}
	return nil
}

func (r *MockOrderRepository) store(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailCreate {
		return fmt.Errorf("simulated order persistence failure")
	}

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, models.ErrOrderNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}
