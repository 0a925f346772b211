package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"urbanfabric/internal/models"
	"urbanfabric/internal/repositories"
)

// CartService owns all cart mutations for every user. Callers never
// touch cart rows directly; routing every mutation through here keeps
// the (product, size) uniqueness and quantity-clamping rules in one
// place, and lets mutations for one user be serialized in-process.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository

	// One mutex per user. Two sessions hammering the same cart line
	// would otherwise race on the read-merge-write in AddItem.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		locks:       make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex guarding one user's cart, creating it on
// first use. Entries are never evicted; one mutex per active user is
// negligible.
func (s *CartService) userLock(userID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	mu, ok := s.locks[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[userID] = mu
	}
	return mu
}

// AddItem puts quantity units of (productID, size) into the user's cart.
// If the pair is already present its quantity is incremented rather than
// a duplicate line created. The resulting quantity may never exceed the
// product's stock.
func (s *CartService) AddItem(userID, productID, size string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.HasSize(size) {
		return nil, fmt.Errorf("product %s has no size %q: %w", productID, size, models.ErrInvalidSize)
	}

	line, err := s.cartRepo.GetLine(userID, productID, size)
	if err != nil {
		return nil, err
	}

	finalQty := quantity
	if line != nil {
		finalQty += line.Quantity
	}
	if finalQty > product.Stock {
		return nil, fmt.Errorf("product %s: requested %d, stock %d: %w",
			productID, finalQty, product.Stock, models.ErrOutOfStock)
	}

	if line == nil {
		line = &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Size:      size,
		}
	}
	line.Quantity = finalQty

	if err := s.cartRepo.Save(line); err != nil {
		return nil, err
	}
	return line, nil
}

// IncrementQuantity raises a line's quantity by one, rejecting the
// operation outright when it would exceed the product's stock.
func (s *CartService) IncrementQuantity(userID, productID, size string) (*models.CartItem, error) {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	line, err := s.cartRepo.GetLine(userID, productID, size)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, models.ErrCartItemNotFound
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if line.Quantity+1 > product.Stock {
		return nil, fmt.Errorf("product %s: stock %d reached: %w", productID, product.Stock, models.ErrOutOfStock)
	}

	line.Quantity++
	if err := s.cartRepo.Save(line); err != nil {
		return nil, err
	}
	return line, nil
}

// DecrementQuantity lowers a line's quantity by one. Quantity never
// reaches zero this way; removing the line is a separate explicit call.
func (s *CartService) DecrementQuantity(userID, productID, size string) (*models.CartItem, error) {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	line, err := s.cartRepo.GetLine(userID, productID, size)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, models.ErrCartItemNotFound
	}
	if line.Quantity <= 1 {
		return nil, models.ErrInvalidOperation
	}

	line.Quantity--
	if err := s.cartRepo.Save(line); err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveItem deletes one line unconditionally. Removing an absent line
// is a no-op.
func (s *CartService) RemoveItem(userID, productID, size string) error {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	return s.cartRepo.DeleteLine(userID, productID, size)
}

// Clear empties the user's cart. Clearing an empty cart is a no-op.
func (s *CartService) Clear(userID string) error {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	return s.cartRepo.Clear(userID)
}

// Items returns the raw cart lines for one user.
func (s *CartService) Items(userID string) ([]models.CartItem, error) {
	return s.cartRepo.GetByUser(userID)
}

// GetCart resolves the user's cart against the live catalog: each line
// carries the current product record and a subtotal at today's price.
// Lines whose product has been removed from the catalog are dropped from
// the view rather than failing the whole cart.
func (s *CartService) GetCart(userID string) ([]models.CartLine, float64, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, 0, err
	}

	lines := make([]models.CartLine, 0, len(items))
	var total float64
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				log.Printf("Cart line for user %s references missing product %s, skipping", userID, item.ProductID)
				continue
			}
			return nil, 0, err
		}
		subtotal := product.Price * float64(item.Quantity)
		lines = append(lines, models.CartLine{
			Product:  *product,
			Size:     item.Size,
			Quantity: item.Quantity,
			Subtotal: subtotal,
		})
		total += subtotal
	}
	return lines, total, nil
}

// GetTotalPrice returns the cart total at current catalog prices.
// An empty cart totals zero. Prices are resolved at query time, so a
// catalog price change moves an unplaced cart's total.
func (s *CartService) GetTotalPrice(userID string) (float64, error) {
	_, total, err := s.GetCart(userID)
	return total, err
}
