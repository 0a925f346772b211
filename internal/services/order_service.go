package services

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"urbanfabric/internal/models"
	"urbanfabric/internal/repositories"
	"urbanfabric/pkg/rabbitmq"

	"github.com/google/uuid"
)

// Client and computed totals may differ by float noise; anything beyond
// half a cent is treated as tampering.
const totalTolerance = 0.005

// OrderEventPublisher publishes order lifecycle events. Satisfied by
// *rabbitmq.Client; mocked in tests.
type OrderEventPublisher interface {
	PublishOrderCreated(event rabbitmq.OrderCreatedEvent) error
}

// OrderService converts carts into immutable orders and handles order
// administration.
type OrderService struct {
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	cart      *CartService
	publisher OrderEventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in
// which case order events are skipped.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository,
	cart *CartService, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		cart:      cart,
		publisher: publisher,
	}
}

// PlaceOrder snapshots the user's cart into a new Pending order and
// empties the cart, both inside one transactional unit. Unit prices are
// frozen on the order at placement time; the live cart total keeps
// floating with the catalog until then. clientTotal is the total the
// caller displayed to the user and must match the computed total.
func (s *OrderService) PlaceOrder(userID string, clientTotal float64, address models.ShippingAddress) (*models.Order, error) {
	if !addressComplete(address) {
		return nil, models.ErrIncompleteAddress
	}

	// Hold the user's cart lock so no mutation slips in between the
	// snapshot and the clear.
	mu := s.cart.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	lines, total, err := s.cart.GetCart(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, models.ErrEmptyCart
	}

	if math.Abs(total-clientTotal) > totalTolerance {
		return nil, fmt.Errorf("client total %.2f, computed %.2f: %w", clientTotal, total, models.ErrTotalMismatch)
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}

	now := time.Now()
	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		Status:          models.StatusPending,
		ShippingAddress: address,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.CreateAndClearCart(order, userID); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrOrderPlacementFailed, err)
	}

	// Best effort: a broker outage must not fail an already-committed order.
	if s.publisher != nil {
		event := rabbitmq.OrderCreatedEvent{
			OrderID:   order.ID,
			UserID:    order.UserID,
			Total:     order.TotalAmount,
			Status:    order.Status,
			CreatedAt: order.CreatedAt,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// UpdateOrderStatus overwrites an order's status. Only the two statuses
// the admin panel knows are accepted; Delivered back to Pending is
// deliberately allowed.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{
		models.StatusPending:   true,
		models.StatusDelivered: true,
	}
	if !validStatuses[status] {
		return fmt.Errorf("status %q: %w", status, models.ErrInvalidStatus)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}

// GetAllOrders returns every order with the customer's display fields
// resolved, for the admin panel.
func (s *OrderService) GetAllOrders() ([]models.OrderSummary, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summary := models.OrderSummary{Order: order}
		user, err := s.userRepo.GetByID(order.UserID)
		if err != nil {
			log.Printf("Could not resolve user %s for order %s: %v", order.UserID, order.ID, err)
		} else {
			summary.CustomerName = user.Username
			summary.CustomerEmail = user.Email
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetOrdersByUser returns the orders one user has placed.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func addressComplete(a models.ShippingAddress) bool {
	for _, field := range []string{a.FirstName, a.LastName, a.Address, a.City, a.ZipCode} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
