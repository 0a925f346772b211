package handlers

import (
	"errors"
	"fmt"
	"log"
	"urbanfabric/internal/middleware"
	"urbanfabric/internal/models"
	"urbanfabric/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
// All routes assume the auth middleware already ran.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes behind the supplied auth
// middleware.
func (h *CartHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	cartRoutes := router.Group("/cart", authRequired)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Post("/items/increment", h.HandleIncrement)
	cartRoutes.Post("/items/decrement", h.HandleDecrement)
	cartRoutes.Delete("/items", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClear)
}

// CartLineRequest addresses one (product, size) line in the cart.
type CartLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

func (h *CartHandler) parseLineRequest(c *fiber.Ctx) (*CartLineRequest, error) {
	var req CartLineRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("product_id and size are required")
	}
	return &req, nil
}

// HandleGetCart returns the cart lines resolved against the live
// catalog, plus the floating total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	lines, total, err := h.service.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"items": lines,
		"total": total,
	})
}

// HandleAddItem adds (or merges) a line into the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	req, err := h.parseLineRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	userID := middleware.UserID(c)
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	line, err := h.service.AddItem(userID, req.ProductID, req.Size, quantity)
	if err != nil {
		return h.cartError(c, userID, err)
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// HandleIncrement raises a line's quantity by one.
func (h *CartHandler) HandleIncrement(c *fiber.Ctx) error {
	req, err := h.parseLineRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	userID := middleware.UserID(c)
	line, err := h.service.IncrementQuantity(userID, req.ProductID, req.Size)
	if err != nil {
		return h.cartError(c, userID, err)
	}
	return c.JSON(line)
}

// HandleDecrement lowers a line's quantity by one.
func (h *CartHandler) HandleDecrement(c *fiber.Ctx) error {
	req, err := h.parseLineRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	userID := middleware.UserID(c)
	line, err := h.service.DecrementQuantity(userID, req.ProductID, req.Size)
	if err != nil {
		return h.cartError(c, userID, err)
	}
	return c.JSON(line)
}

// HandleRemoveItem deletes one line from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	req, err := h.parseLineRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	userID := middleware.UserID(c)
	if err := h.service.RemoveItem(userID, req.ProductID, req.Size); err != nil {
		return h.cartError(c, userID, err)
	}
	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}

// HandleClear empties the cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if err := h.service.Clear(userID); err != nil {
		return h.cartError(c, userID, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}

// cartError maps cart domain errors onto HTTP statuses.
func (h *CartHandler) cartError(c *fiber.Ctx, userID string, err error) error {
	log.Printf("Cart operation failed for user %s: %v", userID, err)

	switch {
	case errors.Is(err, models.ErrProductNotFound), errors.Is(err, models.ErrCartItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, models.ErrInvalidSize),
		errors.Is(err, models.ErrOutOfStock),
		errors.Is(err, models.ErrInvalidOperation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Cart operation failed",
			"error":   err.Error(),
		})
	}
}
