package models

import "errors"

// Domain errors returned by the services. All of these are recoverable
// and map to 4xx responses at the HTTP layer.
var (
	// -- Catalog --
	ErrProductNotFound = errors.New("product not found")

	// -- Accounts --
	ErrUserNotFound = errors.New("user not found")

	// -- Cart --
	ErrInvalidSize      = errors.New("size not offered for this product")
	ErrOutOfStock       = errors.New("insufficient stock")
	ErrInvalidOperation = errors.New("quantity cannot go below one")
	ErrCartItemNotFound = errors.New("cart item not found")

	// -- Order placement --
	ErrEmptyCart            = errors.New("cart is empty")
	ErrIncompleteAddress    = errors.New("incomplete shipping address")
	ErrTotalMismatch        = errors.New("order total does not match cart total")
	ErrOrderPlacementFailed = errors.New("order placement failed")

	// -- Order administration --
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)
