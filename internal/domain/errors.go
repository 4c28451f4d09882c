package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput wraps request validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidQuantity is returned when a non-positive quantity is supplied.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrProductNotFound is returned when a cart mutation references a product
	// the catalog does not know.
	ErrProductNotFound = errors.New("product not found")
	// ErrEmptyCart is returned when an order is attempted on a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCartOrdered is returned when a mutation or a second order creation
	// targets a cart that has already been converted into an order.
	ErrCartOrdered = errors.New("cart already ordered")
	// ErrIllegalTransition is returned for an order status change the state
	// machine does not allow.
	ErrIllegalTransition = errors.New("illegal status transition")
)
