package cart

import (
	"context"

	"storefront/internal/domain"
)

// Repository persists carts and their items. Every mutation keeps the cached
// cart total equal to the sum of its item totals.
type Repository interface {
	// GetOrCreateOpen returns the customer's cart with in_order=false,
	// creating a new empty cart when none exists. Repeated calls return the
	// same cart until it is closed by order creation.
	GetOrCreateOpen(ctx context.Context, customerID string) (*domain.Cart, error)
	// GetByID loads a cart with its items, most recently added first.
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	// AddItem inserts a new line at the product's current price and
	// recomputes the cart total in the same transaction.
	AddItem(ctx context.Context, cartID string, product domain.Product, quantity int) (*domain.CartItem, error)
	// RemoveItem deletes a line and recomputes the cart total. Returns
	// domain.ErrNotFound when the line is not part of the cart.
	RemoveItem(ctx context.Context, cartID, itemID string) error
	// ChangeItemQuantity sets a line's quantity, recomputing the line total
	// from its captured unit price and the cart total from its lines.
	ChangeItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error
}
