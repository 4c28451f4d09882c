package cart

import (
	"context"
	"errors"

	"storefront/internal/domain"
)

// Service implements cart item management. Every operation takes the acting
// customer explicitly and works against that customer's single open cart.
type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	GetOrCreateOpen(ctx context.Context, customerID string) (*domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID string, product domain.Product, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, cartID, itemID string) error
	ChangeItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

// OpenCart returns the customer's open cart, creating an empty one when
// none exists. Repeated calls return the same cart until it is ordered.
func (s *Service) OpenCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	return s.repo.GetOrCreateOpen(ctx, customerID)
}

// AddItem puts a product into the customer's open cart at its current price.
// A product already present in the cart leaves the cart unchanged. Quantity
// is not incremented on repeat adds; see the change-quantity operation.
func (s *Service) AddItem(ctx context.Context, customerID, productID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	cart, err := s.repo.GetOrCreateOpen(ctx, customerID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if cart.ItemByProduct(product.ID) != nil {
		return cart, nil
	}
	if _, err := s.repo.AddItem(ctx, cart.ID, *product, quantity); err != nil {
		// A concurrent add of the same product hits the unique line
		// constraint; that is the same no-op as the membership check above.
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, cart.ID)
}

// RemoveItem detaches an item from the customer's open cart and deletes it.
// Removing an item that is not in the cart is a no-op.
func (s *Service) RemoveItem(ctx context.Context, customerID, itemID string) (*domain.Cart, error) {
	cart, err := s.repo.GetOrCreateOpen(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart.ItemByID(itemID) == nil {
		return cart, nil
	}
	if err := s.repo.RemoveItem(ctx, cart.ID, itemID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.repo.GetByID(ctx, cart.ID)
}

// ChangeQuantity sets an item's quantity and recomputes its total from the
// unit price captured at add time. Items not in the cart are a no-op.
func (s *Service) ChangeQuantity(ctx context.Context, customerID, itemID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	cart, err := s.repo.GetOrCreateOpen(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart.ItemByID(itemID) == nil {
		return cart, nil
	}
	if err := s.repo.ChangeItemQuantity(ctx, cart.ID, itemID, quantity); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.repo.GetByID(ctx, cart.ID)
}

// TotalCents sums the item totals of a cart. The persisted cart total must
// equal this after every mutation.
func TotalCents(cart domain.Cart) int64 {
	var sum int64
	for _, item := range cart.Items {
		sum += item.TotalCents
	}
	return sum
}
