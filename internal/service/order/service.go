package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

// Service converts open carts into orders and drives the order status
// lifecycle. Status transitions are triggered externally (staff action); the
// service only decides legality.
type Service struct {
	repo  orderRepo
	carts cartRepo
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
}

type cartRepo interface {
	GetOrCreateOpen(ctx context.Context, customerID string) (*domain.Cart, error)
}

func New(repo orderRepo, carts cartRepo) *Service {
	return &Service{repo: repo, carts: carts}
}

// CreateInput carries the delivery/pickup details of the order form.
type CreateInput struct {
	BuyingType domain.BuyingType `json:"buyingType"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	Comment    string            `json:"comment"`
	OrderDate  *time.Time        `json:"orderDate"`
}

// Create turns the customer's open cart into an order in status "new". The
// cart is closed in the same transaction that inserts the order; the order
// cost is snapshotted from the cart total at that moment.
func (s *Service) Create(ctx context.Context, customerID string, in CreateInput) (*domain.Order, error) {
	if in.BuyingType == "" {
		in.BuyingType = domain.BuyingTypeSelf
	}
	if !domain.ValidBuyingType(in.BuyingType) {
		return nil, fmt.Errorf("%w: unknown buying type", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, fmt.Errorf("%w: first name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.LastName) == "" {
		return nil, fmt.Errorf("%w: last name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, fmt.Errorf("%w: phone required", domain.ErrInvalidInput)
	}
	if in.BuyingType == domain.BuyingTypeDelivery && strings.TrimSpace(in.Address) == "" {
		return nil, fmt.Errorf("%w: address required for delivery", domain.ErrInvalidInput)
	}

	cart, err := s.carts.GetOrCreateOpen(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	return s.repo.Create(ctx, orderrepo.CreateOrderInput{
		Number:     uuid.NewString(),
		CustomerID: customerID,
		CartID:     cart.ID,
		BuyingType: in.BuyingType,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Phone:      strings.TrimSpace(in.Phone),
		Address:    strings.TrimSpace(in.Address),
		Comment:    in.Comment,
		OrderDate:  in.OrderDate,
	})
}

// Get returns one of the customer's orders.
func (s *Service) Get(ctx context.Context, customerID, orderID string) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// ListByCustomer returns the customer's orders, newest first.
func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// TransitionStatus moves an order along the fulfilment state machine.
func (s *Service) TransitionStatus(ctx context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(next) {
		return nil, domain.ErrIllegalTransition
	}
	return s.repo.UpdateStatus(ctx, orderID, next)
}
