package order

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

type stubOrderRepo struct {
	created     *domain.Order
	createErr   error
	createCalls int
	lastCreate  orderrepo.CreateOrderInput

	order  *domain.Order
	getErr error

	list    []domain.Order
	listErr error

	updated    *domain.Order
	updateErr  error
	lastStatus domain.OrderStatus
}

func (s *stubOrderRepo) Create(_ context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	s.createCalls++
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.getErr
}

func (s *stubOrderRepo) ListByCustomer(_ context.Context, _ string) ([]domain.Order, error) {
	return s.list, s.listErr
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, _ string, next domain.OrderStatus) (*domain.Order, error) {
	s.lastStatus = next
	return s.updated, s.updateErr
}

type stubCartRepo struct {
	cart *domain.Cart
	err  error
}

func (s *stubCartRepo) GetOrCreateOpen(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.err
}

func filledCart() *domain.Cart {
	return &domain.Cart{
		ID:         "cart-1",
		CustomerID: "cust",
		TotalCents: 250,
		Items: []domain.CartItem{
			{ID: "item-1", CartID: "cart-1", ProductID: "p-a", Quantity: 2, PriceCents: 100, TotalCents: 200},
			{ID: "item-2", CartID: "cart-1", ProductID: "p-b", Quantity: 1, PriceCents: 50, TotalCents: 50},
		},
	}
}

func validInput() CreateInput {
	return CreateInput{
		BuyingType: domain.BuyingTypeSelf,
		FirstName:  "Ivan",
		LastName:   "Petrov",
		Phone:      "+10000000000",
	}
}

func TestCreateEmptyCart(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, &stubCartRepo{cart: &domain.Cart{ID: "cart-1", CustomerID: "cust"}})

	_, err := svc.Create(context.Background(), "cust", validInput())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("repo.Create must not be called for an empty cart")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubCartRepo{cart: filledCart()})
	ctx := context.Background()

	cases := []struct {
		name   string
		modify func(*CreateInput)
	}{
		{"missing first name", func(in *CreateInput) { in.FirstName = "  " }},
		{"missing last name", func(in *CreateInput) { in.LastName = "" }},
		{"missing phone", func(in *CreateInput) { in.Phone = "" }},
		{"unknown buying type", func(in *CreateInput) { in.BuyingType = "teleport" }},
		{"delivery without address", func(in *CreateInput) {
			in.BuyingType = domain.BuyingTypeDelivery
			in.Address = ""
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.modify(&in)
			if _, err := svc.Create(ctx, "cust", in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateHappyPath(t *testing.T) {
	expected := &domain.Order{ID: "o-1", Status: domain.OrderStatusNew, CartID: "cart-1"}
	repo := &stubOrderRepo{created: expected}
	svc := New(repo, &stubCartRepo{cart: filledCart()})

	in := validInput()
	in.FirstName = "  Ivan "
	in.Comment = "call before delivery"
	got, err := svc.Create(context.Background(), "cust", in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got != expected {
		t.Fatalf("unexpected order: %+v", got)
	}
	if repo.lastCreate.CartID != "cart-1" || repo.lastCreate.CustomerID != "cust" {
		t.Fatalf("unexpected create input: %+v", repo.lastCreate)
	}
	if repo.lastCreate.FirstName != "Ivan" {
		t.Fatalf("first name not trimmed: %q", repo.lastCreate.FirstName)
	}
	if repo.lastCreate.Number == "" {
		t.Fatalf("order number must be generated")
	}
}

func TestCreateDefaultsToSelfPickup(t *testing.T) {
	repo := &stubOrderRepo{created: &domain.Order{ID: "o-1"}}
	svc := New(repo, &stubCartRepo{cart: filledCart()})

	in := validInput()
	in.BuyingType = ""
	if _, err := svc.Create(context.Background(), "cust", in); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.lastCreate.BuyingType != domain.BuyingTypeSelf {
		t.Fatalf("buying type = %q, want self", repo.lastCreate.BuyingType)
	}
}

func TestCreateAlreadyOrderedPropagates(t *testing.T) {
	repo := &stubOrderRepo{createErr: domain.ErrCartOrdered}
	svc := New(repo, &stubCartRepo{cart: filledCart()})

	_, err := svc.Create(context.Background(), "cust", validInput())
	if !errors.Is(err, domain.ErrCartOrdered) {
		t.Fatalf("expected ErrCartOrdered, got %v", err)
	}
}

func TestGetOwnership(t *testing.T) {
	repo := &stubOrderRepo{order: &domain.Order{ID: "o-1", CustomerID: "other"}}
	svc := New(repo, &stubCartRepo{})

	_, err := svc.Get(context.Background(), "cust", "o-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign order, got %v", err)
	}
}

func TestTransitionStatusUnknownValue(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, &stubCartRepo{})

	_, err := svc.TransitionStatus(context.Background(), "o-1", "shredded")
	if !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestTransitionStatusDelegates(t *testing.T) {
	expected := &domain.Order{ID: "o-1", Status: domain.OrderStatusInProgress}
	repo := &stubOrderRepo{updated: expected}
	svc := New(repo, &stubCartRepo{})

	got, err := svc.TransitionStatus(context.Background(), "o-1", domain.OrderStatusInProgress)
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}
	if got != expected || repo.lastStatus != domain.OrderStatusInProgress {
		t.Fatalf("unexpected result %+v, status %s", got, repo.lastStatus)
	}
}
