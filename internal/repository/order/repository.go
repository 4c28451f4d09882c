package order

import (
	"context"
	"time"

	"storefront/internal/domain"
)

type CreateOrderInput struct {
	Number     string
	CustomerID string
	CartID     string
	BuyingType domain.BuyingType
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	Comment    string
	OrderDate  *time.Time
}

// Repository persists orders. Create closes the source cart and inserts the
// order as one transaction; UpdateStatus enforces the status state machine
// under a row lock.
type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
}
