package customer

import (
	"context"

	"storefront/internal/domain"
)

// Repository persists and fetches customer profiles.
type Repository interface {
	// GetOrCreate returns the customer profile for an identity account,
	// creating one if it does not exist yet. The contact fields are used only
	// on creation; an existing profile is returned unchanged.
	GetOrCreate(ctx context.Context, userID, phone, address string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}
