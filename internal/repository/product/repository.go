package product

import (
	"context"

	"storefront/internal/domain"
)

// Repository is the read-only catalog lookup for products.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// ListByCategory returns a category's products, optionally filtered by
	// brand, newest first.
	ListByCategory(ctx context.Context, categoryID, brandID string) ([]domain.Product, error)
	// ListLatest returns the most recently added products.
	ListLatest(ctx context.Context, limit int) ([]domain.Product, error)
}
