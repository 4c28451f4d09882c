package category

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	// ListBrands returns a category's brands sorted by name.
	ListBrands(ctx context.Context, categoryID string) ([]domain.Brand, error)
}
