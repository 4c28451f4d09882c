package catalog

import (
	"context"

	"storefront/internal/domain"
)

// Service is the read-only catalog facade: categories with their brands,
// category listings and product lookup.
type Service struct {
	categories categoryRepo
	products   productRepo
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	ListBrands(ctx context.Context, categoryID string) ([]domain.Brand, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID, brandID string) ([]domain.Product, error)
	ListLatest(ctx context.Context, limit int) ([]domain.Product, error)
}

func New(categories categoryRepo, products productRepo) *Service {
	return &Service{categories: categories, products: products}
}

// CategoryView is a category with its brands and products.
type CategoryView struct {
	Category domain.Category  `json:"category"`
	Brands   []domain.Brand   `json:"brands"`
	Products []domain.Product `json:"products"`
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// Category returns a category detail view, optionally filtered to one brand.
func (s *Service) Category(ctx context.Context, id, brandID string) (*CategoryView, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	brands, err := s.categories.ListBrands(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListByCategory(ctx, c.ID, brandID)
	if err != nil {
		return nil, err
	}
	return &CategoryView{Category: *c, Brands: brands, Products: products}, nil
}

// LatestProducts returns the storefront landing selection.
func (s *Service) LatestProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 4
	}
	return s.products.ListLatest(ctx, limit)
}

func (s *Service) Product(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}
