package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

const productColumns = `
id::text, category_id::text, brand_id::text, slug, title, image_path, price_cents, created_at
`

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.fetchOne(ctx, `
SELECT `+productColumns+`
FROM products
WHERE id = $1
`, id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return r.fetchOne(ctx, `
SELECT `+productColumns+`
FROM products
WHERE slug = $1
`, slug)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID, brandID string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE category_id = $1 AND ($2 = '' OR brand_id::text = $2)
ORDER BY created_at DESC, id DESC
`
	return r.fetchMany(ctx, q, categoryID, brandID)
}

func (r *postgresRepo) ListLatest(ctx context.Context, limit int) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC, id DESC
LIMIT $1
`
	return r.fetchMany(ctx, q, limit)
}

func (r *postgresRepo) fetchOne(ctx context.Context, query string, args ...any) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, query, args...).Scan(productFields(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) fetchMany(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(productFields(&p)...); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func productFields(p *domain.Product) []any {
	return []any{
		&p.ID,
		&p.CategoryID,
		&p.BrandID,
		&p.Slug,
		&p.Title,
		&p.ImagePath,
		&p.PriceCents,
		&p.CreatedAt,
	}
}
