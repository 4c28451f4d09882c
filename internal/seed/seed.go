package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Brand      string
	Slug       string
	Title      string
	PriceCents int64
}

type categorySeed struct {
	Name     string
	Slug     string
	Brands   []string
	Products []productSeed
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{
			Name:   "Notebooks",
			Slug:   "notebooks",
			Brands: []string{"Lenovo", "ASUS"},
			Products: []productSeed{
				{Brand: "Lenovo", Slug: "lenovo-ideapad-3", Title: "Lenovo IdeaPad 3", PriceCents: 4599900},
				{Brand: "ASUS", Slug: "asus-vivobook-15", Title: "ASUS VivoBook 15", PriceCents: 5299900},
			},
		},
		{
			Name:   "Smartphones",
			Slug:   "smartphones",
			Brands: []string{"Samsung", "Xiaomi"},
			Products: []productSeed{
				{Brand: "Samsung", Slug: "samsung-galaxy-a54", Title: "Samsung Galaxy A54", PriceCents: 3499900},
				{Brand: "Xiaomi", Slug: "xiaomi-redmi-note-12", Title: "Xiaomi Redmi Note 12", PriceCents: 1999900},
			},
		},
	}

	for _, c := range categories {
		categoryID, err := ensureCategory(ctx, pool, c.Name, c.Slug)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", c.Slug, err)
		}
		brandIDs := make(map[string]string, len(c.Brands))
		for _, b := range c.Brands {
			id, err := ensureBrand(ctx, pool, categoryID, b)
			if err != nil {
				return fmt.Errorf("ensure brand %s: %w", b, err)
			}
			brandIDs[b] = id
		}
		for _, p := range c.Products {
			if err := upsertProduct(ctx, pool, categoryID, brandIDs[p.Brand], p); err != nil {
				return fmt.Errorf("upsert product %s: %w", p.Slug, err)
			}
		}
	}

	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name, slug string) (string, error) {
	const q = `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name, slug).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureBrand(ctx context.Context, pool *pgxpool.Pool, categoryID, name string) (string, error) {
	const q = `
INSERT INTO brands (category_id, name)
VALUES ($1, $2)
ON CONFLICT (category_id, name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, categoryID, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, categoryID, brandID string, p productSeed) error {
	const q = `
INSERT INTO products (category_id, brand_id, slug, title, price_cents)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (slug) DO UPDATE SET
    title = EXCLUDED.title,
    price_cents = EXCLUDED.price_cents
`
	_, err := pool.Exec(ctx, q, categoryID, brandID, p.Slug, p.Title, p.PriceCents)
	return err
}
