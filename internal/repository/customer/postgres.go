package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetOrCreate(ctx context.Context, userID, phone, address string) (*domain.Customer, error) {
	// The no-op DO UPDATE makes the statement return the existing row on
	// conflict, so concurrent callers converge on the same profile.
	const q = `
INSERT INTO customers (user_id, phone, address)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id::text, user_id::text, phone, address, created_at
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, userID, phone, address))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `
SELECT id::text, user_id::text, phone, address, created_at
FROM customers
WHERE id = $1
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Phone,
		&c.Address,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
