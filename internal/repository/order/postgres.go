package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

const orderColumns = `
id::text, number, customer_id::text, cart_id::text, status, buying_type,
first_name, last_name, phone, address, comment, order_date, order_cost_cents, created_at
`

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the cart row so two concurrent callers cannot both convert it.
	var inOrder bool
	var totalCents int64
	err = tx.QueryRow(ctx, `
SELECT in_order, total_cents
FROM carts
WHERE id = $1
FOR UPDATE
`, in.CartID).Scan(&inOrder, &totalCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if inOrder {
		return nil, domain.ErrCartOrdered
	}

	var itemCount int
	if err := tx.QueryRow(ctx, `
SELECT COUNT(*)
FROM cart_items
WHERE cart_id = $1
`, in.CartID).Scan(&itemCount); err != nil {
		return nil, err
	}
	if itemCount == 0 {
		return nil, domain.ErrEmptyCart
	}

	var o domain.Order
	err = tx.QueryRow(ctx, `
INSERT INTO orders (
    number, customer_id, cart_id, status, buying_type,
    first_name, last_name, phone, address, comment, order_date, order_cost_cents
) VALUES ($1, $2, $3, 'new', $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING `+orderColumns, in.Number, in.CustomerID, in.CartID, in.BuyingType,
		in.FirstName, in.LastName, in.Phone, in.Address, in.Comment, in.OrderDate, totalCents,
	).Scan(orderFields(&o)...)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
UPDATE carts
SET in_order = true
WHERE id = $1
`, in.CartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `
SELECT `+orderColumns+`
FROM orders
WHERE id = $1
`, id).Scan(orderFields(&o)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+orderColumns+`
FROM orders
WHERE customer_id = $1
ORDER BY created_at DESC
`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(orderFields(&o)...); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var current domain.OrderStatus
	err = tx.QueryRow(ctx, `
SELECT status
FROM orders
WHERE id = $1
FOR UPDATE
`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !domain.CanTransition(current, next) {
		return nil, domain.ErrIllegalTransition
	}

	var o domain.Order
	err = tx.QueryRow(ctx, `
UPDATE orders
SET status = $1
WHERE id = $2
RETURNING `+orderColumns, next, id).Scan(orderFields(&o)...)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

func orderFields(o *domain.Order) []any {
	return []any{
		&o.ID,
		&o.Number,
		&o.CustomerID,
		&o.CartID,
		&o.Status,
		&o.BuyingType,
		&o.FirstName,
		&o.LastName,
		&o.Phone,
		&o.Address,
		&o.Comment,
		&o.OrderDate,
		&o.OrderCostCents,
		&o.CreatedAt,
	}
}
