package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *postgresRepo) GetOrCreateOpen(ctx context.Context, customerID string) (*domain.Cart, error) {
	// The partial unique index on (customer_id) WHERE NOT in_order makes this
	// a single atomic get-or-create: the no-op DO UPDATE returns the existing
	// open cart on conflict.
	const q = `
INSERT INTO carts (customer_id)
VALUES ($1)
ON CONFLICT (customer_id) WHERE NOT in_order
DO UPDATE SET customer_id = EXCLUDED.customer_id
RETURNING id::text
`
	var cartID string
	if err := r.pool.QueryRow(ctx, q, customerID).Scan(&cartID); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, cartID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	const cartQuery = `
SELECT id::text, customer_id::text, total_cents, in_order, created_at
FROM carts
WHERE id = $1
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, cartQuery, id).Scan(
		&cart.ID,
		&cart.CustomerID,
		&cart.TotalCents,
		&cart.InOrder,
		&cart.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `
SELECT id::text, cart_id::text, product_id::text, quantity, price_cents, total_cents, created_at
FROM cart_items
WHERE cart_id = $1
ORDER BY created_at DESC, id DESC
`
	rows, err := r.pool.Query(ctx, itemsQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.PriceCents,
			&item.TotalCents,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *postgresRepo) AddItem(ctx context.Context, cartID string, product domain.Product, quantity int) (*domain.CartItem, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	total := product.PriceCents * int64(quantity)
	var item domain.CartItem
	err = tx.QueryRow(ctx, `
INSERT INTO cart_items (cart_id, product_id, quantity, price_cents, total_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, cart_id::text, product_id::text, quantity, price_cents, total_cents, created_at
`, cartID, product.ID, quantity, product.PriceCents, total).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.PriceCents,
		&item.TotalCents,
		&item.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, cartID, itemID string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
DELETE FROM cart_items
WHERE id = $1 AND cart_id = $2
`, itemID, cartID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) ChangeItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var unitPrice int64
	err = tx.QueryRow(ctx, `
SELECT price_cents
FROM cart_items
WHERE id = $1 AND cart_id = $2
`, itemID, cartID).Scan(&unitPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	total := unitPrice * int64(quantity)
	if _, err := tx.Exec(ctx, `
UPDATE cart_items
SET quantity = $1, total_cents = $2
WHERE id = $3 AND cart_id = $4
`, quantity, total, itemID, cartID); err != nil {
		return err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func updateCartTotal(ctx context.Context, tx pgx.Tx, cartID string) error {
	_, err := tx.Exec(ctx, `
UPDATE carts
SET total_cents = COALESCE((
	SELECT SUM(total_cents)
	FROM cart_items
	WHERE cart_id = $1
), 0)
WHERE id = $1
`, cartID)
	return err
}
