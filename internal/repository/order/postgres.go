package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"shoemarket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, buyer_id::text, shipping_address, payment_method, status, payment_status, total_cents, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) CreateFromCart(ctx context.Context, in CreateInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Conditional decrement: zero rows means insufficient stock, which
	// also serializes concurrent checkouts of the same product.
	for _, item := range in.Items {
		cmd, err := tx.Exec(ctx, `
UPDATE products
SET stock = stock - $2
WHERE id = $1 AND stock >= $2
`, item.ProductID, item.Quantity)
		if err != nil {
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, fmt.Errorf("%w for: %s", domain.ErrInsufficientStock, item.ProductName)
		}
	}

	var orderID string
	err = tx.QueryRow(ctx, `
INSERT INTO orders (buyer_id, shipping_address, payment_method, status, payment_status, total_cents)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text
`, in.BuyerID, in.ShippingAddress, in.PaymentMethod, domain.OrderPending, domain.PaymentPending, in.TotalCents).Scan(&orderID)
	if err != nil {
		return nil, err
	}

	for _, item := range in.Items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4, $5)
`, orderID, item.ProductID, item.ProductName, item.Quantity, item.UnitPriceCents); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, in.CartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	r.logger.Printf("order repo: created id=%s buyer_id=%s items=%d total_cents=%d", orderID, in.BuyerID, len(in.Items), in.TotalCents)
	return r.GetByID(ctx, orderID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID, &o.BuyerID, &o.ShippingAddress, &o.PaymentMethod,
		&o.Status, &o.PaymentStatus, &o.TotalCents, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadItems(ctx, []*domain.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListByBuyer(ctx context.Context, buyerID string) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, q, buyerID)
}

func (r *postgresRepo) ListBySeller(ctx context.Context, sellerID string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id IN (
	SELECT oi.order_id
	FROM order_items oi
	JOIN products p ON p.id = oi.product_id
	WHERE p.seller_id = $1
)
ORDER BY created_at DESC
`
	return r.queryMany(ctx, q, sellerID)
}

func (r *postgresRepo) SellerHasItems(ctx context.Context, orderID, sellerID string) (bool, error) {
	const q = `
SELECT EXISTS (
	SELECT 1
	FROM order_items oi
	JOIN products p ON p.id = oi.product_id
	WHERE oi.order_id = $1 AND p.seller_id = $2
)
`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, orderID, sellerID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET payment_status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryMany(ctx context.Context, q string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: query error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.BuyerID, &o.ShippingAddress, &o.PaymentMethod,
			&o.Status, &o.PaymentStatus, &o.TotalCents, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ptrs := make([]*domain.Order, len(result))
	for i := range result {
		ptrs[i] = &result[i]
	}
	if err := r.loadItems(ctx, ptrs); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	byID := make(map[string]*domain.Order, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		byID[o.ID] = o
		o.Items = []domain.OrderItem{}
	}

	const q = `
SELECT id::text, order_id::text, product_id::text, product_name, quantity, unit_price_cents, created_at
FROM order_items
WHERE order_id = ANY($1)
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPriceCents, &item.CreatedAt); err != nil {
			return err
		}
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}
