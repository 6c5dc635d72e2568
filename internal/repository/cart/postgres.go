package cart

import (
	"context"
	"errors"

	"shoemarket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	const insert = `
INSERT INTO carts (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO NOTHING
`
	if _, err := r.pool.Exec(ctx, insert, userID); err != nil {
		return nil, err
	}

	const q = `
SELECT id::text, user_id::text, created_at
FROM carts
WHERE user_id = $1
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt); err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, &cart); err != nil {
		return nil, err
	}
	cart.TotalCents = cart.Total()
	return &cart, nil
}

func (r *postgresRepo) GetItem(ctx context.Context, itemID string) (*domain.CartItem, error) {
	const q = `
SELECT ci.id::text, ci.cart_id::text, ci.product_id::text, ci.quantity, ci.created_at,
       p.id::text, p.seller_id::text, p.name, COALESCE(p.description, ''), p.price_cents, p.stock,
       p.category, p.brand, p.size, p.color, p.image_url, p.created_at
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.id = $1
`
	var item domain.CartItem
	var prod domain.Product
	err := r.pool.QueryRow(ctx, q, itemID).Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt,
		&prod.ID, &prod.SellerID, &prod.Name, &prod.Description, &prod.PriceCents, &prod.Stock,
		&prod.Category, &prod.Brand, &prod.Size, &prod.Color, &prod.ImageURL, &prod.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	item.Product = &prod
	return &item, nil
}

func (r *postgresRepo) AddItem(ctx context.Context, cartID, productID string, quantity int) error {
	const q = `
INSERT INTO cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity
`
	_, err := r.pool.Exec(ctx, q, cartID, productID, quantity)
	return err
}

func (r *postgresRepo) SetItemQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return r.DeleteItem(ctx, itemID)
	}
	cmd, err := r.pool.Exec(ctx, `UPDATE cart_items SET quantity = $2 WHERE id = $1`, itemID, quantity)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteItem(ctx context.Context, itemID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context, cartID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	return err
}

func (r *postgresRepo) loadItems(ctx context.Context, cart *domain.Cart) error {
	const q = `
SELECT ci.id::text, ci.cart_id::text, ci.product_id::text, ci.quantity, ci.created_at,
       p.id::text, p.seller_id::text, p.name, COALESCE(p.description, ''), p.price_cents, p.stock,
       p.category, p.brand, p.size, p.color, p.image_url, p.created_at
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, cart.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	cart.Items = []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		var prod domain.Product
		if err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt,
			&prod.ID, &prod.SellerID, &prod.Name, &prod.Description, &prod.PriceCents, &prod.Stock,
			&prod.Category, &prod.Brand, &prod.Size, &prod.Color, &prod.ImageURL, &prod.CreatedAt,
		); err != nil {
			return err
		}
		item.Product = &prod
		cart.Items = append(cart.Items, item)
	}
	return rows.Err()
}
