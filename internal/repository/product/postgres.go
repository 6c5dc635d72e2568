package product

import (
	"context"
	"errors"
	"io"
	"log"

	"shoemarket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, seller_id::text, name, COALESCE(description, ''), price_cents, stock, category, brand, size, color, image_url, created_at`

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	return r.queryMany(ctx, q)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(scanTargets(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, q, category)
}

func (r *postgresRepo) SearchByName(ctx context.Context, query string) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY created_at DESC`
	return r.queryMany(ctx, q, query)
}

func (r *postgresRepo) ListBySeller(ctx context.Context, sellerID string) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE seller_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, q, sellerID)
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (seller_id, name, description, price_cents, stock, category, brand, size, color, image_url)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + productColumns
	var res domain.Product
	err := r.pool.QueryRow(ctx, q,
		p.SellerID, p.Name, p.Description, p.PriceCents, p.Stock,
		p.Category, p.Brand, p.Size, p.Color, p.ImageURL,
	).Scan(scanTargets(&res)...)
	if err != nil {
		r.logger.Printf("product repo: create name=%q seller_id=%s error=%v", p.Name, p.SellerID, err)
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2,
    description = NULLIF($3, ''),
    price_cents = $4,
    stock = $5,
    category = $6,
    brand = $7,
    size = $8,
    color = $9,
    image_url = $10
WHERE id = $1
RETURNING ` + productColumns
	var res domain.Product
	err := r.pool.QueryRow(ctx, q,
		p.ID, p.Name, p.Description, p.PriceCents, p.Stock,
		p.Category, p.Brand, p.Size, p.Color, p.ImageURL,
	).Scan(scanTargets(&res)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryMany(ctx context.Context, q string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: query error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(scanTargets(&p)...); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanTargets(p *domain.Product) []interface{} {
	return []interface{}{
		&p.ID, &p.SellerID, &p.Name, &p.Description, &p.PriceCents, &p.Stock,
		&p.Category, &p.Brand, &p.Size, &p.Color, &p.ImageURL, &p.CreatedAt,
	}
}
