package seed

import (
	"context"
	"fmt"

	"shoemarket/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type userSeed struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

type productSeed struct {
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	Category    string
	Brand       string
	Size        string
	Color       string
	ImageURL    string
}

// Apply inserts demo data for manual testing. Idempotent: users upsert on
// email, products insert only when the seller has no product of that name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	users := []userSeed{
		{Name: "Demo Buyer", Email: "buyer@example.com", Password: "buyer-password", Role: domain.RoleBuyer},
		{Name: "Demo Seller", Email: "seller@example.com", Password: "seller-password", Role: domain.RoleSeller},
	}

	var sellerID string
	for _, u := range users {
		id, err := ensureUser(ctx, pool, u)
		if err != nil {
			return fmt.Errorf("ensure user %s: %w", u.Email, err)
		}
		if u.Role == domain.RoleSeller {
			sellerID = id
		}
	}

	products := []productSeed{
		{
			Name:        "Trail Runner XT",
			Description: "Lightweight trail running shoe with grippy outsole",
			PriceCents:  8999,
			Stock:       25,
			Category:    "sports",
			Brand:       "Stride",
			Size:        "10",
			Color:       "blue",
			ImageURL:    "https://images.example.com/trail-runner-xt.jpg",
		},
		{
			Name:        "Oxford Classic",
			Description: "Full-grain leather oxford for formal wear",
			PriceCents:  14999,
			Stock:       12,
			Category:    "formal",
			Brand:       "Heritage",
			Size:        "9",
			Color:       "brown",
			ImageURL:    "https://images.example.com/oxford-classic.jpg",
		},
		{
			Name:        "Canvas Low Top",
			Description: "Everyday canvas sneaker",
			PriceCents:  4599,
			Stock:       40,
			Category:    "casual",
			Brand:       "Drift",
			Size:        "8",
			Color:       "white",
			ImageURL:    "https://images.example.com/canvas-low-top.jpg",
		},
	}

	for _, p := range products {
		if err := ensureProduct(ctx, pool, sellerID, p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, u userSeed) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	const q = `
INSERT INTO users (name, email, password_hash, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, u.Name, u.Email, string(hash), u.Role).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, sellerID string, p productSeed) error {
	const q = `
INSERT INTO products (seller_id, name, description, price_cents, stock, category, brand, size, color, image_url)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
WHERE NOT EXISTS (
	SELECT 1 FROM products WHERE seller_id = $1 AND name = $2
)
`
	_, err := pool.Exec(ctx, q, sellerID, p.Name, p.Description, p.PriceCents, p.Stock, p.Category, p.Brand, p.Size, p.Color, p.ImageURL)
	return err
}
