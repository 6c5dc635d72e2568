package user

import (
	"context"
	"errors"
	"io"
	"log"

	"shoemarket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id::text, name, email, password_hash, phone, address, role, created_at`

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

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (name, email, password_hash, phone, address, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns
	return r.scanOne(r.pool.QueryRow(ctx, q, u.Name, u.Email, u.PasswordHash, u.Phone, u.Address, u.Role))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (*domain.User, error) {
	const q = `
UPDATE users
SET name    = COALESCE($2, name),
    phone   = COALESCE($3, phone),
    address = COALESCE($4, address)
WHERE id = $1
RETURNING ` + userColumns
	u, err := r.scanOne(r.pool.QueryRow(ctx, q, id, in.Name, in.Phone, in.Address))
	if err != nil {
		r.logger.Printf("user repo: update profile id=%s error=%v", id, err)
		return nil, err
	}
	return u, nil
}

func (r *postgresRepo) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
