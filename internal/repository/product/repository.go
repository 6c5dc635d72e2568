package product

import (
	"context"

	"shoemarket/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	SearchByName(ctx context.Context, query string) ([]domain.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
