package catalog

import (
	"context"
	"errors"
	"strings"

	"shoemarket/internal/domain"
	productrepo "shoemarket/internal/repository/product"
)

// Categories the storefront browses by.
var categories = []string{"mens", "womens", "kids", "sports", "casual", "formal"}

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the seller-editable product fields.
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
	Brand       string `json:"brand"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	ImageURL    string `json:"imageUrl"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return errors.New("category required")
	}
	if in.PriceCents < 0 {
		return errors.New("price must not be negative")
	}
	if in.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return s.repo.SearchByName(ctx, query)
}

func (s *Service) Categories() []string {
	return categories
}

func (s *Service) ListBySeller(ctx context.Context, seller *domain.User) ([]domain.Product, error) {
	return s.repo.ListBySeller(ctx, seller.ID)
}

func (s *Service) Create(ctx context.Context, seller *domain.User, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Product{
		SellerID:    seller.ID,
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Category:    in.Category,
		Brand:       in.Brand,
		Size:        in.Size,
		Color:       in.Color,
		ImageURL:    in.ImageURL,
	})
}

// Update rewrites a product; only its owning seller may do so.
func (s *Service) Update(ctx context.Context, id string, seller *domain.User, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.SellerID != seller.ID {
		return nil, domain.ErrUnauthorized
	}
	existing.Name = in.Name
	existing.Description = in.Description
	existing.PriceCents = in.PriceCents
	existing.Stock = in.Stock
	existing.Category = in.Category
	existing.Brand = in.Brand
	existing.Size = in.Size
	existing.Color = in.Color
	existing.ImageURL = in.ImageURL
	return s.repo.Update(ctx, *existing)
}

// Delete removes a product; only its owning seller may do so.
func (s *Service) Delete(ctx context.Context, id string, seller *domain.User) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.SellerID != seller.ID {
		return domain.ErrUnauthorized
	}
	return s.repo.Delete(ctx, id)
}

// DashboardStats summarizes a seller's catalog.
type DashboardStats struct {
	TotalProducts  int `json:"totalProducts"`
	ActiveProducts int `json:"activeProducts"`
	OutOfStock     int `json:"outOfStock"`
}

func (s *Service) Dashboard(ctx context.Context, seller *domain.User) (*DashboardStats, error) {
	products, err := s.repo.ListBySeller(ctx, seller.ID)
	if err != nil {
		return nil, err
	}
	stats := &DashboardStats{TotalProducts: len(products)}
	for _, p := range products {
		if p.Stock > 0 {
			stats.ActiveProducts++
		} else {
			stats.OutOfStock++
		}
	}
	return stats, nil
}
