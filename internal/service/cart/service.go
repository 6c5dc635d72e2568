package cart

import (
	"context"
	"errors"
	"fmt"

	"shoemarket/internal/domain"
	cartrepo "shoemarket/internal/repository/cart"
)

type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error)
	GetItem(ctx context.Context, itemID string) (*domain.CartItem, error)
	AddItem(ctx context.Context, cartID, productID string, quantity int) error
	SetItemQuantity(ctx context.Context, itemID string, quantity int) error
	DeleteItem(ctx context.Context, itemID string) error
	Clear(ctx context.Context, cartID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

// GetOrCreate returns the caller's cart, creating an empty one on first access.
func (s *Service) GetOrCreate(ctx context.Context, user *domain.User) (*domain.Cart, error) {
	return s.repo.GetOrCreate(ctx, user.ID)
}

// AddItem puts quantity of a product into the caller's cart. Quantities for a
// product already in the cart merge, and the merged quantity may not exceed
// the product's current stock.
func (s *Service) AddItem(ctx context.Context, user *domain.User, productID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	cart, err := s.repo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}

	requested := quantity
	if existing := cart.ItemByProduct(productID); existing != nil {
		requested += existing.Quantity
	}
	if requested > product.Stock {
		return nil, fmt.Errorf("%w for: %s", domain.ErrInsufficientStock, product.Name)
	}

	if err := s.repo.AddItem(ctx, cart.ID, productID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetOrCreate(ctx, user.ID)
}

// UpdateItem sets a line's quantity. Zero or below deletes the line; anything
// above the product's stock fails leaving the line unchanged.
func (s *Service) UpdateItem(ctx context.Context, user *domain.User, itemID string, quantity int) (*domain.Cart, error) {
	cart, item, err := s.ownedItem(ctx, user, itemID)
	if err != nil {
		return nil, err
	}

	if quantity > 0 && item.Product != nil && quantity > item.Product.Stock {
		return nil, fmt.Errorf("%w for: %s", domain.ErrInsufficientStock, item.Product.Name)
	}
	if err := s.repo.SetItemQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetOrCreate(ctx, cart.UserID)
}

// RemoveItem deletes a line from the caller's cart.
func (s *Service) RemoveItem(ctx context.Context, user *domain.User, itemID string) error {
	_, item, err := s.ownedItem(ctx, user, itemID)
	if err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, item.ID)
}

// Clear empties the caller's cart. Idempotent.
func (s *Service) Clear(ctx context.Context, user *domain.User) error {
	cart, err := s.repo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return err
	}
	return s.repo.Clear(ctx, cart.ID)
}

func (s *Service) ownedItem(ctx context.Context, user *domain.User, itemID string) (*domain.Cart, *domain.CartItem, error) {
	cart, err := s.repo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if item.CartID != cart.ID {
		return nil, nil, domain.ErrUnauthorized
	}
	return cart, item, nil
}
