package cart

import (
	"context"

	"shoemarket/internal/domain"
)

type Repository interface {
	// GetOrCreate returns the user's cart, creating an empty one on first use.
	GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error)
	GetItem(ctx context.Context, itemID string) (*domain.CartItem, error)
	// AddItem merges quantity into an existing (cart, product) line or inserts one.
	AddItem(ctx context.Context, cartID, productID string, quantity int) error
	// SetItemQuantity updates a line in place; a quantity of zero or below deletes it.
	SetItemQuantity(ctx context.Context, itemID string, quantity int) error
	DeleteItem(ctx context.Context, itemID string) error
	Clear(ctx context.Context, cartID string) error
}
