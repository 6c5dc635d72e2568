package order

import (
	"context"

	"shoemarket/internal/domain"
)

// ItemInput is a line snapshot captured at checkout time.
type ItemInput struct {
	ProductID      string
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

// CreateInput describes the cart-to-order transition. CartID names the
// cart whose items are deleted once the order commits.
type CreateInput struct {
	BuyerID         string
	ShippingAddress string
	PaymentMethod   string
	TotalCents      int64
	CartID          string
	Items           []ItemInput
}

type Repository interface {
	// CreateFromCart decrements stock, persists the order and its items and
	// clears the source cart inside a single transaction. Any failed stock
	// decrement aborts the whole transaction.
	CreateFromCart(ctx context.Context, in CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]domain.Order, error)
	// ListBySeller returns orders containing at least one item whose product
	// belongs to the seller.
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Order, error)
	SellerHasItems(ctx context.Context, orderID, sellerID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}
