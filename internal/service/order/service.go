package order

import (
	"context"
	"errors"
	"fmt"

	"shoemarket/internal/domain"
	orderrepo "shoemarket/internal/repository/order"
)

type Service struct {
	repo  orderRepo
	carts cartRepo
}

type orderRepo interface {
	CreateFromCart(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]domain.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Order, error)
	SellerHasItems(ctx context.Context, orderID, sellerID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}

type cartRepo interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error)
}

func New(repo orderrepo.Repository, carts cartRepo) *Service {
	return &Service{repo: repo, carts: carts}
}

// Create converts the caller's cart into an order: checks stock, snapshots
// names and prices, sums the total and hands the whole transition to the
// repository as one transaction. The cart ends up empty on success.
func (s *Service) Create(ctx context.Context, user *domain.User, shippingAddress, paymentMethod string) (*domain.Order, error) {
	cart, err := s.carts.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	items := make([]orderrepo.ItemInput, 0, len(cart.Items))
	var total int64
	for _, line := range cart.Items {
		if line.Product == nil {
			return nil, fmt.Errorf("cart item %s has no product", line.ID)
		}
		if line.Quantity > line.Product.Stock {
			return nil, fmt.Errorf("%w for: %s", domain.ErrInsufficientStock, line.Product.Name)
		}
		items = append(items, orderrepo.ItemInput{
			ProductID:      line.ProductID,
			ProductName:    line.Product.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: line.Product.PriceCents,
		})
		total += line.Product.PriceCents * int64(line.Quantity)
	}

	return s.repo.CreateFromCart(ctx, orderrepo.CreateInput{
		BuyerID:         user.ID,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		TotalCents:      total,
		CartID:          cart.ID,
		Items:           items,
	})
}

// Get returns a single order; only its buyer may read it.
func (s *Service) Get(ctx context.Context, orderID string, user *domain.User) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.BuyerID != user.ID {
		return nil, domain.ErrUnauthorized
	}
	return o, nil
}

// ListForBuyer returns the caller's orders, newest first.
func (s *Service) ListForBuyer(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	return s.repo.ListByBuyer(ctx, user.ID)
}

// ListForSeller returns every order containing at least one of the caller's products.
func (s *Service) ListForSeller(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	return s.repo.ListBySeller(ctx, user.ID)
}

// UpdateStatus overwrites an order's status. The caller must be the buyer or
// the seller of at least one item; the value itself is validated but the
// transition is otherwise unconstrained.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, user *domain.User, status string) (*domain.Order, error) {
	parsed, err := domain.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.BuyerID != user.ID {
		sells, err := s.repo.SellerHasItems(ctx, orderID, user.ID)
		if err != nil {
			return nil, err
		}
		if !sells {
			return nil, domain.ErrUnauthorized
		}
	}
	if err := s.repo.UpdateStatus(ctx, orderID, parsed); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, orderID)
}

// UpdatePaymentStatus overwrites payment status with no party check, matching
// the behavior expected by the external payment callback.
func (s *Service) UpdatePaymentStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	parsed, err := domain.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePaymentStatus(ctx, orderID, parsed); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, orderID)
}
