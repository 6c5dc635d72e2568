package httpserver

import (
	"context"

	"shoemarket/internal/domain"
	catalogsvc "shoemarket/internal/service/catalog"
	usersvc "shoemarket/internal/service/user"
)

// Deps collects the services the router depends on. Interfaces keep
// handlers testable with stubs.
type Deps struct {
	Catalog   CatalogService
	Cart      CartService
	Orders    OrderService
	Users     UserService
	UserRepo  UserLoader
	JWTSecret string
}

type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Categories() []string
	ListBySeller(ctx context.Context, seller *domain.User) ([]domain.Product, error)
	Create(ctx context.Context, seller *domain.User, in catalogsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, id string, seller *domain.User, in catalogsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id string, seller *domain.User) error
	Dashboard(ctx context.Context, seller *domain.User) (*catalogsvc.DashboardStats, error)
}

type CartService interface {
	GetOrCreate(ctx context.Context, user *domain.User) (*domain.Cart, error)
	AddItem(ctx context.Context, user *domain.User, productID string, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, user *domain.User, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, user *domain.User, itemID string) error
	Clear(ctx context.Context, user *domain.User) error
}

type OrderService interface {
	Create(ctx context.Context, user *domain.User, shippingAddress, paymentMethod string) (*domain.Order, error)
	Get(ctx context.Context, orderID string, user *domain.User) (*domain.Order, error)
	ListForBuyer(ctx context.Context, user *domain.User) ([]domain.Order, error)
	ListForSeller(ctx context.Context, user *domain.User) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, user *domain.User, status string) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
}

type UserService interface {
	UpdateProfile(ctx context.Context, user *domain.User, in usersvc.UpdateInput) (*domain.User, error)
}

// UserLoader resolves the authenticated principal from token claims.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
