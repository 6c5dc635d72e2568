package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"shoemarket/internal/domain"
	catalogsvc "shoemarket/internal/service/catalog"
	usersvc "shoemarket/internal/service/user"
)

const testSecret = "test-secret"

type stubCatalog struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (s *stubCatalog) List(context.Context) ([]domain.Product, error) { return s.products, s.err }
func (s *stubCatalog) Get(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}
func (s *stubCatalog) ListByCategory(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, s.err
}
func (s *stubCatalog) Search(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, s.err
}
func (s *stubCatalog) Categories() []string {
	return []string{"mens", "womens", "kids", "sports", "casual", "formal"}
}
func (s *stubCatalog) ListBySeller(_ context.Context, _ *domain.User) ([]domain.Product, error) {
	return s.products, s.err
}
func (s *stubCatalog) Create(_ context.Context, _ *domain.User, _ catalogsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}
func (s *stubCatalog) Update(_ context.Context, _ string, _ *domain.User, _ catalogsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}
func (s *stubCatalog) Delete(_ context.Context, _ string, _ *domain.User) error { return s.err }
func (s *stubCatalog) Dashboard(_ context.Context, _ *domain.User) (*catalogsvc.DashboardStats, error) {
	return &catalogsvc.DashboardStats{TotalProducts: 1, ActiveProducts: 1}, s.err
}

type stubCart struct {
	cart     *domain.Cart
	err      error
	lastUser *domain.User
	lastQty  int
}

func (s *stubCart) GetOrCreate(_ context.Context, user *domain.User) (*domain.Cart, error) {
	s.lastUser = user
	return s.cart, s.err
}
func (s *stubCart) AddItem(_ context.Context, user *domain.User, _ string, quantity int) (*domain.Cart, error) {
	s.lastUser = user
	s.lastQty = quantity
	return s.cart, s.err
}
func (s *stubCart) UpdateItem(_ context.Context, user *domain.User, _ string, quantity int) (*domain.Cart, error) {
	s.lastUser = user
	s.lastQty = quantity
	return s.cart, s.err
}
func (s *stubCart) RemoveItem(_ context.Context, user *domain.User, _ string) error {
	s.lastUser = user
	return s.err
}
func (s *stubCart) Clear(_ context.Context, user *domain.User) error {
	s.lastUser = user
	return s.err
}

type stubOrders struct {
	order  *domain.Order
	orders []domain.Order
	err    error
}

func (s *stubOrders) Create(_ context.Context, _ *domain.User, _, _ string) (*domain.Order, error) {
	return s.order, s.err
}
func (s *stubOrders) Get(_ context.Context, _ string, _ *domain.User) (*domain.Order, error) {
	return s.order, s.err
}
func (s *stubOrders) ListForBuyer(_ context.Context, _ *domain.User) ([]domain.Order, error) {
	return s.orders, s.err
}
func (s *stubOrders) ListForSeller(_ context.Context, _ *domain.User) ([]domain.Order, error) {
	return s.orders, s.err
}
func (s *stubOrders) UpdateStatus(_ context.Context, _ string, _ *domain.User, _ string) (*domain.Order, error) {
	return s.order, s.err
}
func (s *stubOrders) UpdatePaymentStatus(_ context.Context, _, _ string) (*domain.Order, error) {
	return s.order, s.err
}

type stubUsers struct {
	user *domain.User
	err  error
}

func (s *stubUsers) UpdateProfile(_ context.Context, _ *domain.User, _ usersvc.UpdateInput) (*domain.User, error) {
	return s.user, s.err
}

type stubLoader struct {
	users map[string]*domain.User
}

func (s *stubLoader) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func testDeps(t *testing.T) (Deps, *stubCart, *stubOrders) {
	t.Helper()
	buyer := &domain.User{ID: "u1", Name: "Demo Buyer", Email: "buyer@example.com", Role: domain.RoleBuyer}
	cart := &stubCart{cart: &domain.Cart{ID: "c1", UserID: "u1"}}
	orders := &stubOrders{order: &domain.Order{ID: "o1", BuyerID: "u1", TotalCents: 4500}}
	deps := Deps{
		Catalog:   &stubCatalog{products: []domain.Product{{ID: "p1", Name: "Trail Runner"}}},
		Cart:      cart,
		Orders:    orders,
		Users:     &stubUsers{user: buyer},
		UserRepo:  &stubLoader{users: map[string]*domain.User{"u1": buyer}},
		JWTSecret: testSecret,
	}
	return deps, cart, orders
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return buildRouter(log.New(io.Discard, "", 0), nil, deps)
}

func mintToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func do(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestHealthz(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/healthz", "", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestListProductsPublic(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/products", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["message"] != "Products retrieved successfully" {
		t.Fatalf("unexpected message %q", body["message"])
	}
	if _, ok := body["data"].([]any); !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
}

func TestCategoriesPublic(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/products/categories", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	cats, ok := body["data"].([]any)
	if !ok || len(cats) != 6 {
		t.Fatalf("expected 6 categories, got %v", body["data"])
	}
}

func TestCartRequiresToken(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/cart", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "missing bearer token" {
		t.Fatalf("unexpected error %q", body["error"])
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/cart", "not-a-jwt", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUnknownSubjectRejected(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/cart", mintToken(t, "ghost"), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "unknown user" {
		t.Fatalf("unexpected error %q", body["error"])
	}
}

func TestGetCartInjectsPrincipal(t *testing.T) {
	deps, cart, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/cart", mintToken(t, "u1"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if cart.lastUser == nil || cart.lastUser.ID != "u1" {
		t.Fatalf("expected principal u1, got %+v", cart.lastUser)
	}
}

func TestAddCartItem(t *testing.T) {
	deps, cart, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodPost, "/api/cart/items", mintToken(t, "u1"),
		`{"productId":"p1","quantity":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["message"] != "Item added to cart" {
		t.Fatalf("unexpected message %q", body["message"])
	}
	if cart.lastQty != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.lastQty)
	}
}

func TestAddCartItemMissingFields(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodPost, "/api/cart/items", mintToken(t, "u1"), `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateOrderReturns201(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodPost, "/api/orders", mintToken(t, "u1"),
		`{"shippingAddress":"42 Elm St","paymentMethod":"card"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["message"] != "Order created" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	deps, _, orders := testDeps(t)
	orders.order = nil
	orders.err = errors.New("cart is empty")
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodPost, "/api/orders", mintToken(t, "u1"),
		`{"shippingAddress":"42 Elm St","paymentMethod":"card"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "cart is empty" {
		t.Fatalf("unexpected error %q", body["error"])
	}
}

func TestNotFoundMapsTo404(t *testing.T) {
	deps, _, orders := testDeps(t)
	orders.order = nil
	orders.err = domain.ErrNotFound
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/orders/unknown", mintToken(t, "u1"), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUnauthorizedMapsTo403(t *testing.T) {
	deps, _, orders := testDeps(t)
	orders.order = nil
	orders.err = domain.ErrUnauthorized
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/orders/o1", mintToken(t, "u1"), "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUserOrdersAlwaysArray(t *testing.T) {
	deps, _, orders := testDeps(t)
	orders.orders = nil
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/orders/user", mintToken(t, "u1"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if got, ok := body["data"].([]any); !ok || len(got) != 0 {
		t.Fatalf("expected empty array, got %v", body["data"])
	}
}

func TestSellerDashboard(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/seller/dashboard", mintToken(t, "u1"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok || data["totalProducts"].(float64) != 1 {
		t.Fatalf("unexpected dashboard payload %v", body["data"])
	}
}

func TestGetProfile(t *testing.T) {
	deps, _, _ := testDeps(t)
	router := newTestRouter(t, deps)

	rec := do(router, http.MethodGet, "/api/user/profile", mintToken(t, "u1"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok || data["email"] != "buyer@example.com" {
		t.Fatalf("unexpected profile payload %v", body["data"])
	}
	if _, leaked := data["passwordHash"]; leaked {
		t.Fatal("password hash must not serialize")
	}
}
