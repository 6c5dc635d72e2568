package catalog

import (
	"context"
	"errors"
	"testing"

	"shoemarket/internal/domain"
)

type stubRepo struct {
	products []domain.Product
	product  *domain.Product
	getErr   error

	created      *domain.Product
	updated      *domain.Product
	deletedID    string
	deleteCalled bool
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) { return s.products, nil }

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.getErr
}

func (s *stubRepo) ListByCategory(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubRepo) SearchByName(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubRepo) ListBySeller(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.created = &p
	p.ID = "new-id"
	return &p, nil
}

func (s *stubRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.updated = &p
	return &p, nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	s.deleteCalled = true
	s.deletedID = id
	return nil
}

var seller = &domain.User{ID: "s1", Role: domain.RoleSeller}

func validInput() Input {
	return Input{Name: "Trail Runner", Category: "sports", PriceCents: 1000, Stock: 5}
}

func TestCreateValidatesInput(t *testing.T) {
	svc := New(&stubRepo{})

	cases := []struct {
		name  string
		mutate func(*Input)
	}{
		{"missing name", func(in *Input) { in.Name = "  " }},
		{"missing category", func(in *Input) { in.Category = "" }},
		{"negative price", func(in *Input) { in.PriceCents = -1 }},
		{"negative stock", func(in *Input) { in.Stock = -1 }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		if _, err := svc.Create(context.Background(), seller, in); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestCreateStampsSeller(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	p, err := svc.Create(context.Background(), seller, validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "new-id" {
		t.Fatalf("expected repository id, got %q", p.ID)
	}
	if repo.created.SellerID != "s1" {
		t.Fatalf("expected seller id stamped, got %q", repo.created.SellerID)
	}
}

func TestUpdateRejectsForeignProduct(t *testing.T) {
	repo := &stubRepo{product: &domain.Product{ID: "p1", SellerID: "someone-else"}}
	svc := New(repo)

	_, err := svc.Update(context.Background(), "p1", seller, validInput())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if repo.updated != nil {
		t.Fatal("Update should not reach the repository")
	}
}

func TestUpdateRewritesOwnProduct(t *testing.T) {
	repo := &stubRepo{product: &domain.Product{ID: "p1", SellerID: "s1", Name: "old", PriceCents: 1}}
	svc := New(repo)

	in := validInput()
	in.Name = "Renamed"
	p, err := svc.Update(context.Background(), "p1", seller, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Renamed" || p.PriceCents != 1000 {
		t.Fatalf("update not applied: %+v", p)
	}
	if repo.updated.SellerID != "s1" {
		t.Fatalf("seller must not change, got %q", repo.updated.SellerID)
	}
}

func TestDeleteRejectsForeignProduct(t *testing.T) {
	repo := &stubRepo{product: &domain.Product{ID: "p1", SellerID: "someone-else"}}
	svc := New(repo)

	if err := svc.Delete(context.Background(), "p1", seller); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if repo.deleteCalled {
		t.Fatal("Delete should not reach the repository")
	}
}

func TestDeleteOwnProduct(t *testing.T) {
	repo := &stubRepo{product: &domain.Product{ID: "p1", SellerID: "s1"}}
	svc := New(repo)

	if err := svc.Delete(context.Background(), "p1", seller); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deletedID != "p1" {
		t.Fatalf("unexpected delete target %q", repo.deletedID)
	}
}

func TestDashboardCounts(t *testing.T) {
	repo := &stubRepo{products: []domain.Product{
		{ID: "p1", Stock: 5},
		{ID: "p2", Stock: 0},
		{ID: "p3", Stock: 1},
	}}
	svc := New(repo)

	stats, err := svc.Dashboard(context.Background(), seller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalProducts != 3 || stats.ActiveProducts != 2 || stats.OutOfStock != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestCategoriesStable(t *testing.T) {
	svc := New(&stubRepo{})
	got := svc.Categories()
	if len(got) != 6 || got[0] != "mens" || got[5] != "formal" {
		t.Fatalf("unexpected categories: %v", got)
	}
}
