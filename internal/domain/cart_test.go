package domain

import "testing"

func TestCartTotal(t *testing.T) {
	productA := &Product{ID: "a", Name: "A", PriceCents: 1000, Stock: 5}
	productB := &Product{ID: "b", Name: "B", PriceCents: 2500, Stock: 1}
	cart := Cart{
		Items: []CartItem{
			{ProductID: "a", Quantity: 2, Product: productA},
			{ProductID: "b", Quantity: 1, Product: productB},
		},
	}

	if got := cart.Total(); got != 4500 {
		t.Fatalf("Total() = %d, want 4500", got)
	}
}

func TestCartTotalEmpty(t *testing.T) {
	var cart Cart
	if got := cart.Total(); got != 0 {
		t.Fatalf("Total() = %d, want 0", got)
	}
}

func TestItemByProduct(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ID: "i1", ProductID: "a", Quantity: 2},
			{ID: "i2", ProductID: "b", Quantity: 1},
		},
	}

	item := cart.ItemByProduct("b")
	if item == nil || item.ID != "i2" {
		t.Fatalf("unexpected item %+v", item)
	}
	if cart.ItemByProduct("missing") != nil {
		t.Fatal("expected nil for missing product")
	}
}
