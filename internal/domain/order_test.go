package domain

import "testing"

func TestParseOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want OrderStatus
	}{
		{"PENDING", OrderPending},
		{"shipped", OrderShipped},
		{" Delivered ", OrderDelivered},
		{"CANCELLED", OrderCancelled},
	}
	for _, tc := range cases {
		got, err := ParseOrderStatus(tc.in)
		if err != nil {
			t.Fatalf("ParseOrderStatus(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseOrderStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseOrderStatusRejectsUnknown(t *testing.T) {
	if _, err := ParseOrderStatus("TELEPORTED"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if _, err := ParseOrderStatus(""); err == nil {
		t.Fatal("expected error for empty status")
	}
}

func TestParsePaymentStatus(t *testing.T) {
	got, err := ParsePaymentStatus("completed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != PaymentCompleted {
		t.Fatalf("got %q, want %q", got, PaymentCompleted)
	}

	if _, err := ParsePaymentStatus("MAYBE"); err == nil {
		t.Fatal("expected error for unknown payment status")
	}
}
