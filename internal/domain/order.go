package domain

import (
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
	OrderRefunded   OrderStatus = "REFUNDED"
)

// ParseOrderStatus validates a status value at the transition site.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderPending:
		return OrderPending, nil
	case OrderConfirmed:
		return OrderConfirmed, nil
	case OrderProcessing:
		return OrderProcessing, nil
	case OrderShipped:
		return OrderShipped, nil
	case OrderDelivered:
		return OrderDelivered, nil
	case OrderCancelled:
		return OrderCancelled, nil
	case OrderRefunded:
		return OrderRefunded, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case PaymentPending:
		return PaymentPending, nil
	case PaymentCompleted:
		return PaymentCompleted, nil
	case PaymentFailed:
		return PaymentFailed, nil
	case PaymentRefunded:
		return PaymentRefunded, nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// Order is immutable after checkout except for status transitions.
type Order struct {
	ID              string        `json:"id"`
	BuyerID         string        `json:"buyerId"`
	ShippingAddress string        `json:"shippingAddress"`
	PaymentMethod   string        `json:"paymentMethod"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	TotalCents      int64         `json:"totalCents"`
	CreatedAt       time.Time     `json:"createdAt"`
	Items           []OrderItem   `json:"items"`
}

// OrderItem snapshots product name and unit price at order time, so
// later catalog edits do not rewrite order history.
type OrderItem struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"orderId"`
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	CreatedAt      time.Time `json:"createdAt"`
}
