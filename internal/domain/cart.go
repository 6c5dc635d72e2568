package domain

import "time"

// Cart is the per-user pre-checkout collection. One cart per user,
// created lazily and only ever emptied, never deleted.
type Cart struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	TotalCents int64      `json:"totalCents"`
	CreatedAt  time.Time  `json:"createdAt"`
	Items      []CartItem `json:"items"`
}

// CartItem pairs a product with a quantity. At most one item per
// (cart, product); adding an existing product merges quantities.
type CartItem struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cartId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemByProduct returns the line holding productID, or nil.
func (c *Cart) ItemByProduct(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Total sums current product price times quantity over all lines, in cents.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		if item.Product == nil {
			continue
		}
		total += item.Product.PriceCents * int64(item.Quantity)
	}
	return total
}
