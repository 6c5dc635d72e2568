package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	SellerID    string    `json:"sellerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand,omitempty"`
	Size        string    `json:"size,omitempty"`
	Color       string    `json:"color,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
