package domain

import "time"

// Role distinguishes buyers from sellers. A seller can also buy.
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

// User is a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
