package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates the caller is not allowed to act on the entity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInsufficientStock indicates a requested quantity exceeds available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)
