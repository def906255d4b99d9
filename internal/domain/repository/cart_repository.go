// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"drogo/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository persists the full cart of a user after every mutation.
// Loading never fails on a corrupt stored cart; the store discards it and
// returns an empty cart instead.
type CartRepository interface {
	// SaveCart overwrites the stored cart for a user.
	SaveCart(ctx context.Context, userID uuid.UUID, cart *entity.Cart) error

	// LoadCart retrieves a user's cart. A missing or unreadable cart loads
	// as an empty one, never as an error.
	LoadCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// ClearCart removes the stored cart for a user.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
