package usecase

import (
	"context"

	"drogo/internal/domain/entity"

	"github.com/google/uuid"
)

// CartView is the cart snapshot returned to callers: the raw quantity map
// together with the resolved, priced lines and the derived totals.
type CartView struct {
	Items  map[string]int    `json:"items"`
	Lines  []entity.OrderItem `json:"lines"`
	Totals entity.CartTotals  `json:"totals"`
}

// CartUsecase defines the interface for cart use cases. Every mutation
// persists the full cart before returning.
type CartUsecase interface {
	// GetCart returns the user's cart with resolved lines and totals.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// AddItem adds qty units of a product to the cart. qty defaults to one
	// when non-positive input has been normalized away by the handler.
	AddItem(ctx context.Context, userID uuid.UUID, productID string, qty int) (*CartView, error)

	// IncreaseItem bumps a product's quantity by one.
	IncreaseItem(ctx context.Context, userID uuid.UUID, productID string) (*CartView, error)

	// DecreaseItem lowers a product's quantity by one, removing the line at
	// zero.
	DecreaseItem(ctx context.Context, userID uuid.UUID, productID string) (*CartView, error)

	// RemoveItem drops a product line regardless of its quantity.
	RemoveItem(ctx context.Context, userID uuid.UUID, productID string) (*CartView, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
