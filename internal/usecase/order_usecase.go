package usecase

import (
	"context"

	"drogo/internal/domain/entity"

	"github.com/google/uuid"
)

// StatusObserver is notified after an order status change has been persisted.
// Observers must not block order processing; failures are logged and dropped.
type StatusObserver interface {
	// OrderStatusChanged receives the order carrying its new status.
	OrderStatusChanged(ctx context.Context, order *entity.Order)
}

// OrderUsecase defines the interface for order lifecycle use cases
type OrderUsecase interface {
	// PlaceOrder checks the checkout preconditions, persists a confirmed
	// order snapshotted from the user's cart and selection, clears the cart
	// and schedules the simulated fulfillment progression. A failed
	// precondition mutates nothing.
	PlaceOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// GetOrder retrieves a single order of the given user. An order owned
	// by someone else reads as not found.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// GetUserOrders retrieves a user's order history, newest first.
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// CurrentOrder returns the user's most recent order still in a pending
	// status, or nil when none is in flight.
	CurrentOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// UpdateStatus applies a status change to an order, enforcing the
	// forward-only transition rule, and notifies observers on success.
	// Unscoped; reachable only through the admin role gate.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// CancelOrder cancels a non-terminal order of the given user and stops
	// any pending fulfillment steps.
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// PickupQR renders the PNG QR code a drone pilot scans at handover,
	// for the order's owner only.
	PickupQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)

	// ConfirmPickup resolves a scanned pickup QR payload to its order and
	// marks the handover complete. Admin path.
	ConfirmPickup(ctx context.Context, qrData string) (*entity.Order, error)
}
