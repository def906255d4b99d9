// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"drogo/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order id does not resolve.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatusTransition is returned when a status write loses the
	// race against a conflicting one: the stored status no longer allows
	// the requested transition at write time.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// OrderRepository defines the interface for order-related store operations.
// Orders are append-only: they are created once and only their status and
// updated timestamp change afterwards.
type OrderRepository interface {
	// CreateOrder persists a new order record.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser retrieves a user's order history, newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindAllOrders retrieves every order, newest first. Admin path.
	FindAllOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus sets the status and updated timestamp of the order
	// with the given id. The write is conditional: the store re-checks the
	// transition against the status it holds at write time, so concurrent
	// writers cannot regress a status or leave a terminal one. Returns
	// ErrOrderNotFound for an unknown id and ErrInvalidStatusTransition
	// when the stored status no longer allows the move. Callers pass the
	// transition time; stores never read the clock.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error
}
