package service

import (
	"context"
)

// OrderStatusEvent is published on every order status change so external
// consumers (dashboards, downstream fulfillment) can react without polling.
type OrderStatusEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing.
	OrderID     string `json:"order_id"`
	UserID      string `json:"user_id"`
	Status      string `json:"status"`
	TotalAmount int    `json:"total_amount"`
}

// EventPublisher defines the interface for publishing order events to a
// message queue.
type EventPublisher interface {
	// PublishOrderStatusEvent publishes a status-change event.
	PublishOrderStatusEvent(ctx context.Context, event *OrderStatusEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
