package usecase

import (
	"context"

	"drogo/internal/domain/entity"
)

// Analytics is the admin dashboard summary. PendingOrders counts orders still
// in the confirmed status; CompletedOrders counts delivered ones.
type Analytics struct {
	TotalOrders     int `json:"total_orders"`
	PendingOrders   int `json:"pending_orders"`
	CompletedOrders int `json:"completed_orders"`
	TotalRevenue    int `json:"total_revenue"`
}

// AdminUsecase defines the interface for admin use cases
type AdminUsecase interface {
	// ListAllOrders retrieves every order, newest first.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// GetAnalytics computes the dashboard summary over all orders.
	GetAnalytics(ctx context.Context) (*Analytics, error)

	// ListWaitlist retrieves every waitlist submission, newest first.
	ListWaitlist(ctx context.Context) ([]*entity.WaitlistEntry, error)
}
