package impl

import (
	"context"
	"fmt"

	"drogo/internal/domain/entity"
	"drogo/internal/domain/repository"
	"drogo/internal/usecase"
)

type adminService struct {
	orderRepo    repository.OrderRepository
	waitlistRepo repository.WaitlistRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(orderRepo repository.OrderRepository, waitlistRepo repository.WaitlistRepository) usecase.AdminUsecase {
	return &adminService{
		orderRepo:    orderRepo,
		waitlistRepo: waitlistRepo,
	}
}

// ListAllOrders retrieves every order, newest first.
func (s *adminService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

// GetAnalytics computes the dashboard summary over all orders. Pending
// counts only confirmed orders; completed counts delivered ones. Revenue
// sums every order regardless of status.
func (s *adminService) GetAnalytics(ctx context.Context) (*usecase.Analytics, error) {
	orders, err := s.orderRepo.FindAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	analytics := &usecase.Analytics{TotalOrders: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case entity.StatusConfirmed:
			analytics.PendingOrders++
		case entity.StatusDelivered:
			analytics.CompletedOrders++
		}
		analytics.TotalRevenue += order.TotalAmount
	}

	return analytics, nil
}

// ListWaitlist retrieves every waitlist submission, newest first.
func (s *adminService) ListWaitlist(ctx context.Context) ([]*entity.WaitlistEntry, error) {
	entries, err := s.waitlistRepo.FindAllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find waitlist entries: %w", err)
	}

	return entries, nil
}
