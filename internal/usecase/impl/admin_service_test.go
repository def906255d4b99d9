package impl

import (
	"context"
	"testing"

	"drogo/internal/domain/entity"
	mockRepo "drogo/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_GetAnalytics(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	waitlistRepo := mockRepo.NewMockWaitlistRepository(t)
	service := NewAdminService(orderRepo, waitlistRepo)

	ctx := context.Background()
	orders := []*entity.Order{
		{ID: uuid.New(), Status: entity.StatusConfirmed, TotalAmount: 962},
		{ID: uuid.New(), Status: entity.StatusPreparing, TotalAmount: 120},
		{ID: uuid.New(), Status: entity.StatusDelivered, TotalAmount: 500},
		{ID: uuid.New(), Status: entity.StatusDelivered, TotalAmount: 300},
		{ID: uuid.New(), Status: entity.StatusCancelled, TotalAmount: 75},
	}
	orderRepo.EXPECT().FindAllOrders(ctx).Return(orders, nil)

	analytics, err := service.GetAnalytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, analytics.TotalOrders)
	assert.Equal(t, 1, analytics.PendingOrders)   // confirmed only
	assert.Equal(t, 2, analytics.CompletedOrders) // delivered only
	assert.Equal(t, 962+120+500+300+75, analytics.TotalRevenue)
}

func TestAdminService_GetAnalytics_NoOrders(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	waitlistRepo := mockRepo.NewMockWaitlistRepository(t)
	service := NewAdminService(orderRepo, waitlistRepo)

	ctx := context.Background()
	orderRepo.EXPECT().FindAllOrders(ctx).Return(nil, nil)

	analytics, err := service.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Zero(t, analytics.TotalOrders)
	assert.Zero(t, analytics.TotalRevenue)
}

func TestAdminService_ListAllOrders(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	waitlistRepo := mockRepo.NewMockWaitlistRepository(t)
	service := NewAdminService(orderRepo, waitlistRepo)

	ctx := context.Background()
	orders := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}
	orderRepo.EXPECT().FindAllOrders(ctx).Return(orders, nil)

	got, err := service.ListAllOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestAdminService_ListWaitlist(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	waitlistRepo := mockRepo.NewMockWaitlistRepository(t)
	service := NewAdminService(orderRepo, waitlistRepo)

	ctx := context.Background()
	entries := []*entity.WaitlistEntry{{ID: uuid.New(), Name: "Ravi"}}
	waitlistRepo.EXPECT().FindAllEntries(ctx).Return(entries, nil)

	got, err := service.ListWaitlist(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
