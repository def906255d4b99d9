package notify

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"drogo/internal/domain/entity"
	"drogo/internal/domain/repository"
	mockRepo "drogo/internal/mocks/repository"
	mockSvc "drogo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixtures struct {
	dispatcher *Dispatcher
	notifier   *mockSvc.MockNotifier
	userRepo   *mockRepo.MockUserRepository
}

func createTestDispatcher(t *testing.T) dispatcherFixtures {
	notifier := mockSvc.NewMockNotifier(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	dispatcher := NewDispatcher(notifier, userRepo, slog.Default())

	return dispatcherFixtures{
		dispatcher: dispatcher,
		notifier:   notifier,
		userRepo:   userRepo,
	}
}

func testOrder(status entity.OrderStatus) *entity.Order {
	now := time.Now()

	return &entity.Order{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(10 * time.Minute),
	}
}

func TestDispatcher_SendsStatusPush(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	order := testOrder(entity.StatusDispatched)
	user := &entity.User{ID: order.UserID, DeviceTokens: []string{"tok-1", "tok-2"}}

	fx.userRepo.EXPECT().FindUserByID(ctx, order.UserID).Return(user, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1", "tok-2"},
			"🚁 Drone Dispatched!",
			"Your order is on its way! Track your delivery in the app.",
			map[string]string{"order_id": order.ID.String(), "status": "dispatched"}).
		Return(2, 0, nil, nil)

	fx.dispatcher.OrderStatusChanged(ctx, order)
}

func TestDispatcher_ConfirmedBodyCarriesReferenceAndETA(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	order := testOrder(entity.StatusConfirmed)
	user := &entity.User{ID: order.UserID, DeviceTokens: []string{"tok-1"}}

	fx.userRepo.EXPECT().FindUserByID(ctx, order.UserID).Return(user, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1"}, "✅ Order Confirmed!",
			mock.MatchedBy(func(body string) bool {
				return strings.HasPrefix(body, "Your order #"+order.Reference()) &&
					strings.Contains(body, "Estimated delivery:")
			}),
			mock.Anything).
		Return(1, 0, nil, nil)

	fx.dispatcher.OrderStatusChanged(ctx, order)
}

func TestDispatcher_CancelledProducesNoPush(t *testing.T) {
	fx := createTestDispatcher(t)

	// No expectations on either mock; any call would fail the test.
	fx.dispatcher.OrderStatusChanged(context.Background(), testOrder(entity.StatusCancelled))
}

func TestDispatcher_NoTokensNoPush(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	order := testOrder(entity.StatusDelivered)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, order.UserID).
		Return(&entity.User{ID: order.UserID}, nil)

	fx.dispatcher.OrderStatusChanged(ctx, order)
}

func TestDispatcher_UserLookupFailureIsSilent(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	order := testOrder(entity.StatusPreparing)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, order.UserID).
		Return(nil, repository.ErrUserNotFound)

	fx.dispatcher.OrderStatusChanged(ctx, order)
}

func TestDispatcher_PrunesInvalidTokens(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	order := testOrder(entity.StatusInTransit)
	user := &entity.User{ID: order.UserID, DeviceTokens: []string{"dead", "alive"}}

	fx.userRepo.EXPECT().FindUserByID(ctx, order.UserID).Return(user, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"dead", "alive"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 1, []string{"dead"}, nil)
	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, []string{"alive"}, updated.DeviceTokens)
		}).
		Return(nil)

	fx.dispatcher.OrderStatusChanged(ctx, order)
	require.NotContains(t, user.DeviceTokens, "dead")
}
