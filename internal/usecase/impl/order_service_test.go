package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"drogo/config"
	"drogo/internal/catalog"
	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"
	mockRepo "drogo/internal/mocks/repository"
	mockSvc "drogo/internal/mocks/service"
	"drogo/internal/scheduler"
	"drogo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingObserver captures every status change fanned out by the service.
type recordingObserver struct {
	mu     sync.Mutex
	orders []*entity.Order
}

func (o *recordingObserver) OrderStatusChanged(_ context.Context, order *entity.Order) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.orders = append(o.orders, order)
}

func (o *recordingObserver) seen() []*entity.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]*entity.Order(nil), o.orders...)
}

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	cartRepo    *mockRepo.MockCartRepository
	locRepo     *mockRepo.MockLocationRepository
	userRepo    *mockRepo.MockUserRepository
	txManager   *mockRepo.MockTransactionManager
	publisher   *mockSvc.MockEventPublisher
	qrcodeSvc   *mockSvc.MockQRCodeService
	progression *scheduler.Fulfillment
	observer    *recordingObserver
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	locRepo := mockRepo.NewMockLocationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	observer := &recordingObserver{}

	// Offsets far beyond the test lifetime; Stop cancels the pending run so
	// no step ever fires against the mocks.
	progression := scheduler.New(&config.FulfillmentConfig{
		PreparingAfter:          time.Hour,
		DispatchedAfter:         2 * time.Hour,
		InTransitAfter:          3 * time.Hour,
		DeliveredAfter:          4 * time.Hour,
		EstimatedDeliveryWindow: 10 * time.Minute,
	}, slog.Default())
	t.Cleanup(progression.Stop)

	cfg := &config.Config{Fulfillment: config.DefaultFulfillment()}

	service := NewOrderService(
		orderRepo, cartRepo, locRepo, userRepo, txManager,
		catalog.New(), publisher, qrcodeSvc, progression,
		[]usecase.StatusObserver{observer}, cfg, slog.Default(),
	)

	return orderServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		locRepo:     locRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		publisher:   publisher,
		qrcodeSvc:   qrcodeSvc,
		progression: progression,
		observer:    observer,
	}
}

func testSelection() *entity.LocationSelection {
	spot, _ := catalog.SpotByID("spot_1")

	return &entity.LocationSelection{
		SelectedAddress:   "Andheri Metro Station, Andheri West, Mumbai",
		TerraceAccessible: true,
		SelectedSpot:      &spot,
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "a@b.c"}, nil)

	cart := entity.NewCart()
	cart.Add("almonds-500g", 2)
	fx.cartRepo.EXPECT().LoadCart(ctx, userID).Return(cart, nil)
	fx.locRepo.EXPECT().LoadSelection(ctx, userID).Return(testSelection(), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	factory.EXPECT().NewCartRepository().Return(fx.cartRepo)
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	fx.cartRepo.EXPECT().ClearCart(ctx, userID).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fx.publisher.EXPECT().
		PublishOrderStatusEvent(ctx, mock.AnythingOfType("*service.OrderStatusEvent")).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, entity.StatusConfirmed, order.Status)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, 962, order.TotalAmount) // 898 + 19 fee + 45 tax
	require.Len(t, order.Items, 1)
	assert.Equal(t, "almonds-500g", order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 898, order.Items[0].LineTotal)
	assert.Equal(t, order.CreatedAt.Add(10*time.Minute), order.EstimatedDelivery)
	assert.Equal(t, "Andheri Metro Station, Andheri West, Mumbai", order.DeliveryAddress)
	require.NotNil(t, order.DeliverySpot)
	assert.Equal(t, "spot_1", order.DeliverySpot.ID)

	seen := fx.observer.seen()
	require.Len(t, seen, 1)
	assert.Equal(t, entity.StatusConfirmed, seen[0].Status)
}

func TestOrderService_PlaceOrder_SignInRequired(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	order, err := fx.service.PlaceOrder(ctx, userID)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrSignInRequired, err)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().LoadCart(ctx, userID).Return(entity.NewCart(), nil)

	order, err := fx.service.PlaceOrder(ctx, userID)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrEmptyCart, err)
	assert.Empty(t, fx.observer.seen())
}

func TestOrderService_PlaceOrder_MissingAddress(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	cart := entity.NewCart()
	cart.Add("green-tea", 1)
	fx.cartRepo.EXPECT().LoadCart(ctx, userID).Return(cart, nil)
	fx.locRepo.EXPECT().LoadSelection(ctx, userID).Return(&entity.LocationSelection{}, nil)

	order, err := fx.service.PlaceOrder(ctx, userID)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrMissingAddress, err)
}

func TestOrderService_PlaceOrder_MissingSpot(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	cart := entity.NewCart()
	cart.Add("green-tea", 1)
	fx.cartRepo.EXPECT().LoadCart(ctx, userID).Return(cart, nil)

	selection := testSelection()
	selection.SelectedSpot = nil
	fx.locRepo.EXPECT().LoadSelection(ctx, userID).Return(selection, nil)

	order, err := fx.service.PlaceOrder(ctx, userID)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrMissingDeliverySpot, err)
}

func TestOrderService_PlaceOrder_UnresolvableCartOnly(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	// Only an id the catalog no longer knows: subtotal 0, total 0.
	cart := entity.NewCart()
	cart.Add("discontinued-item", 3)
	fx.cartRepo.EXPECT().LoadCart(ctx, userID).Return(cart, nil)

	order, err := fx.service.PlaceOrder(ctx, userID)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrZeroTotal, err)
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	placed := time.Now().Add(-time.Minute)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusConfirmed, CreatedAt: placed, UpdatedAt: placed}, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.StatusPreparing, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderStatusEvent(ctx, mock.AnythingOfType("*service.OrderStatusEvent")).
		Return(nil)

	order, err := fx.service.UpdateStatus(ctx, orderID, entity.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, order.Status)
	assert.True(t, order.UpdatedAt.After(placed))

	seen := fx.observer.seen()
	require.Len(t, seen, 1)
	assert.Equal(t, entity.StatusPreparing, seen[0].Status)
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.UpdateStatus(ctx, orderID, entity.StatusPreparing)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusDelivered}, nil)

	order, err := fx.service.UpdateStatus(ctx, orderID, entity.StatusPreparing)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
	assert.Empty(t, fx.observer.seen())
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.UpdateStatus(context.Background(), uuid.New(), entity.OrderStatus("teleported"))
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN_STATUS", appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_LostRace(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	// The read sees a confirmed order, but by write time another writer has
	// moved it somewhere preparing is unreachable from. The store rejects
	// the write and no event may go out for the stale state.
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusConfirmed}, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.StatusPreparing, mock.AnythingOfType("time.Time")).
		Return(repository.ErrInvalidStatusTransition)

	order, err := fx.service.UpdateStatus(ctx, orderID, entity.StatusPreparing)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
	assert.Empty(t, fx.observer.seen())
}

func TestOrderService_GetOrder_OtherUsersOrderHidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.StatusConfirmed}, nil)

	order, err := fx.service.GetOrder(ctx, uuid.New(), orderID)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_CancelOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Status: entity.StatusDispatched}, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.StatusCancelled, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderStatusEvent(ctx, mock.AnythingOfType("*service.OrderStatusEvent")).
		Return(nil)

	order, err := fx.service.CancelOrder(ctx, userID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, order.Status)
}

func TestOrderService_CancelOrder_OtherUsersOrderHidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.StatusConfirmed}, nil)

	order, err := fx.service.CancelOrder(ctx, uuid.New(), orderID)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
	assert.Empty(t, fx.observer.seen())
}

func TestOrderService_CurrentOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	delivered := &entity.Order{ID: uuid.New(), Status: entity.StatusDelivered}
	preparing := &entity.Order{ID: uuid.New(), Status: entity.StatusPreparing}
	fx.orderRepo.EXPECT().
		FindOrdersByUser(ctx, userID).
		Return([]*entity.Order{delivered, preparing}, nil)

	order, err := fx.service.CurrentOrder(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, preparing.ID, order.ID)
}

func TestOrderService_CurrentOrder_NoneInFlight(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrdersByUser(ctx, userID).
		Return([]*entity.Order{{ID: uuid.New(), Status: entity.StatusCancelled}}, nil)

	order, err := fx.service.CurrentOrder(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestOrderService_PickupQR(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Status: entity.StatusConfirmed}, nil)
	fx.qrcodeSvc.EXPECT().
		GeneratePickupQR(orderID).
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.PickupQR(ctx, userID, orderID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestOrderService_PickupQR_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	png, err := fx.service.PickupQR(ctx, uuid.New(), orderID)
	assert.Nil(t, png)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_PickupQR_OtherUsersOrderHidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.StatusConfirmed}, nil)

	png, err := fx.service.PickupQR(ctx, uuid.New(), orderID)
	assert.Nil(t, png)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_ConfirmPickup(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	qrData := `{"type":"pickup","order_id":"` + orderID.String() + `"}`

	fx.qrcodeSvc.EXPECT().
		ParsePickupQR(qrData).
		Return(orderID, nil)
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusInTransit}, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.StatusDelivered, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderStatusEvent(ctx, mock.AnythingOfType("*service.OrderStatusEvent")).
		Return(nil)

	order, err := fx.service.ConfirmPickup(ctx, qrData)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, order.Status)
}

func TestOrderService_ConfirmPickup_InvalidPayload(t *testing.T) {
	fx := createTestOrderService(t)

	fx.qrcodeSvc.EXPECT().
		ParsePickupQR("not-a-pickup-code").
		Return(uuid.Nil, assert.AnError)

	order, err := fx.service.ConfirmPickup(context.Background(), "not-a-pickup-code")
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_QR_CODE", appErr.ErrorCode())
	assert.Empty(t, fx.observer.seen())
}
