package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"drogo/config"
	"drogo/internal/catalog"
	deliverycontext "drogo/internal/delivery/context"
	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"
	"drogo/internal/domain/service"
	"drogo/internal/errors"
	"drogo/internal/scheduler"
	"drogo/internal/usecase"

	"github.com/google/uuid"
)

// progressionScheduler is the slice of the fulfillment scheduler the order
// service uses. Satisfied by *scheduler.Fulfillment.
type progressionScheduler interface {
	Schedule(orderID uuid.UUID, apply scheduler.ApplyFunc)
	Cancel(orderID uuid.UUID)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
	txManager    repository.TransactionManager
	catalog      *catalog.Catalog
	publisher    service.EventPublisher
	qrcodeSvc    service.QRCodeService
	progression  progressionScheduler
	observers    []usecase.StatusObserver
	window       time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	c *catalog.Catalog,
	publisher service.EventPublisher,
	qrcodeSvc service.QRCodeService,
	progression *scheduler.Fulfillment,
	observers []usecase.StatusObserver,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	fulfillment := cfg.Fulfillment
	if fulfillment == nil {
		fulfillment = config.DefaultFulfillment()
	}

	return &orderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		catalog:      c,
		publisher:    publisher,
		qrcodeSvc:    qrcodeSvc,
		progression:  progression,
		observers:    observers,
		window:       fulfillment.EstimatedDeliveryWindow,
		logger:       logger,
		now:          time.Now,
	}
}

// PlaceOrder checks the checkout preconditions, persists a confirmed order
// snapshotted from the user's cart and selection, clears the cart atomically
// with the order write and schedules the simulated progression. A failed
// precondition mutates nothing.
func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrSignInRequired
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	cart, err := s.cartRepo.LoadCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	cart.Normalize()
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	totals := cart.Totals(s.catalog.ByID)
	if totals.Total <= 0 {
		return nil, domainerrors.ErrZeroTotal
	}

	selection, err := s.locationRepo.LoadSelection(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}
	if !selection.HasAddress() {
		return nil, domainerrors.ErrMissingAddress
	}
	if !selection.HasSpot() {
		return nil, domainerrors.ErrMissingDeliverySpot
	}

	now := s.now()
	order := &entity.Order{
		ID:                uuid.New(),
		UserID:            userID,
		Items:             s.snapshotItems(cart),
		TotalAmount:       totals.Total,
		DeliveryAddress:   selection.SelectedAddress,
		DeliverySpot:      selection.SelectedSpot,
		TerraceAccessible: selection.TerraceAccessible,
		Status:            entity.StatusConfirmed,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(s.window),
	}

	// Order creation and cart clearing commit or roll back together.
	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := repos.NewCartRepository().ClearCart(ctx, userID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitStatusChange(ctx, order)
	s.progression.Schedule(order.ID, s.applyScheduledStatus)

	return order, nil
}

// snapshotItems prices the cart into order lines, in catalog order. Entries
// that no longer resolve are dropped, matching the totals math.
func (s *orderService) snapshotItems(cart *entity.Cart) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, product := range s.catalog.List("") {
		qty := cart.Quantity(product.ID)
		if qty == 0 {
			continue
		}
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  qty,
			UnitPrice: product.Price,
			LineTotal: product.Price * qty,
		})
	}

	return items
}

// GetOrder retrieves a single order of the given user. An order that exists
// but belongs to someone else reads as not found; order ids are not an
// access token.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// findOrder loads an order without ownership scoping. Internal paths only:
// the admin status operation and the scheduler steps.
func (s *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// GetUserOrders retrieves a user's order history, newest first.
func (s *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

// CurrentOrder returns the user's most recent order still in a pending
// status, or nil when none is in flight.
func (s *orderService) CurrentOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	for _, order := range orders {
		if order.Status.Pending() {
			return order, nil
		}
	}

	return nil, nil
}

// UpdateStatus applies a status change to an order. The forward-only
// transition rule is checked here for a descriptive error, and again by the
// store at write time: a writer that loses the race against a concurrent
// cancellation or scheduler step gets a conflict, never a regressed status.
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrUnknownStatus.WithDetails(string(status))
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("%s -> %s", order.Status, status))
	}

	now := s.now()
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status, now); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		if errors.Is(err, repository.ErrInvalidStatusTransition) {
			return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
				fmt.Sprintf("concurrent update, %s no longer reachable", status))
		}

		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = status
	order.UpdatedAt = now

	if status == entity.StatusCancelled {
		s.progression.Cancel(orderID)
	}

	s.emitStatusChange(ctx, order)

	return order, nil
}

// CancelOrder cancels a non-terminal order of the given user and stops its
// pending fulfillment steps.
func (s *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	if _, err := s.GetOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}

	return s.UpdateStatus(ctx, orderID, entity.StatusCancelled)
}

// PickupQR renders the PNG QR code a drone pilot scans at handover. Scoped
// to the order's owner like GetOrder.
func (s *orderService) PickupQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	if _, err := s.GetOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GeneratePickupQR(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate pickup QR: %w", err)
	}

	return png, nil
}

// ConfirmPickup resolves a scanned pickup QR payload to its order and marks
// the handover complete. Admin path: the scanner is the drone operator, not
// the customer.
func (s *orderService) ConfirmPickup(ctx context.Context, qrData string) (*entity.Order, error) {
	orderID, err := s.qrcodeSvc.ParsePickupQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return s.UpdateStatus(ctx, orderID, entity.StatusDelivered)
}

// applyScheduledStatus is the scheduler callback: one step of the simulated
// progression. An order that was cancelled in the meantime fails the
// transition check and aborts the remaining steps.
func (s *orderService) applyScheduledStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	_, err := s.UpdateStatus(ctx, orderID, status)

	return err
}

// emitStatusChange publishes the status event and fans the order out to the
// observers. Neither may fail order processing; errors are logged only.
func (s *orderService) emitStatusChange(ctx context.Context, order *entity.Order) {
	event := &service.OrderStatusEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
	}
	if err := s.publisher.PublishOrderStatusEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish order status event",
			slog.String("order_id", order.ID.String()),
			slog.String("status", string(order.Status)),
			slog.Any("error", err))
	}

	for _, observer := range s.observers {
		observer.OrderStatusChanged(ctx, order)
	}
}
