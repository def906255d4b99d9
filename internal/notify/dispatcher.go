// Package notify turns order status changes into push notifications. The
// dispatcher observes the order lifecycle; delivery failures are logged and
// never affect order processing.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"drogo/internal/domain/entity"
	"drogo/internal/domain/repository"
	"drogo/internal/domain/service"
	"drogo/internal/usecase"
)

// message is the push copy for one status.
type message struct {
	title string
	body  string
}

// statusMessages maps each status to its push copy. Cancelled is absent on
// purpose: cancellations produce no push.
var statusMessages = map[entity.OrderStatus]message{
	entity.StatusConfirmed: {
		title: "✅ Order Confirmed!",
		body:  "Your order #%s has been confirmed. Estimated delivery: %s",
	},
	entity.StatusPreparing: {
		title: "📦 Order Being Prepared",
		body:  "Your items are being packed with care. Drone dispatch soon!",
	},
	entity.StatusDispatched: {
		title: "🚁 Drone Dispatched!",
		body:  "Your order is on its way! Track your delivery in the app.",
	},
	entity.StatusInTransit: {
		title: "✈️ Almost There!",
		body:  "Your drone is approaching the delivery location.",
	},
	entity.StatusDelivered: {
		title: "📦 Order Delivered!",
		body:  "Your order has been delivered successfully. Enjoy your items!",
	},
}

// Dispatcher sends a push to every device token of the order's owner when the
// order reaches a status with copy. Implements usecase.StatusObserver.
type Dispatcher struct {
	notifier service.Notifier
	userRepo repository.UserRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewDispatcher creates a new dispatcher instance
func NewDispatcher(notifier service.Notifier, userRepo repository.UserRepository, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

var _ usecase.StatusObserver = (*Dispatcher)(nil)

// OrderStatusChanged sends the status push for one order. Statuses without
// copy, missing users and delivery failures are all silent no-ops apart from
// a log line.
func (d *Dispatcher) OrderStatusChanged(ctx context.Context, order *entity.Order) {
	msg, ok := statusMessages[order.Status]
	if !ok {
		return
	}

	user, err := d.userRepo.FindUserByID(ctx, order.UserID)
	if err != nil {
		d.logger.Warn("push skipped, user lookup failed",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err))

		return
	}
	if len(user.DeviceTokens) == 0 {
		return
	}

	body := msg.body
	if order.Status == entity.StatusConfirmed {
		body = fmt.Sprintf(msg.body, order.Reference(), order.EstimatedDeliveryText(d.now()))
	}
	data := map[string]string{
		"order_id": order.ID.String(),
		"status":   string(order.Status),
	}

	success, failure, invalid, err := d.notifier.SendBatchNotification(ctx, user.DeviceTokens, msg.title, body, data)
	if err != nil {
		d.logger.Warn("push dispatch failed",
			slog.String("order_id", order.ID.String()),
			slog.String("status", string(order.Status)),
			slog.Any("error", err))

		return
	}

	d.logger.Debug("push dispatched",
		slog.String("order_id", order.ID.String()),
		slog.String("status", string(order.Status)),
		slog.Int("success", success),
		slog.Int("failure", failure))

	if len(invalid) > 0 {
		d.pruneTokens(ctx, user, invalid)
	}
}

// pruneTokens forgets tokens the push provider reported invalid, so dead
// devices stop accumulating on the account.
func (d *Dispatcher) pruneTokens(ctx context.Context, user *entity.User, invalid []string) {
	for _, token := range invalid {
		user.RemoveDeviceToken(token)
	}
	if err := d.userRepo.UpdateUser(ctx, user); err != nil {
		d.logger.Warn("failed to prune invalid device tokens",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err))
	}
}
