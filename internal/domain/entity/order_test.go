package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo_ForwardOnly(t *testing.T) {
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusPreparing))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusDelivered)) // forward jumps allowed
	assert.True(t, StatusPreparing.CanTransitionTo(StatusPreparing)) // same index allowed
	assert.True(t, StatusInTransit.CanTransitionTo(StatusCancelled))

	assert.False(t, StatusDispatched.CanTransitionTo(StatusPreparing), "status index must never decrease")
	assert.False(t, StatusDelivered.CanTransitionTo(StatusCancelled), "delivered is terminal")
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed), "cancelled is terminal")
	assert.False(t, StatusConfirmed.CanTransitionTo(OrderStatus("lost")))
}

func TestOrderStatus_Info_UnknownFallsBackToNeutral(t *testing.T) {
	info := OrderStatus("teleported").Info()

	assert.Equal(t, "teleported", info.Text)
	assert.Equal(t, "#64748b", info.Color)

	assert.Equal(t, "Drone Dispatched", StatusDispatched.Info().Text)
}

func TestOrder_EstimatedDeliveryText(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := &Order{EstimatedDelivery: now.Add(10 * time.Minute)}

	assert.Equal(t, "10 minutes", order.EstimatedDeliveryText(now))
	assert.Equal(t, "1 minute", order.EstimatedDeliveryText(now.Add(9*time.Minute)))
	assert.Equal(t, "Arriving now!", order.EstimatedDeliveryText(now.Add(10*time.Minute)))
	assert.Equal(t, "Arriving now!", order.EstimatedDeliveryText(now.Add(time.Hour)))
}

func TestOrder_Reference(t *testing.T) {
	order := &Order{}
	assert.Len(t, order.Reference(), 8)
}
