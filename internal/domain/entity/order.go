// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes where an order is in the fulfillment sequence.
type OrderStatus string

const (
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPreparing  OrderStatus = "preparing"
	StatusDispatched OrderStatus = "dispatched"
	StatusInTransit  OrderStatus = "in_transit"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// forwardOrder is the monotonic fulfillment sequence. Cancelled sits outside
// it and is reachable from any non-terminal status.
var forwardOrder = map[OrderStatus]int{
	StatusConfirmed:  0,
	StatusPreparing:  1,
	StatusDispatched: 2,
	StatusInTransit:  3,
	StatusDelivered:  4,
}

// Valid reports whether the status is a known order status.
func (s OrderStatus) Valid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := forwardOrder[s]

	return ok
}

// Terminal reports whether no further transition is allowed from the status.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next respects the
// forward-only progression: any status at or after the current one is
// allowed, plus cancelled unless the order is already terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	from, okFrom := forwardOrder[s]
	to, okTo := forwardOrder[next]

	return okFrom && okTo && to >= from
}

// TransitionSources returns every status from which next is reachable.
// Stores use it to make status writes conditional on the current value.
func TransitionSources(next OrderStatus) []OrderStatus {
	all := []OrderStatus{
		StatusConfirmed,
		StatusPreparing,
		StatusDispatched,
		StatusInTransit,
		StatusDelivered,
		StatusCancelled,
	}

	sources := make([]OrderStatus, 0, len(all))
	for _, from := range all {
		if from.CanTransitionTo(next) {
			sources = append(sources, from)
		}
	}

	return sources
}

// Pending reports whether the order still awaits drone dispatch from the
// customer's point of view. Used to pick the "current order" for tracking.
func (s OrderStatus) Pending() bool {
	switch s {
	case StatusConfirmed, StatusPreparing, StatusDispatched:
		return true
	}

	return false
}

// StatusInfo is the presentation mapping of a status: a display label plus a
// color tag for the tracking widget.
type StatusInfo struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

var statusInfo = map[OrderStatus]StatusInfo{
	StatusConfirmed:  {Text: "Order Confirmed", Color: "#10b981"},
	StatusPreparing:  {Text: "Preparing", Color: "#f59e0b"},
	StatusDispatched: {Text: "Drone Dispatched", Color: "#3b82f6"},
	StatusInTransit:  {Text: "In Transit", Color: "#6366f1"},
	StatusDelivered:  {Text: "Delivered", Color: "#10b981"},
	StatusCancelled:  {Text: "Cancelled", Color: "#ef4444"},
}

// Info returns the display label and color tag for the status. Unrecognized
// statuses fall back to a neutral label rather than failing.
func (s OrderStatus) Info() StatusInfo {
	if info, ok := statusInfo[s]; ok {
		return info
	}

	return StatusInfo{Text: string(s), Color: "#64748b"}
}

// OrderItem is one priced line of an order, snapshotted from the catalog at
// placement time.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	LineTotal int    `json:"line_total"`
}

// Order is a placed, append-only purchase record. TotalAmount is fixed at
// creation (line totals + convenience fee + tax) and never recomputed;
// only Status and UpdatedAt change afterwards.
type Order struct {
	ID                uuid.UUID     `json:"id"`
	UserID            uuid.UUID     `json:"user_id"`
	Items             []OrderItem   `json:"items"`
	TotalAmount       int           `json:"total_amount"`
	DeliveryAddress   string        `json:"delivery_address"`
	DeliverySpot      *DeliverySpot `json:"delivery_spot,omitempty"`
	TerraceAccessible bool          `json:"terrace_accessible"`
	Status            OrderStatus   `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	EstimatedDelivery time.Time     `json:"estimated_delivery"`
}

// Reference returns the short order reference shown to customers, the first
// eight characters of the order ID.
func (o *Order) Reference() string {
	id := o.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}

	return id
}

// EstimatedDeliveryText renders the remaining delivery time as display text.
// A past or immediate estimate reads "Arriving now!"; the estimate itself is
// never clamped or recomputed.
func (o *Order) EstimatedDeliveryText(now time.Time) string {
	remaining := o.EstimatedDelivery.Sub(now)
	minutes := int((remaining + time.Minute - 1) / time.Minute) // ceil
	if minutes <= 0 {
		return "Arriving now!"
	}
	if minutes == 1 {
		return "1 minute"
	}

	return fmt.Sprintf("%d minutes", minutes)
}
