// Package scheduler drives the simulated fulfillment progression: each placed
// order walks the status sequence on one-shot wall-clock timers measured from
// placement.
package scheduler

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"drogo/config"
	"drogo/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplyFunc applies one scheduled status to an order. An error aborts the
// remaining steps for that order.
type ApplyFunc func(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error

type step struct {
	after  time.Duration
	status entity.OrderStatus
}

// pendingRun is one scheduled progression. The generation distinguishes a
// replacement run from the run it replaced: when the old goroutine exits it
// must not forget the entry of its successor.
type pendingRun struct {
	cancel context.CancelFunc
	gen    uint64
}

// Fulfillment runs per-order progression timers. Every order gets its own
// cancellation token, so cancelling one order makes its pending steps no-ops
// without touching any other order.
type Fulfillment struct {
	steps  []step
	logger *slog.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]pendingRun
	nextGen uint64
	wg      sync.WaitGroup
	closed  bool
}

// New builds the scheduler from the configured offsets, sorted ascending.
func New(cfg *config.FulfillmentConfig, logger *slog.Logger) *Fulfillment {
	if cfg == nil {
		cfg = config.DefaultFulfillment()
	}
	steps := []step{
		{after: cfg.PreparingAfter, status: entity.StatusPreparing},
		{after: cfg.DispatchedAfter, status: entity.StatusDispatched},
		{after: cfg.InTransitAfter, status: entity.StatusInTransit},
		{after: cfg.DeliveredAfter, status: entity.StatusDelivered},
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].after < steps[j].after })

	return &Fulfillment{
		steps:   steps,
		logger:  logger,
		pending: make(map[uuid.UUID]pendingRun),
	}
}

// Schedule starts the progression for an order. Offsets are measured from the
// moment of the call, matching placement time. Scheduling the same order
// twice replaces the earlier run.
func (f *Fulfillment) Schedule(orderID uuid.UUID, apply ApplyFunc) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()

		return
	}
	if prev, ok := f.pending[orderID]; ok {
		prev.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	f.nextGen++
	gen := f.nextGen
	f.pending[orderID] = pendingRun{cancel: cancel, gen: gen}
	f.wg.Add(1)
	f.mu.Unlock()

	go f.run(ctx, orderID, gen, apply)
}

func (f *Fulfillment) run(ctx context.Context, orderID uuid.UUID, gen uint64, apply ApplyFunc) {
	defer f.wg.Done()
	defer f.forget(orderID, gen)

	start := time.Now()
	for _, s := range f.steps {
		timer := time.NewTimer(time.Until(start.Add(s.after)))
		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
		}

		if err := apply(ctx, orderID, s.status); err != nil {
			f.logger.Warn("fulfillment step aborted",
				slog.String("order_id", orderID.String()),
				slog.String("status", string(s.status)),
				slog.Any("error", err))

			return
		}
	}
}

// Cancel stops the pending steps of an order. Safe to call for orders that
// were never scheduled or have already finished.
func (f *Fulfillment) Cancel(orderID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if run, ok := f.pending[orderID]; ok {
		run.cancel()
		delete(f.pending, orderID)
	}
}

// Stop cancels every pending run and waits for the timer goroutines to exit.
// Called from the fx shutdown hook.
func (f *Fulfillment) Stop() {
	f.mu.Lock()
	f.closed = true
	for id, run := range f.pending {
		run.cancel()
		delete(f.pending, id)
	}
	f.mu.Unlock()

	f.wg.Wait()
}

// forget drops the pending entry of the finished run, but only when the
// entry still belongs to that run and not to a replacement.
func (f *Fulfillment) forget(orderID uuid.UUID, gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if run, ok := f.pending[orderID]; ok && run.gen == gen {
		delete(f.pending, orderID)
	}
}
