package streaming

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/metrics"
	"tracker/internal/pkg/errs"
)

// Simulator drives order-status progressions.
// At most one run exists per order at any time; starting a second run
// for the same order is a no-op. A run outlives the subscribers that
// triggered it and stops on its own when the order reaches the terminal
// status or the store fails.
type Simulator struct {
	store      OrderStore
	dispatcher *Dispatcher
	seq        *Sequence
	log        *slog.Logger

	mu   sync.Mutex
	runs map[kernel.UUID]struct{}
}

// NewSimulator creates a simulator over the given store and dispatcher.
func NewSimulator(
	store OrderStore,
	dispatcher *Dispatcher,
	seq *Sequence,
	log *slog.Logger,
) *Simulator {
	return &Simulator{
		store:      store,
		dispatcher: dispatcher,
		seq:        seq,
		log:        log.With("component", "simulator"),
		runs:       make(map[kernel.UUID]struct{}),
	}
}

// Start launches a progression run for the order unless one is already
// active. Returns true when a new run was started. The context bounds
// the run's lifetime and should come from the service, not a request,
// since the run continues after the subscribing connection closes.
func (s *Simulator) Start(ctx context.Context, orderID kernel.UUID, policy TimingPolicy) bool {
	s.mu.Lock()
	if _, active := s.runs[orderID]; active {
		s.mu.Unlock()
		return false
	}
	s.runs[orderID] = struct{}{}
	s.mu.Unlock()

	metrics.ActiveSimulations.Inc()
	go s.run(ctx, orderID, policy)
	return true
}

// Running reports whether the order currently has an active run.
func (s *Simulator) Running(orderID kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, active := s.runs[orderID]
	return active
}

func (s *Simulator) release(orderID kernel.UUID) {
	s.mu.Lock()
	delete(s.runs, orderID)
	s.mu.Unlock()

	metrics.ActiveSimulations.Dec()
}

// run is the tick loop for one order. Each iteration re-reads the
// order, waits the policy's delay for its current status, advances the
// order by one step, and broadcasts the transition. The loop never
// overlaps two advances for the same order.
func (s *Simulator) run(ctx context.Context, orderID kernel.UUID, policy TimingPolicy) {
	defer s.release(orderID)

	log := s.log.With("order_id", orderID.String())

	for {
		snap, err := s.store.GetOrder(ctx, orderID)
		if err != nil {
			s.failRun(orderID, log, err)
			return
		}
		if snap.Status.IsTerminal() {
			log.Info("order reached terminal status, run finished",
				"status", snap.Status.String())
			return
		}

		if !s.wait(ctx, policy.Delay(snap.Status)) {
			log.Info("run cancelled")
			return
		}

		updated, err := s.store.AdvanceOrder(ctx, orderID)
		if err != nil {
			// Another writer may have finished the order between the
			// read and the advance. That is a normal completion, not a
			// store failure.
			if snap, rerr := s.store.GetOrder(ctx, orderID); rerr == nil && snap.Status.IsTerminal() {
				s.dispatcher.Broadcast(orderID, NewStatusEvent(s.seq, snap))
				log.Info("order reached terminal status, run finished",
					"status", snap.Status.String())
				return
			}
			s.failRun(orderID, log, err)
			return
		}

		s.dispatcher.Broadcast(orderID, NewStatusEvent(s.seq, updated))
		log.Info("order advanced", "status", updated.Status.String())
	}
}

// wait blocks for the delay. Returns false when the context ends first.
func (s *Simulator) wait(ctx context.Context, delay time.Duration) bool {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// failRun emits a terminal error event to the order's subscribers and
// ends the run. Failures are scoped to one order; other runs continue.
func (s *Simulator) failRun(orderID kernel.UUID, log *slog.Logger, err error) {
	message := "Server error"
	if errors.Is(err, errs.ErrObjectNotFound) {
		message = "Order not found"
	}
	log.Error("run failed", "error", err)
	s.dispatcher.Broadcast(orderID, NewErrorEvent(s.seq, message))
}
