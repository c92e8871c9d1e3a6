package streaming

import (
	"log/slog"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/metrics"
)

// Dispatcher fans events out to an order's subscribers.
// Delivery is fire-and-forget per subscriber: a full buffer or closed
// sink drops that one subscriber from the registry and never blocks the
// caller or the other subscribers.
type Dispatcher struct {
	registry *Registry
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		log:      log.With("component", "dispatcher"),
	}
}

// Broadcast delivers the event to every subscriber currently registered
// for the order. Subscribers added after the snapshot is taken do not
// receive this event; subscribers that fail the write are dropped.
func (d *Dispatcher) Broadcast(orderID kernel.UUID, event Event) {
	for _, sub := range d.registry.SubscribersFor(orderID) {
		if sub.trySend(event) {
			continue
		}
		d.registry.Deregister(orderID, sub)
		sub.Close()
		metrics.DroppedSubscribersTotal.Inc()
		d.log.Warn("dropped unresponsive subscriber",
			"order_id", orderID.String(),
			"event_id", event.ID)
	}
	metrics.StreamEventsTotal.WithLabelValues(string(event.Kind)).Inc()
}
