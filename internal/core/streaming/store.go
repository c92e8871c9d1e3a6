package streaming

import (
	"context"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
)

// OrderSnapshot is the read model the streaming core needs from an
// order: enough to build a status event, nothing more.
type OrderSnapshot struct {
	OrderID           kernel.UUID
	Status            order.Status
	Carrier           *string
	EstimatedDelivery *time.Time
	UpdatedAt         time.Time
}

// OrderStore is the streaming core's view of the order store.
// The store is the authority on order state; the simulator re-reads
// through GetOrder before every advance instead of trusting memory.
type OrderStore interface {
	// GetOrder returns the order's current state.
	// Returns an error satisfying errors.Is(err, errs.ErrObjectNotFound)
	// when no order matches the identifier.
	GetOrder(ctx context.Context, orderID kernel.UUID) (OrderSnapshot, error)

	// AdvanceOrder moves the order forward by exactly one lifecycle step
	// and returns the updated state. The read and write happen in one
	// transaction, so concurrent external changes are not overwritten.
	AdvanceOrder(ctx context.Context, orderID kernel.UUID) (OrderSnapshot, error)
}
