package ports

import (
	"context"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store is the authority on order state: the status simulator re-reads
// through Get on every tick instead of trusting in-memory snapshots.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no order matches the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUndelivered retrieves all orders that have not reached the
	// terminal DELIVERED status. Used for fulfillment monitoring.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)
}
