package commands

import (
	"context"

	"tracker/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler moves a single order forward through its lifecycle.
// On each invocation the order is re-fetched from the store, advanced by exactly
// one step, and persisted within the same transaction. The status simulator is
// the only caller, and its one-run-per-order invariant guarantees that two
// advances for the same order never overlap.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceOrderCommand(orderID)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // order not found, terminal, or store failure
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for order advance operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
// Re-reads the order's current state, advances it one step, and persists the
// result. Returns the updated aggregate so callers can broadcast the transition
// without a second read. Returns an error when the order does not exist, is
// already in the terminal status, or the store fails.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Advance(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
