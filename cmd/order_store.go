package cmd

import (
	"context"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/streaming"
)

// OrderStoreAdapter exposes the order use cases as the streaming core's
// store interface. Reads go through the query side, advances through
// the transactional command side, so every advance re-reads the order
// inside its own transaction.
type OrderStoreAdapter struct {
	getOrderHandler     queries.GetOrderQueryHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler
}

// NewOrderStoreAdapter creates the adapter from both handlers.
func NewOrderStoreAdapter(
	getOrderHandler queries.GetOrderQueryHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
) *OrderStoreAdapter {
	return &OrderStoreAdapter{
		getOrderHandler:     getOrderHandler,
		advanceOrderHandler: advanceOrderHandler,
	}
}

// GetOrder returns the order's current state from the read model.
func (a *OrderStoreAdapter) GetOrder(ctx context.Context, orderID kernel.UUID) (streaming.OrderSnapshot, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return streaming.OrderSnapshot{}, err
	}

	resp, err := a.getOrderHandler.Handle(ctx, query)
	if err != nil {
		return streaming.OrderSnapshot{}, err
	}

	return streaming.OrderSnapshot{
		OrderID:           resp.ID,
		Status:            resp.Status,
		Carrier:           resp.Carrier,
		EstimatedDelivery: resp.EstimatedDelivery,
		UpdatedAt:         resp.UpdatedAt,
	}, nil
}

// AdvanceOrder moves the order one lifecycle step forward.
func (a *OrderStoreAdapter) AdvanceOrder(ctx context.Context, orderID kernel.UUID) (streaming.OrderSnapshot, error) {
	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return streaming.OrderSnapshot{}, err
	}

	updated, err := a.advanceOrderHandler.Handle(ctx, cmd)
	if err != nil {
		return streaming.OrderSnapshot{}, err
	}

	return streaming.OrderSnapshot{
		OrderID:           updated.ID(),
		Status:            updated.Status(),
		Carrier:           updated.Carrier(),
		EstimatedDelivery: updated.EstimatedDelivery(),
		UpdatedAt:         updated.UpdatedAt(),
	}, nil
}
