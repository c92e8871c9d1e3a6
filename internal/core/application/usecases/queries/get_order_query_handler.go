package queries

import (
	"context"
	"database/sql"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Returns an errs.ObjectNotFoundError when no order matches the identifier.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Order %s is %s\n", resp.ID, resp.Status)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order.
// Reads the current row directly; the result reflects the store's state as of
// right now, which is what the stream endpoint's snapshot event requires.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			carrier,
			estimated_delivery,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

// orderRowScanner abstracts *sql.Rows for shared row mapping between handlers.
type orderRowScanner interface {
	Scan(dest ...any) error
}

// scanOrderRow maps one orders row into the read model.
func scanOrderRow(rows orderRowScanner) (GetOrderQueryResponse, error) {
	var (
		id                uuid.UUID
		customerID        uuid.UUID
		status            int
		carrier           sql.NullString
		estimatedDelivery sql.NullTime
		createdAt         sql.NullTime
		updatedAt         sql.NullTime
	)

	if err := rows.Scan(&id, &customerID, &status, &carrier, &estimatedDelivery, &createdAt, &updatedAt); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:         orderID,
		CustomerID: custID,
		Status:     order.Status(status),
	}
	if carrier.Valid {
		resp.Carrier = &carrier.String
	}
	if estimatedDelivery.Valid {
		resp.EstimatedDelivery = &estimatedDelivery.Time
	}
	if createdAt.Valid {
		resp.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		resp.UpdatedAt = updatedAt.Time
	}

	return resp, nil
}
