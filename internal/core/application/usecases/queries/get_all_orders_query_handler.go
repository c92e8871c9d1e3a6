package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the most recently created orders.
// The listing backs the order overview endpoint and is intentionally bounded;
// it is not a general pagination facility.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for recent-order listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing query, newest orders first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) (GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllOrdersQueryResponse{}, err
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
		ORDER BY created_at DESC
		LIMIT ?
	`, getAllOrdersLimit).Rows()
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0, getAllOrdersLimit)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return GetAllOrdersQueryResponse{}, err
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	return GetAllOrdersQueryResponse{Orders: orders}, nil
}
