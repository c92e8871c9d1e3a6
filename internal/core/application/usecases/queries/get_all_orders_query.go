package queries

import (
	"errors"

	"tracker/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// getAllOrdersLimit bounds the listing so the read model stays cheap even
// when the orders table grows large.
const getAllOrdersLimit = 100

// GetAllOrdersQuery retrieves recent orders, newest first.
// Results are bounded to a fixed page size.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the recent-order listing.
func NewGetAllOrdersQuery() (GetAllOrdersQuery, error) {
	return GetAllOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse contains the recent orders, newest first.
type GetAllOrdersQueryResponse struct {
	Orders []GetOrderQueryResponse
}
