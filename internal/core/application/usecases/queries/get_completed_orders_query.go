package queries

import (
	"errors"

	"partner/internal/pkg/guard"
)

var ErrGetCompletedOrdersQueryIsNotConstructed = errors.New(
	"GetCompletedOrdersQuery must be created via NewGetCompletedOrdersQuery constructor",
)

// GetCompletedOrdersQuery retrieves delivered orders, most recent first.
type GetCompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCompletedOrdersQuery creates a query for the completed projection.
func NewGetCompletedOrdersQuery() GetCompletedOrdersQuery {
	return GetCompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCompletedOrdersQueryIsNotConstructed)
}
