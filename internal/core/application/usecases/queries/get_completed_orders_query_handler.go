package queries

import (
	"context"

	"partner/internal/core/domain/services"
)

// GetCompletedOrdersQueryHandler serves the completed projection from the store.
type GetCompletedOrdersQueryHandler struct {
	store *services.LifecycleStore
}

// NewGetCompletedOrdersQueryHandler creates a handler for completed-order queries.
func NewGetCompletedOrdersQueryHandler(store *services.LifecycleStore) GetCompletedOrdersQueryHandler {
	return GetCompletedOrdersQueryHandler{store: store}
}

// Handle returns a detached snapshot of the completed projection,
// most recently delivered first.
func (h GetCompletedOrdersQueryHandler) Handle(
	_ context.Context,
	query GetCompletedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return toOrderResponses(h.store.CompletedOrders()), nil
}
