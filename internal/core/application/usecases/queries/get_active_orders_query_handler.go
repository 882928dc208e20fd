package queries

import (
	"context"

	"partner/internal/core/domain/services"
)

// GetActiveOrdersQueryHandler serves the active projection from the store.
type GetActiveOrdersQueryHandler struct {
	store *services.LifecycleStore
}

// NewGetActiveOrdersQueryHandler creates a handler for active-order queries.
func NewGetActiveOrdersQueryHandler(store *services.LifecycleStore) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{store: store}
}

// Handle returns a detached snapshot of the active projection.
func (h GetActiveOrdersQueryHandler) Handle(
	_ context.Context,
	query GetActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return toOrderResponses(h.store.ActiveOrders()), nil
}
