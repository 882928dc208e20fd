package queries

import (
	"context"

	"partner/internal/core/domain/services"
)

// GetAllOrdersQueryHandler serves the full order list from the lifecycle store.
type GetAllOrdersQueryHandler struct {
	store *services.LifecycleStore
}

// NewGetAllOrdersQueryHandler creates a handler for full-list queries.
func NewGetAllOrdersQueryHandler(store *services.LifecycleStore) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{store: store}
}

// Handle returns a detached snapshot of all known orders.
func (h GetAllOrdersQueryHandler) Handle(_ context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return toOrderResponses(h.store.Orders()), nil
}
