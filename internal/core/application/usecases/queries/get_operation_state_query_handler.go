package queries

import (
	"context"

	"partner/internal/core/domain/services"
)

// GetOperationStateQueryHandler serves operation pending/error state from the store.
type GetOperationStateQueryHandler struct {
	store *services.LifecycleStore
}

// NewGetOperationStateQueryHandler creates a handler for operation-state queries.
func NewGetOperationStateQueryHandler(store *services.LifecycleStore) GetOperationStateQueryHandler {
	return GetOperationStateQueryHandler{store: store}
}

// Handle returns the current pending flags and last error message.
func (h GetOperationStateQueryHandler) Handle(
	_ context.Context,
	query GetOperationStateQuery,
) (OperationStateResponse, error) {
	if err := query.Validate(); err != nil {
		return OperationStateResponse{}, err
	}

	response := OperationStateResponse{
		FetchOrdersPending:       h.store.IsPending(services.OperationFetchOrders),
		AcceptOrderPending:       h.store.IsPending(services.OperationAcceptOrder),
		RejectOrderPending:       h.store.IsPending(services.OperationRejectOrder),
		UpdateOrderStatusPending: h.store.IsPending(services.OperationUpdateOrderStatus),
	}
	if err := h.store.LastError(); err != nil {
		response.LastError = err.Error()
	}

	return response, nil
}
