package commands

import (
	"context"

	"partner/internal/core/domain/services"
	"partner/internal/core/ports"
)

// FetchOrdersCommandHandler refreshes the lifecycle store from the assignment
// service. On success the full order list replaces the store's state and both
// projections are recomputed; on failure the store is left exactly as it was,
// with only the last-error slot set.
//
// Results are applied in completion order, not issue order, and there is no
// request versioning: a fetch issued before an accept but resolving after it
// overwrites the accepted order with its pre-accept snapshot until the next
// refresh. The refresh job polls often enough that this self-heals.
type FetchOrdersCommandHandler struct {
	client ports.AssignmentClient
	store  *services.LifecycleStore
}

// NewFetchOrdersCommandHandler creates a handler for order refresh operations.
func NewFetchOrdersCommandHandler(
	client ports.AssignmentClient,
	store *services.LifecycleStore,
) FetchOrdersCommandHandler {
	return FetchOrdersCommandHandler{
		client: client,
		store:  store,
	}
}

// Handle fetches the partner's orders and replaces the store's contents.
func (h FetchOrdersCommandHandler) Handle(ctx context.Context, command FetchOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	h.store.BeginOperation(services.OperationFetchOrders)

	orders, err := h.client.ListOrders(ctx, command.PartnerID(), command.StatusFilter())
	if err != nil {
		h.store.FailOperation(services.OperationFetchOrders, err)
		return err
	}

	h.store.ReplaceAll(orders)
	h.store.CompleteOperation(services.OperationFetchOrders)
	return nil
}
