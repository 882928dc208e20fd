package commands

import (
	"context"
	"fmt"

	"partner/internal/core/domain/model/order"
	"partner/internal/core/domain/services"
	"partner/internal/core/ports"
)

// UpdateOrderStatusCommandHandler performs the status-update operation and
// merges the returned canonical order into the store. When the update lands a
// Delivered order and an archiver is configured, the order is also recorded
// in the delivery history; the archive write happens after the store commit,
// so an archiver failure never affects projections or operation state.
type UpdateOrderStatusCommandHandler struct {
	client   ports.AssignmentClient
	store    *services.LifecycleStore
	archiver ports.OrderArchiver
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// archiver may be nil to disable delivery-history recording.
func NewUpdateOrderStatusCommandHandler(
	client ports.AssignmentClient,
	store *services.LifecycleStore,
	archiver ports.OrderArchiver,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		client:   client,
		store:    store,
		archiver: archiver,
	}
}

// Handle advances the order's status and upserts the service's response.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	h.store.BeginOperation(services.OperationUpdateOrderStatus)

	updated, err := h.client.UpdateStatus(ctx, command.AssignmentID(), command.PartnerID(), command.NewStatus())
	if err != nil {
		h.store.FailOperation(services.OperationUpdateOrderStatus, err)
		return err
	}

	h.store.Upsert(updated)
	h.store.CompleteOperation(services.OperationUpdateOrderStatus)

	if h.archiver != nil && updated.Status() == order.Delivered {
		if err := h.archiver.Archive(ctx, updated); err != nil {
			return fmt.Errorf("failed to archive delivered order %s: %w", updated.ID(), err)
		}
	}

	return nil
}
