package commands

import (
	"context"

	"partner/internal/core/domain/services"
	"partner/internal/core/ports"
)

// RejectOrderCommandHandler performs the reject operation and removes the
// order from the store. Only the echoed assignment id from the service
// response is used; a rejected order carries no further projection state.
// Completed history is unaffected by the removal.
type RejectOrderCommandHandler struct {
	client ports.AssignmentClient
	store  *services.LifecycleStore
}

// NewRejectOrderCommandHandler creates a handler for reject operations.
func NewRejectOrderCommandHandler(
	client ports.AssignmentClient,
	store *services.LifecycleStore,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		client: client,
		store:  store,
	}
}

// Handle rejects the order and removes it from the store on success.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	h.store.BeginOperation(services.OperationRejectOrder)

	rejectedID, err := h.client.Reject(ctx, command.AssignmentID(), command.PartnerID(), command.Reason())
	if err != nil {
		h.store.FailOperation(services.OperationRejectOrder, err)
		return err
	}

	h.store.Remove(rejectedID)
	h.store.CompleteOperation(services.OperationRejectOrder)
	return nil
}
