package commands

import (
	"context"

	"partner/internal/core/domain/services"
	"partner/internal/core/ports"
)

// AcceptOrderCommandHandler performs the accept operation against the
// assignment service and merges the returned canonical order (now Accepted)
// into the lifecycle store. A failed accept leaves every container untouched.
type AcceptOrderCommandHandler struct {
	client ports.AssignmentClient
	store  *services.LifecycleStore
}

// NewAcceptOrderCommandHandler creates a handler for accept operations.
func NewAcceptOrderCommandHandler(
	client ports.AssignmentClient,
	store *services.LifecycleStore,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		client: client,
		store:  store,
	}
}

// Handle accepts the order and upserts the service's response into the store.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	h.store.BeginOperation(services.OperationAcceptOrder)

	accepted, err := h.client.Accept(ctx, command.AssignmentID(), command.PartnerID())
	if err != nil {
		h.store.FailOperation(services.OperationAcceptOrder, err)
		return err
	}

	h.store.Upsert(accepted)
	h.store.CompleteOperation(services.OperationAcceptOrder)
	return nil
}
