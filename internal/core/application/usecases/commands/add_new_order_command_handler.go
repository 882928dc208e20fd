package commands

import (
	"context"

	"partner/internal/core/domain/model/order"
	"partner/internal/core/domain/services"
)

// AddNewOrderCommandHandler inserts an order pushed by the notification
// channel at the front of the store. The path is synchronous and bypasses the
// assignment service entirely, so it carries no pending/error slot.
type AddNewOrderCommandHandler struct {
	store *services.LifecycleStore
}

// NewAddNewOrderCommandHandler creates a handler for inbound new-order pushes.
func NewAddNewOrderCommandHandler(store *services.LifecycleStore) AddNewOrderCommandHandler {
	return AddNewOrderCommandHandler{
		store: store,
	}
}

// Handle builds the Assigned order and prepends it to the store.
func (h AddNewOrderCommandHandler) Handle(_ context.Context, command AddNewOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		command.AssignmentID(),
		command.Earnings(),
		command.PickupAddress(),
		command.DropoffAddress(),
		command.CustomerName(),
		command.AssignedAt(),
	)
	if err != nil {
		return err
	}

	h.store.InsertAtFront(newOrder)
	return nil
}
