package commands

import (
	"errors"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"
	"partner/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand advances an order along the delivery state machine
// (Accepted -> PickedUp -> OutForDelivery -> Delivered). Whether the
// transition is actually permitted from the order's current status is the
// service's call; issuing a backward transition is a caller error that the
// service rejects.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	partnerID    kernel.UUID
	newStatus    order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to advance an order's status.
// The new status must be a valid wire status.
func NewUpdateOrderStatusCommand(
	assignmentID, partnerID kernel.UUID,
	newStatus order.Status,
) (UpdateOrderStatusCommand, error) {
	command := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setPartnerID(partnerID),
		command.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return command, nil
}

// AssignmentID returns the id of the order being updated.
func (c UpdateOrderStatusCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// PartnerID returns the partner's id.
func (c UpdateOrderStatusCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// NewStatus returns the status the order should advance to.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c *UpdateOrderStatusCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *UpdateOrderStatusCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
