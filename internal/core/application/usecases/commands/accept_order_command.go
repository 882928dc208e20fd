package commands

import (
	"errors"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand commits the partner to an assigned order. The service
// enforces that only orders in Assigned status can be accepted; the client
// does not re-validate that precondition.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	partnerID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept an assigned order.
func NewAcceptOrderCommand(assignmentID, partnerID kernel.UUID) (AcceptOrderCommand, error) {
	command := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setPartnerID(partnerID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return command, nil
}

// AssignmentID returns the id of the order being accepted.
func (c AcceptOrderCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// PartnerID returns the accepting partner's id.
func (c AcceptOrderCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c *AcceptOrderCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *AcceptOrderCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
