package commands

import (
	"errors"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
	ErrRejectReasonIsRequired = errors.New("reject reason is required")
)

// RejectOrderCommand declines an assigned order with a reason. Rejection is
// terminal: the order is removed from the store entirely on success.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	partnerID    kernel.UUID
	reason       string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject an assigned order.
// The reason must not be empty; the service records it.
func NewRejectOrderCommand(assignmentID, partnerID kernel.UUID, reason string) (RejectOrderCommand, error) {
	command := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setPartnerID(partnerID),
		command.setReason(reason),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return command, nil
}

// AssignmentID returns the id of the order being rejected.
func (c RejectOrderCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// PartnerID returns the rejecting partner's id.
func (c RejectOrderCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Reason returns the rejection reason.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c *RejectOrderCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *RejectOrderCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *RejectOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectReasonIsRequired
	}
	c.reason = reason
	return nil
}
