package commands

import (
	"errors"
	"time"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/pkg/guard"
)

var ErrAddNewOrderCommandIsNotConstructed = errors.New(
	"AddNewOrderCommand must be created via NewAddNewOrderCommand constructor",
)

// AddNewOrderCommand carries a newly assigned order delivered by the inbound
// notification channel. The order is always treated as freshly Assigned.
// No deduplication against an already known id is performed: the channel
// contract says a known id is never redelivered, so a duplicate would appear
// twice at the front of the order list.
type AddNewOrderCommand struct { //nolint:recvcheck //using for validation
	assignmentID   kernel.UUID
	earnings       kernel.Money
	pickupAddress  string
	dropoffAddress string
	customerName   string
	assignedAt     time.Time

	guard guard.ConstructorGuard
}

// NewAddNewOrderCommand creates a command from an inbound notification payload.
func NewAddNewOrderCommand(
	assignmentID kernel.UUID,
	earnings kernel.Money,
	pickupAddress string,
	dropoffAddress string,
	customerName string,
	assignedAt time.Time,
) (AddNewOrderCommand, error) {
	command := AddNewOrderCommand{
		pickupAddress:  pickupAddress,
		dropoffAddress: dropoffAddress,
		customerName:   customerName,
		assignedAt:     assignedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setEarnings(earnings),
	); err != nil {
		return AddNewOrderCommand{}, err
	}

	return command, nil
}

// AssignmentID returns the new order's id.
func (c AddNewOrderCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Earnings returns the offered payout.
func (c AddNewOrderCommand) Earnings() kernel.Money {
	return c.earnings
}

// PickupAddress returns the pickup location string.
func (c AddNewOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropoffAddress returns the delivery destination string.
func (c AddNewOrderCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// CustomerName returns the recipient's display name.
func (c AddNewOrderCommand) CustomerName() string {
	return c.customerName
}

// AssignedAt returns when the service assigned the order.
func (c AddNewOrderCommand) AssignedAt() time.Time {
	return c.assignedAt
}

// Validate ensures the command was created through the constructor.
func (c AddNewOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddNewOrderCommandIsNotConstructed)
}

func (c *AddNewOrderCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *AddNewOrderCommand) setEarnings(earnings kernel.Money) error {
	if err := earnings.Validate(); err != nil {
		return err
	}
	c.earnings = earnings
	return nil
}
