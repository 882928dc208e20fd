package commands

import (
	"errors"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"
	"partner/internal/pkg/guard"
)

var ErrFetchOrdersCommandIsNotConstructed = errors.New(
	"FetchOrdersCommand must be created via NewFetchOrdersCommand constructor",
)

// FetchOrdersCommand requests a full refresh of the partner's orders from the
// assignment service. Each successful completion fully supersedes the prior
// store state.
//
// Example:
//
//	cmd, err := NewFetchOrdersCommand(partnerID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("refresh failed: %v", err)
//	}
type FetchOrdersCommand struct { //nolint:recvcheck //using for validation
	partnerID    kernel.UUID
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewFetchOrdersCommand creates a command to fetch all of the partner's orders.
func NewFetchOrdersCommand(partnerID kernel.UUID) (FetchOrdersCommand, error) {
	command := FetchOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPartnerID(partnerID); err != nil {
		return FetchOrdersCommand{}, err
	}

	return command, nil
}

// NewFetchOrdersCommandWithStatusFilter creates a command that narrows the
// fetch to orders in a single status.
func NewFetchOrdersCommandWithStatusFilter(
	partnerID kernel.UUID,
	statusFilter order.Status,
) (FetchOrdersCommand, error) {
	command, err := NewFetchOrdersCommand(partnerID)
	if err != nil {
		return FetchOrdersCommand{}, err
	}

	if err := statusFilter.Validate(); err != nil {
		return FetchOrdersCommand{}, err
	}
	command.statusFilter = &statusFilter

	return command, nil
}

// PartnerID returns the partner on whose behalf orders are fetched.
func (c FetchOrdersCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// StatusFilter returns the optional status narrowing, or nil.
func (c FetchOrdersCommand) StatusFilter() *order.Status {
	return c.statusFilter
}

// Validate ensures the command was created through a constructor.
func (c FetchOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFetchOrdersCommandIsNotConstructed)
}

func (c *FetchOrdersCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
