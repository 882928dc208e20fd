package ports

import (
	"context"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"
)

// AssignmentClient is the contract of the order-assignment service, the
// authoritative external system for order state. Every method maps to one
// dispatcher operation; the service enforces all preconditions (for example
// that only Assigned orders can be accepted) - the client never re-validates.
//
// Implementations surface timeouts and transport problems as ordinary errors;
// the core does not distinguish service-side rejection reasons beyond the
// message. Ids the service no longer recognizes yield an error unwrapping to
// errs.ErrObjectNotFound.
type AssignmentClient interface {
	// ListOrders retrieves the partner's orders in service order.
	// statusFilter narrows the list to a single status when non-nil.
	ListOrders(ctx context.Context, partnerID kernel.UUID, statusFilter *order.Status) ([]*order.Order, error)

	// Accept commits the partner to an assigned order.
	// Returns the canonical order record, now in Accepted status.
	Accept(ctx context.Context, assignmentID, partnerID kernel.UUID) (*order.Order, error)

	// Reject declines an assigned order with a reason.
	// Returns only the echoed assignment id; a rejected order carries no
	// further projection state.
	Reject(ctx context.Context, assignmentID, partnerID kernel.UUID, reason string) (kernel.UUID, error)

	// UpdateStatus advances an order along the delivery state machine.
	// Returns the canonical order record with the new status.
	UpdateStatus(
		ctx context.Context,
		assignmentID, partnerID kernel.UUID,
		newStatus order.Status,
	) (*order.Order, error)
}
