package order

import (
	"errors"
	"time"

	"partner/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a single delivery assignment tracked by the partner client.
//
// The lifecycle core reads only the identifier and status; everything else -
// earnings, addresses, customer data, timestamps - is opaque payload carried
// through unchanged from the assignment service. Orders are never edited in
// place: every change arrives as a fresh Order built from a service response
// or an inbound notification.
type Order struct {
	// id is the assignment identifier, stable across the order's lifetime
	// and the primary key for all projection containers.
	id kernel.UUID

	// status is the current state in the assignment lifecycle.
	status Status

	// earnings is the payout offered for the delivery (opaque payload).
	earnings kernel.Money

	// pickupAddress and dropoffAddress are free-form location strings
	// (opaque payload).
	pickupAddress  string
	dropoffAddress string

	// customerName is the recipient's display name (opaque payload).
	customerName string

	// assignedAt is when the service assigned the order to the partner.
	assignedAt time.Time

	// isConstructed ensures the order was created via a constructor.
	isConstructed bool
}

// NewOrder creates an Order for a freshly assigned delivery.
// Used by the inbound notification path, where the status is always Assigned.
//
// The id and earnings must be valid value objects; the remaining payload fields
// are carried through without inspection.
func NewOrder(
	id kernel.UUID,
	earnings kernel.Money,
	pickupAddress string,
	dropoffAddress string,
	customerName string,
	assignedAt time.Time,
) (*Order, error) {
	return RestoreOrder(id, Assigned, earnings, pickupAddress, dropoffAddress, customerName, assignedAt)
}

// RestoreOrder rebuilds an Order from externally supplied state, typically an
// assignment-service response. Any status is accepted, including ones this
// client does not recognize (Unknown): the service is authoritative and
// unclassifiable orders simply belong to no projection.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	earnings kernel.Money,
	pickupAddress string,
	dropoffAddress string,
	customerName string,
	assignedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := earnings.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:             id,
		status:         status,
		earnings:       earnings,
		pickupAddress:  pickupAddress,
		dropoffAddress: dropoffAddress,
		customerName:   customerName,
		assignedAt:     assignedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their assignment identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the assignment identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Membership classifies the order into its projection membership.
func (o *Order) Membership() Membership {
	return o.status.Membership()
}

// Earnings returns the payout offered for the delivery.
func (o *Order) Earnings() kernel.Money {
	return o.earnings
}

// PickupAddress returns the pickup location string.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DropoffAddress returns the delivery destination string.
func (o *Order) DropoffAddress() string {
	return o.dropoffAddress
}

// CustomerName returns the recipient's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// AssignedAt returns when the service assigned the order.
func (o *Order) AssignedAt() time.Time {
	return o.assignedAt
}
