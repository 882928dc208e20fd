package order

import (
	"fmt"

	"partner/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery assignment.
// The state machine is authoritative on the assignment service; this client
// mirrors it to classify orders into projection memberships.
//
// State transitions:
//
//	Assigned --accept--> Accepted --update--> PickedUp --update--> OutForDelivery --update--> Delivered
//	Assigned --reject--> Rejected
//
// Delivered and Rejected are terminal. No other edges are valid.
type Status int

const (
	// Unknown represents an invalid or unrecognized status.
	// This value (0) also absorbs wire statuses this client does not know;
	// such orders classify into no projection.
	Unknown Status = iota

	// Assigned is the initial status: the order has been offered to the
	// partner and awaits acceptance or rejection.
	Assigned

	// Accepted indicates the partner has committed to the delivery.
	Accepted

	// PickedUp indicates the package has been collected from the pickup point.
	PickedUp

	// OutForDelivery indicates the partner is en route to the customer.
	OutForDelivery

	// Delivered is the terminal success status.
	Delivered

	// Rejected is the terminal status for declined assignments.
	// Rejected orders are removed from the store entirely.
	Rejected
)

// Membership identifies which projection, if any, an order belongs to.
// Every status classifies into exactly one membership; the classification
// is the single source of truth for projection containers.
type Membership int

const (
	// MembershipNone means the order belongs to neither projection.
	MembershipNone Membership = iota

	// MembershipActive places the order in the active-orders projection.
	MembershipActive

	// MembershipCompleted places the order in the completed-orders projection.
	MembershipCompleted
)

// getStatusStrings returns the wire representation of each status.
// The assignment service and notification channel use these exact forms.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Assigned:       "ASSIGNED",
		Accepted:       "ACCEPTED",
		PickedUp:       "PICKED_UP",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Rejected:       "REJECTED",
	}
}

// getValidStatusStrings returns only statuses that are valid on the wire.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:       "ASSIGNED",
		Accepted:       "ACCEPTED",
		PickedUp:       "PICKED_UP",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Rejected:       "REJECTED",
	}
}

// StatusFromString parses a wire status string.
// Unrecognized strings yield Unknown rather than an error: the service is
// authoritative and orders with statuses this client does not understand are
// carried through the store unclassified instead of being dropped.
func StatusFromString(s string) Status {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status
		}
	}
	return Unknown
}

// Validate checks that the Status is one of the valid wire statuses.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer; safe on any value, returning "UNKNOWN" for
// unrecognized ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Membership classifies the status into exactly one projection membership.
//
//	Assigned | Accepted | PickedUp | OutForDelivery -> MembershipActive
//	Delivered                                       -> MembershipCompleted
//	Rejected and everything else                    -> MembershipNone
//
// This function is pure and total. All projection maintenance must go
// through it; direct container manipulation based on raw statuses is a defect.
func (s Status) Membership() Membership {
	switch s {
	case Assigned, Accepted, PickedUp, OutForDelivery:
		return MembershipActive
	case Delivered:
		return MembershipCompleted
	default:
		return MembershipNone
	}
}

// IsTerminal reports whether no further transition can leave the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected
}

// CanTransitionTo reports whether the service-side state machine permits
// moving from s to next. The client never enforces this before issuing an
// operation - the service is authoritative and rejects invalid transitions -
// but the mirror documents which edges exist.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case Assigned:
		return next == Accepted || next == Rejected
	case Accepted:
		return next == PickedUp
	case PickedUp:
		return next == OutForDelivery
	case OutForDelivery:
		return next == Delivered
	default:
		return false
	}
}
