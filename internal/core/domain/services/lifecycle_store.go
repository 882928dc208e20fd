package services

import (
	"sync"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"
)

// OperationKind identifies one of the asynchronous dispatcher operations
// whose in-flight state the store tracks.
type OperationKind int

const (
	// OperationFetchOrders is the bulk list/refresh operation.
	OperationFetchOrders OperationKind = iota

	// OperationAcceptOrder is the accept operation for an assigned order.
	OperationAcceptOrder

	// OperationRejectOrder is the reject operation for an assigned order.
	OperationRejectOrder

	// OperationUpdateOrderStatus is the forward status-update operation.
	OperationUpdateOrderStatus
)

// getOperationKindStrings returns display names for operation kinds.
func getOperationKindStrings() map[OperationKind]string {
	return map[OperationKind]string{
		OperationFetchOrders:       "fetchOrders",
		OperationAcceptOrder:       "acceptOrder",
		OperationRejectOrder:       "rejectOrder",
		OperationUpdateOrderStatus: "updateOrderStatus",
	}
}

// String returns the display name of the operation kind.
func (k OperationKind) String() string {
	if s, ok := getOperationKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// LifecycleStore owns the three projection containers for delivery
// assignments - all known orders, currently active orders, and completed
// orders - plus the per-operation pending flags and the last error.
//
// The store is a cache over the assignment service, never the system of
// record: on conflict the most recent service response wins. It is mutated
// exclusively through the primitives below, each of which holds an internal
// lock so no mutation is ever observed half-applied. Projection membership
// is decided solely by order.Status.Membership, keeping the containers
// consistent by construction:
//
//   - an order is in the active container iff its status classifies active
//   - an order is in the completed container iff its status classifies completed
//   - the two containers never intersect
//
// Construction and teardown are caller-controlled; there is no package-level
// instance.
type LifecycleStore struct {
	mu sync.Mutex

	orders          []*order.Order
	activeOrders    []*order.Order
	completedOrders []*order.Order

	pending   map[OperationKind]bool
	lastError error
}

// NewLifecycleStore creates an empty store.
func NewLifecycleStore() *LifecycleStore {
	return &LifecycleStore{
		orders:          make([]*order.Order, 0),
		activeOrders:    make([]*order.Order, 0),
		completedOrders: make([]*order.Order, 0),
		pending:         make(map[OperationKind]bool),
	}
}

// ReplaceAll sets the full order list to the given sequence, preserving its
// relative order, and recomputes both projections from scratch. A previously
// completed order absent from the new sequence disappears from the completed
// projection too - the service acknowledges no orders the store should keep.
//
// Used only by the fetch-orders success path.
func (s *LifecycleStore) ReplaceAll(orders []*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make([]*order.Order, len(orders))
	copy(s.orders, orders)

	s.activeOrders = make([]*order.Order, 0, len(orders))
	s.completedOrders = make([]*order.Order, 0)

	for _, o := range orders {
		switch o.Membership() {
		case order.MembershipActive:
			s.activeOrders = append(s.activeOrders, o)
		case order.MembershipCompleted:
			s.completedOrders = append(s.completedOrders, o)
		}
	}
}

// Upsert merges a single order into the store. An existing order with the
// same id is replaced in place (index preserved); a new one is appended.
// Each projection is then reconciled independently against the order's
// classification. A transition into the completed projection inserts at the
// front (completed orders read most-recent-first), and the order leaves the
// active projection before it enters the completed one, so it is never in
// both - even transiently within a single update.
//
// Upsert is idempotent: applying the same order twice leaves every container
// identical to applying it once.
func (s *LifecycleStore) Upsert(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := indexOf(s.orders, o.ID()); idx >= 0 {
		s.orders[idx] = o
	} else {
		s.orders = append(s.orders, o)
	}

	membership := o.Membership()

	if idx := indexOf(s.activeOrders, o.ID()); membership == order.MembershipActive {
		if idx >= 0 {
			s.activeOrders[idx] = o
		} else {
			s.activeOrders = append(s.activeOrders, o)
		}
	} else if idx >= 0 {
		s.activeOrders = append(s.activeOrders[:idx], s.activeOrders[idx+1:]...)
	}

	if idx := indexOf(s.completedOrders, o.ID()); membership == order.MembershipCompleted {
		if idx >= 0 {
			s.completedOrders[idx] = o
		} else {
			s.completedOrders = append([]*order.Order{o}, s.completedOrders...)
		}
	} else if idx >= 0 {
		s.completedOrders = append(s.completedOrders[:idx], s.completedOrders[idx+1:]...)
	}
}

// Remove deletes the order with the given id from the full list and the
// active projection. The completed projection is left untouched: a delivered
// order's history survives a stale remove.
//
// Used only by the reject-order success path.
func (s *LifecycleStore) Remove(id kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := indexOf(s.orders, id); idx >= 0 {
		s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
	}
	if idx := indexOf(s.activeOrders, id); idx >= 0 {
		s.activeOrders = append(s.activeOrders[:idx], s.activeOrders[idx+1:]...)
	}
}

// InsertAtFront prepends a freshly assigned order to the full list and, when
// it classifies active, to the active projection. No deduplication against an
// existing id is performed; the notification channel contract says a known id
// is never redelivered.
//
// Used only by the inbound new-order path.
func (s *LifecycleStore) InsertAtFront(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]*order.Order{o}, s.orders...)
	if o.Membership() == order.MembershipActive {
		s.activeOrders = append([]*order.Order{o}, s.activeOrders...)
	}
}

// BeginOperation marks an operation kind as in flight and clears the last
// error, starting the pending phase of the three-phase contract.
func (s *LifecycleStore) BeginOperation(kind OperationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[kind] = true
	s.lastError = nil
}

// CompleteOperation clears the pending flag after a successful operation.
func (s *LifecycleStore) CompleteOperation(kind OperationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, kind)
}

// FailOperation clears the pending flag and records the failure. Failed
// operations never touch the projection containers.
func (s *LifecycleStore) FailOperation(kind OperationKind, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, kind)
	s.lastError = err
}

// Orders returns a snapshot of all known orders in store order.
// The returned slice is a copy; callers must not mutate the orders.
func (s *LifecycleStore) Orders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.orders)
}

// ActiveOrders returns a snapshot of the active projection.
func (s *LifecycleStore) ActiveOrders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.activeOrders)
}

// CompletedOrders returns a snapshot of the completed projection,
// most recently completed first.
func (s *LifecycleStore) CompletedOrders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.completedOrders)
}

// IsPending reports whether an operation of the given kind is in flight.
func (s *LifecycleStore) IsPending(kind OperationKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending[kind]
}

// LastError returns the most recent operation failure, or nil.
func (s *LifecycleStore) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastError
}

func indexOf(orders []*order.Order, id kernel.UUID) int {
	for i, o := range orders {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}

func snapshot(orders []*order.Order) []*order.Order {
	out := make([]*order.Order, len(orders))
	copy(out, orders)
	return out
}
