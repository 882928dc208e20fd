package ports

import (
	"context"

	"partner/internal/core/domain/model/order"
)

// OrderArchiver persists delivered orders for the partner's delivery history.
// Archiving happens after the store has committed the delivered order; a
// failing archiver never affects projections or operation state.
type OrderArchiver interface {
	// Archive records a delivered order. Archiving the same assignment id
	// twice updates the existing record.
	Archive(ctx context.Context, aggregate *order.Order) error
}
