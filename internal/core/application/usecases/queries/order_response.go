package queries

import (
	"time"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"
)

// OrderResponse is the read-model projection of a single order returned by
// the order queries. It is a detached copy; mutating it never affects the
// lifecycle store.
type OrderResponse struct {
	ID             kernel.UUID
	Status         order.Status
	EarningsCents  int64
	Currency       string
	PickupAddress  string
	DropoffAddress string
	CustomerName   string
	AssignedAt     time.Time
}

// toOrderResponses maps domain orders to their read model, preserving order.
func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = OrderResponse{
			ID:             o.ID(),
			Status:         o.Status(),
			EarningsCents:  o.Earnings().Cents(),
			Currency:       o.Earnings().Currency(),
			PickupAddress:  o.PickupAddress(),
			DropoffAddress: o.DropoffAddress(),
			CustomerName:   o.CustomerName(),
			AssignedAt:     o.AssignedAt(),
		}
	}
	return responses
}
