// Package assignmenthttp implements the assignment-service client over HTTP.
// It is the only component that knows the service's wire format; everything
// it hands to the core is a fully constructed domain order.
package assignmenthttp

import (
	"time"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"
)

// orderDTO mirrors the assignment service's order representation.
type orderDTO struct {
	AssignmentID   string    `json:"assignmentId"`
	Status         string    `json:"status"`
	Earnings       moneyDTO  `json:"earnings"`
	PickupAddress  string    `json:"pickupAddress"`
	DropoffAddress string    `json:"dropoffAddress"`
	CustomerName   string    `json:"customerName"`
	AssignedAt     time.Time `json:"assignedAt"`
}

type moneyDTO struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

// acceptRequest and friends are the operation request bodies.
type acceptRequest struct {
	PartnerID string `json:"partnerId"`
}

type rejectRequest struct {
	PartnerID string `json:"partnerId"`
	Reason    string `json:"reason"`
}

type rejectResponse struct {
	AssignmentID string `json:"assignmentId"`
}

type updateStatusRequest struct {
	PartnerID string `json:"partnerId"`
	Status    string `json:"status"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// toDomain rebuilds a domain order from the wire representation.
// Unrecognized status strings map to order.Unknown and are carried through;
// the service remains authoritative even for statuses this client predates.
func toDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.AssignmentID)
	if err != nil {
		return nil, err
	}

	earnings, err := kernel.NewMoney(dto.Earnings.Cents, dto.Earnings.Currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.StatusFromString(dto.Status),
		earnings,
		dto.PickupAddress,
		dto.DropoffAddress,
		dto.CustomerName,
		dto.AssignedAt,
	)
}

func toDomainList(dtos []orderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
