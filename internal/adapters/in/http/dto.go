package http

import (
	"time"

	"partner/internal/core/application/usecases/queries"
)

// Error is the JSON error envelope returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Money is the JSON representation of an amount of money.
type Money struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

// Order is the JSON representation of one order in list responses.
type Order struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	Earnings       Money     `json:"earnings"`
	PickupAddress  string    `json:"pickupAddress"`
	DropoffAddress string    `json:"dropoffAddress"`
	CustomerName   string    `json:"customerName"`
	AssignedAt     time.Time `json:"assignedAt"`
}

// OrderNotification is the request body of the inbound new-order channel.
type OrderNotification struct {
	AssignmentID   string    `json:"assignmentId"`
	Earnings       Money     `json:"earnings"`
	PickupAddress  string    `json:"pickupAddress"`
	DropoffAddress string    `json:"dropoffAddress"`
	CustomerName   string    `json:"customerName"`
	AssignedAt     time.Time `json:"assignedAt"`
}

// RejectOrderRequest carries the reason for declining an order.
type RejectOrderRequest struct {
	Reason string `json:"reason"`
}

// UpdateOrderStatusRequest carries the target status in wire form.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OperationState reports dispatcher operation flags and the last failure.
type OperationState struct {
	FetchOrdersPending       bool   `json:"fetchOrdersPending"`
	AcceptOrderPending       bool   `json:"acceptOrderPending"`
	RejectOrderPending       bool   `json:"rejectOrderPending"`
	UpdateOrderStatusPending bool   `json:"updateOrderStatusPending"`
	LastError                string `json:"lastError,omitempty"`
}

func toOrderList(responses []queries.OrderResponse) []Order {
	list := make([]Order, len(responses))
	for i, r := range responses {
		list[i] = Order{
			ID:     r.ID.String(),
			Status: r.Status.String(),
			Earnings: Money{
				Cents:    r.EarningsCents,
				Currency: r.Currency,
			},
			PickupAddress:  r.PickupAddress,
			DropoffAddress: r.DropoffAddress,
			CustomerName:   r.CustomerName,
			AssignedAt:     r.AssignedAt,
		}
	}
	return list
}
