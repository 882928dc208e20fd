package queries

import (
	"errors"

	"partner/internal/pkg/guard"
)

var ErrGetOperationStateQueryIsNotConstructed = errors.New(
	"GetOperationStateQuery must be created via NewGetOperationStateQuery constructor",
)

// GetOperationStateQuery retrieves the in-flight flags of the four dispatcher
// operations and the last failure, letting the UI layer render loading and
// error states without coupling to transport details.
type GetOperationStateQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOperationStateQuery creates a query for operation state.
func NewGetOperationStateQuery() GetOperationStateQuery {
	return GetOperationStateQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOperationStateQuery) Validate() error {
	return q.guard.Validate(ErrGetOperationStateQueryIsNotConstructed)
}

// OperationStateResponse reports each operation's pending flag and the most
// recent failure message. LastError is empty when the last operation of any
// kind to finish succeeded or when a new operation is in flight.
type OperationStateResponse struct {
	FetchOrdersPending       bool
	AcceptOrderPending       bool
	RejectOrderPending       bool
	UpdateOrderStatusPending bool
	LastError                string
}
