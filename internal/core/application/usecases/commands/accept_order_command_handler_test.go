package commands_test

import (
	"errors"
	"testing"

	"partner/internal/core/application/usecases/commands"
	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"
	"partner/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	assignmentID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(assignmentID, partnerID)
	require.NoError(t, err)

	store := services.NewLifecycleStore()
	store.ReplaceAll([]*order.Order{
		testOrder(t, assignmentID, order.Assigned),
		testOrder(t, kernel.NewUUID(), order.Delivered),
	})

	accepted := testOrder(t, assignmentID, order.Accepted)
	client := new(MockAssignmentClient)
	client.On("Accept", ctx, assignmentID, partnerID).Return(accepted, nil).Once()

	h := commands.NewAcceptOrderCommandHandler(client, store)

	require.NoError(t, h.Handle(ctx, cmd))

	active := store.ActiveOrders()
	require.Len(t, active, 1)
	assert.Equal(t, order.Accepted, active[0].Status())
	assert.True(t, active[0].IsEqual(accepted))
	assert.Len(t, store.Orders(), 2)
	assert.Len(t, store.CompletedOrders(), 1)
	assert.False(t, store.IsPending(services.OperationAcceptOrder))
	client.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_FailureLeavesStoreUntouched(t *testing.T) {
	ctx := t.Context()
	assignmentID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(assignmentID, partnerID)
	require.NoError(t, err)

	store := services.NewLifecycleStore()
	store.ReplaceAll([]*order.Order{testOrder(t, assignmentID, order.Assigned)})
	before := storeIDs(store)

	failure := errors.New("order no longer assignable")
	client := new(MockAssignmentClient)
	client.On("Accept", ctx, assignmentID, partnerID).Return(nil, failure).Once()

	h := commands.NewAcceptOrderCommandHandler(client, store)

	require.ErrorIs(t, h.Handle(ctx, cmd), failure)

	assert.Equal(t, before, storeIDs(store))
	assert.Equal(t, failure, store.LastError())
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptOrderCommand{} // not constructed properly

	client := new(MockAssignmentClient)
	h := commands.NewAcceptOrderCommandHandler(client, services.NewLifecycleStore())

	require.Error(t, h.Handle(ctx, cmd))
	client.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything, mock.Anything)
}
