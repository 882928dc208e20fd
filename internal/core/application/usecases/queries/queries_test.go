package queries_test

import (
	"errors"
	"testing"
	"time"

	"partner/internal/core/application/usecases/queries"
	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"
	"partner/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T) (*services.LifecycleStore, []*order.Order) {
	t.Helper()
	earnings, err := kernel.NewMoney(2000, "USD")
	require.NoError(t, err)

	assigned, err := order.RestoreOrder(
		kernel.NewUUID(), order.Assigned, earnings, "1 First St", "2 Second St", "Kim", time.Now())
	require.NoError(t, err)
	delivered, err := order.RestoreOrder(
		kernel.NewUUID(), order.Delivered, earnings, "3 Third St", "4 Fourth St", "Lee", time.Now())
	require.NoError(t, err)

	store := services.NewLifecycleStore()
	store.ReplaceAll([]*order.Order{assigned, delivered})
	return store, []*order.Order{assigned, delivered}
}

func TestGetAllOrdersQueryHandler_Handle(t *testing.T) {
	store, seeded := seedStore(t)
	h := queries.NewGetAllOrdersQueryHandler(store)

	responses, err := h.Handle(t.Context(), queries.NewGetAllOrdersQuery())

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.True(t, responses[0].ID.IsEqual(seeded[0].ID()))
	assert.Equal(t, order.Assigned, responses[0].Status)
	assert.Equal(t, int64(2000), responses[0].EarningsCents)
	assert.Equal(t, "USD", responses[0].Currency)
	assert.Equal(t, "1 First St", responses[0].PickupAddress)
}

func TestGetAllOrdersQueryHandler_Handle_ValidationError(t *testing.T) {
	store, _ := seedStore(t)
	h := queries.NewGetAllOrdersQueryHandler(store)

	_, err := h.Handle(t.Context(), queries.GetAllOrdersQuery{}) // not constructed properly

	require.Error(t, err)
}

func TestGetActiveOrdersQueryHandler_Handle(t *testing.T) {
	store, seeded := seedStore(t)
	h := queries.NewGetActiveOrdersQueryHandler(store)

	responses, err := h.Handle(t.Context(), queries.NewGetActiveOrdersQuery())

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].ID.IsEqual(seeded[0].ID()))
}

func TestGetCompletedOrdersQueryHandler_Handle(t *testing.T) {
	store, seeded := seedStore(t)
	h := queries.NewGetCompletedOrdersQueryHandler(store)

	responses, err := h.Handle(t.Context(), queries.NewGetCompletedOrdersQuery())

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].ID.IsEqual(seeded[1].ID()))
	assert.Equal(t, order.Delivered, responses[0].Status)
}

func TestGetOperationStateQueryHandler_Handle(t *testing.T) {
	t.Run("reports pending operation", func(t *testing.T) {
		store, _ := seedStore(t)
		store.BeginOperation(services.OperationAcceptOrder)
		h := queries.NewGetOperationStateQueryHandler(store)

		state, err := h.Handle(t.Context(), queries.NewGetOperationStateQuery())

		require.NoError(t, err)
		assert.True(t, state.AcceptOrderPending)
		assert.False(t, state.FetchOrdersPending)
		assert.Empty(t, state.LastError)
	})

	t.Run("reports last error message", func(t *testing.T) {
		store, _ := seedStore(t)
		store.BeginOperation(services.OperationFetchOrders)
		store.FailOperation(services.OperationFetchOrders, errors.New("service unreachable"))
		h := queries.NewGetOperationStateQueryHandler(store)

		state, err := h.Handle(t.Context(), queries.NewGetOperationStateQuery())

		require.NoError(t, err)
		assert.False(t, state.FetchOrdersPending)
		assert.Equal(t, "service unreachable", state.LastError)
	})
}

func TestQueryResponsesAreDetached(t *testing.T) {
	store, seeded := seedStore(t)
	h := queries.NewGetAllOrdersQueryHandler(store)

	responses, err := h.Handle(t.Context(), queries.NewGetAllOrdersQuery())
	require.NoError(t, err)

	responses[0].CustomerName = "mutated"

	fresh, err := h.Handle(t.Context(), queries.NewGetAllOrdersQuery())
	require.NoError(t, err)
	assert.Equal(t, seeded[0].CustomerName(), fresh[0].CustomerName)
}
