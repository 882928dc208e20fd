package order_test

import (
	"testing"
	"time"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(cents, "USD")
	require.NoError(t, err)
	return money
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Assigned status", func(t *testing.T) {
		id := kernel.NewUUID()
		assignedAt := time.Now()

		o, err := order.NewOrder(id, mustMoney(t, 1250), "1 Pickup St", "2 Dropoff Ave", "Alex", assignedAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Assigned, o.Status())
		assert.Equal(t, order.MembershipActive, o.Membership())
		assert.Equal(t, int64(1250), o.Earnings().Cents())
		assert.Equal(t, "1 Pickup St", o.PickupAddress())
		assert.Equal(t, "2 Dropoff Ave", o.DropoffAddress())
		assert.Equal(t, "Alex", o.CustomerName())
		assert.Equal(t, assignedAt, o.AssignedAt())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := order.NewOrder(id, mustMoney(t, 100), "", "", "", time.Now())

		require.Error(t, err)
	})

	t.Run("should reject unconstructed earnings", func(t *testing.T) {
		var earnings kernel.Money

		_, err := order.NewOrder(kernel.NewUUID(), earnings, "", "", "", time.Now())

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with any status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Assigned, order.Accepted, order.PickedUp,
			order.OutForDelivery, order.Delivered, order.Rejected, order.Unknown,
		} {
			o, err := order.RestoreOrder(
				kernel.NewUUID(), status, mustMoney(t, 500), "a", "b", "c", time.Now())

			require.NoError(t, err)
			assert.Equal(t, status, o.Status())
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should reject zero value order", func(t *testing.T) {
		o := &order.Order{}

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("orders with same id are equal regardless of status", func(t *testing.T) {
		id := kernel.NewUUID()
		o1, _ := order.RestoreOrder(id, order.Assigned, mustMoney(t, 100), "", "", "", time.Time{})
		o2, _ := order.RestoreOrder(id, order.Delivered, mustMoney(t, 100), "", "", "", time.Time{})

		assert.True(t, o1.IsEqual(o2))
	})

	t.Run("orders with different ids are not equal", func(t *testing.T) {
		o1, _ := order.RestoreOrder(kernel.NewUUID(), order.Assigned, mustMoney(t, 100), "", "", "", time.Time{})
		o2, _ := order.RestoreOrder(kernel.NewUUID(), order.Assigned, mustMoney(t, 100), "", "", "", time.Time{})

		assert.False(t, o1.IsEqual(o2))
		assert.False(t, o1.IsEqual(nil))
	})
}
