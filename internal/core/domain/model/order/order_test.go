package order_test

import (
	"testing"
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"
	"launderly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArrivedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-0001", kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func newItem(t *testing.T, name string, expected int) *order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), name, expected)
	require.NoError(t, err)
	return item
}

// newPendingOrder returns an order after intake of the given items.
func newPendingOrder(t *testing.T, items ...*order.OrderItem) *order.Order {
	t.Helper()
	o := newArrivedOrder(t)
	require.NoError(t, o.Intake(items, 4.5, 90))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in arrived status", func(t *testing.T) {
		id := kernel.NewUUID()
		pickupID := kernel.NewUUID()

		o, err := order.NewOrder(id, "ORD-0001", pickupID)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "ORD-0001", o.OrderNumber())
		assert.True(t, o.PickupRequestID().IsEqual(pickupID))
		assert.Equal(t, order.ArrivedAtOutlet, o.Status())
		assert.Empty(t, o.Items())
		assert.Nil(t, o.DeliveryRequestID())
		assert.NoError(t, o.Validate())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, "ORD-0001", kernel.NewUUID())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "", kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(kernel.NewUUID(), "ORD-0001", kernel.UUID{})
		require.Error(t, err)
	})
}

func TestOrder_Intake(t *testing.T) {
	t.Run("attaches items and moves to pending", func(t *testing.T) {
		o := newArrivedOrder(t)
		items := []*order.OrderItem{newItem(t, "Shirt", 3), newItem(t, "Trousers", 2)}

		err := o.Intake(items, 4.5, 90)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Items(), 2)
		assert.InDelta(t, 4.5, o.Weight(), 0.0001)
		assert.InDelta(t, 90, o.LaundryPrice(), 0.0001)
	})

	t.Run("requires at least one item", func(t *testing.T) {
		o := newArrivedOrder(t)

		err := o.Intake(nil, 4.5, 90)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.ArrivedAtOutlet, o.Status())
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		o := newArrivedOrder(t)

		require.Error(t, o.Intake([]*order.OrderItem{newItem(t, "Shirt", 1)}, 0, 90))
		require.Error(t, o.Intake([]*order.OrderItem{newItem(t, "Shirt", 1)}, -1, 90))
	})

	t.Run("cannot run twice", func(t *testing.T) {
		o := newPendingOrder(t, newItem(t, "Shirt", 3))

		err := o.Intake([]*order.OrderItem{newItem(t, "Towel", 1)}, 2, 30)

		require.Error(t, err)
		assert.Len(t, o.Items(), 1)
	})
}

func TestOrder_SetItemCount(t *testing.T) {
	t.Run("records counts during pending", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)

		require.NoError(t, o.SetItemCount(item.ID(), 3))

		assert.Equal(t, 3, item.CountedQty())
		assert.True(t, o.AllItemsMatch())
	})

	t.Run("unknown item fails", func(t *testing.T) {
		o := newPendingOrder(t, newItem(t, "Shirt", 3))

		err := o.SetItemCount(kernel.NewUUID(), 3)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("counting outside pending fails", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 3))
		require.NoError(t, o.Process())

		err := o.SetItemCount(item.ID(), 2)

		require.Error(t, err)
	})
}

func TestOrder_Process(t *testing.T) {
	t.Run("matched order processes", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 3))

		require.NoError(t, o.Process())

		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("mismatched order is blocked", func(t *testing.T) {
		shirt := newItem(t, "Shirt", 3)
		trousers := newItem(t, "Trousers", 2)
		o := newPendingOrder(t, shirt, trousers)
		require.NoError(t, o.SetItemCount(shirt.ID(), 3))
		require.NoError(t, o.SetItemCount(trousers.ID(), 1))

		err := o.Process()

		require.ErrorIs(t, err, order.ErrProcessingBlocked)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("pending bypass does not unblock", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 2))
		require.NoError(t, o.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "one shirt missing"))

		require.ErrorIs(t, o.Process(), order.ErrProcessingBlocked)
	})

	t.Run("approved bypass unblocks", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 2))
		require.NoError(t, o.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "one shirt missing"))
		require.NoError(t, o.ResolveBypass(true))

		require.NoError(t, o.Process())
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("rejected bypass keeps the order blocked", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 2))
		require.NoError(t, o.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "one shirt missing"))
		require.NoError(t, o.ResolveBypass(false))

		require.ErrorIs(t, o.Process(), order.ErrProcessingBlocked)
	})
}

func TestOrder_RaiseBypass(t *testing.T) {
	t.Run("raises on mismatch", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 2))

		err := o.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "one shirt missing")

		require.NoError(t, err)
		require.NotNil(t, o.OpenBypass())
		assert.Equal(t, "one shirt missing", o.OpenBypass().Note())
	})

	t.Run("matched order may not bypass", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 3))

		err := o.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "note")

		require.ErrorIs(t, err, order.ErrBypassNotAllowed)
	})

	t.Run("only one open bypass at a time", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 2))
		require.NoError(t, o.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "first"))

		err := o.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "second")

		require.ErrorIs(t, err, order.ErrBypassAlreadyOpen)
	})

	t.Run("rejected bypass allows a new one", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 2))
		require.NoError(t, o.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "first"))
		require.NoError(t, o.ResolveBypass(false))

		require.NoError(t, o.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "second"))
		assert.Len(t, o.Bypasses(), 2)
	})

	t.Run("empty note fails before anything is recorded", func(t *testing.T) {
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 2))

		err := o.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Empty(t, o.Bypasses())
	})
}

func TestOrder_ResolveBypass(t *testing.T) {
	t.Run("nothing to resolve", func(t *testing.T) {
		o := newPendingOrder(t, newItem(t, "Shirt", 3))

		require.ErrorIs(t, o.ResolveBypass(true), order.ErrNoOpenBypass)
	})
}

func TestOrder_CompleteAndScheduleDelivery(t *testing.T) {
	completedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		item := newItem(t, "Shirt", 3)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 3))
		require.NoError(t, o.Process())
		require.NoError(t, o.Complete())
		return o
	}

	t.Run("complete only from processing", func(t *testing.T) {
		o := newPendingOrder(t, newItem(t, "Shirt", 3))

		require.Error(t, o.Complete())
	})

	t.Run("schedules delivery once", func(t *testing.T) {
		o := completedOrder(t)
		deliveryID := kernel.NewUUID()

		require.NoError(t, o.ScheduleDelivery(deliveryID))
		require.NotNil(t, o.DeliveryRequestID())
		assert.True(t, o.DeliveryRequestID().IsEqual(deliveryID))

		err := o.ScheduleDelivery(kernel.NewUUID())
		require.ErrorIs(t, err, order.ErrDeliveryAlreadyScheduled)
	})

	t.Run("cannot schedule before completion", func(t *testing.T) {
		o := newPendingOrder(t, newItem(t, "Shirt", 3))

		require.Error(t, o.ScheduleDelivery(kernel.NewUUID()))
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels before processing", func(t *testing.T) {
		o := newArrivedOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cannot cancel while processing", func(t *testing.T) {
		item := newItem(t, "Shirt", 1)
		o := newPendingOrder(t, item)
		require.NoError(t, o.SetItemCount(item.ID(), 1))
		require.NoError(t, o.Process())

		require.Error(t, o.Cancel())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores full aggregate", func(t *testing.T) {
		id := kernel.NewUUID()
		pickupID := kernel.NewUUID()
		deliveryID := kernel.NewUUID()
		items := []*order.OrderItem{newItem(t, "Shirt", 3)}
		require.NoError(t, items[0].SetCounted(3))
		bypass, err := order.RestoreBypassRequest(
			kernel.NewUUID(), kernel.NewUUID(), "note", order.BypassApproved, time.Now().UTC())
		require.NoError(t, err)
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC()

		o, err := order.RestoreOrder(
			id, "ORD-0042", pickupID, &deliveryID, order.Completed, 4.5, 90,
			items, []*order.BypassRequest{bypass}, createdAt, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		assert.Len(t, o.Items(), 1)
		assert.True(t, o.HasApprovedBypass())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("rejects unconstructed children", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-0042", kernel.NewUUID(), nil, order.Pending, 4.5, 90,
			[]*order.OrderItem{{}}, nil, time.Now().UTC(), time.Now().UTC())

		require.Error(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-0042", kernel.NewUUID(), nil, order.Unknown, 4.5, 90,
			nil, nil, time.Now().UTC(), time.Now().UTC())

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order

	err := o.Validate()

	require.Error(t, err)
	assert.Equal(t, order.ErrOrderIsNotConstructed, err)
}
