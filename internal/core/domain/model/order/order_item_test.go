package order_test

import (
	"testing"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"
	"launderly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	t.Run("creates item with zero count", func(t *testing.T) {
		id := kernel.NewUUID()
		laundryItemID := kernel.NewUUID()

		item, err := order.NewOrderItem(id, laundryItemID, "Shirt", 3)

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.LaundryItemID().IsEqual(laundryItemID))
		assert.Equal(t, "Shirt", item.ItemName())
		assert.Equal(t, 3, item.ExpectedQty())
		assert.Zero(t, item.CountedQty())
		assert.NoError(t, item.Validate())
	})

	t.Run("zero count against positive expectation is a mismatch", func(t *testing.T) {
		item, err := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), "Shirt", 3)

		require.NoError(t, err)
		assert.False(t, item.Matches())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.UUID{}, kernel.NewUUID(), "Shirt", 3)
		require.Error(t, err)

		_, err = order.NewOrderItem(kernel.NewUUID(), kernel.UUID{}, "Shirt", 3)
		require.Error(t, err)

		_, err = order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), "", 3)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), "Shirt", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), "Shirt", -2)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderItem_SetCounted(t *testing.T) {
	t.Run("records matching count", func(t *testing.T) {
		item, _ := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), "Shirt", 3)

		require.NoError(t, item.SetCounted(3))

		assert.Equal(t, 3, item.CountedQty())
		assert.True(t, item.Matches())
	})

	t.Run("records mismatching count", func(t *testing.T) {
		item, _ := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), "Shirt", 3)

		require.NoError(t, item.SetCounted(2))

		assert.False(t, item.Matches())
	})

	t.Run("counting zero explicitly is allowed", func(t *testing.T) {
		item, _ := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), "Shirt", 3)

		require.NoError(t, item.SetCounted(0))
		assert.False(t, item.Matches())
	})

	t.Run("rejects negative counts at the edit boundary", func(t *testing.T) {
		item, _ := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), "Shirt", 3)

		err := item.SetCounted(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, item.CountedQty())
	})
}

func TestRestoreOrderItem(t *testing.T) {
	t.Run("restores with recorded count", func(t *testing.T) {
		item, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.NewUUID(), "Trousers", 2, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, item.CountedQty())
		assert.True(t, item.Matches())
	})

	t.Run("rejects negative persisted count", func(t *testing.T) {
		_, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.NewUUID(), "Trousers", 2, -1)

		require.Error(t, err)
	})
}

func TestOrderItem_Validate(t *testing.T) {
	var item order.OrderItem

	err := item.Validate()

	require.Error(t, err)
	assert.Equal(t, order.ErrOrderItemIsNotConstructed, err)
}
