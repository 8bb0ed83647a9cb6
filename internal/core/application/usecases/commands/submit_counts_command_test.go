package commands_test

import (
	"testing"

	"launderly/internal/core/application/usecases/commands"
	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitCountsCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	counts := []commands.ItemCount{
		{OrderItemID: kernel.NewUUID(), CountedQty: 4},
		{OrderItemID: kernel.NewUUID(), CountedQty: 0},
	}

	cmd, err := commands.NewSubmitCountsCommand(orderID, counts)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Len(t, cmd.Counts(), 2)
}

func TestNewSubmitCountsCommand_NoCounts(t *testing.T) {
	_, err := commands.NewSubmitCountsCommand(kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCountsAreRequired)
}

func TestNewSubmitCountsCommand_NegativeCount(t *testing.T) {
	counts := []commands.ItemCount{
		{OrderItemID: kernel.NewUUID(), CountedQty: -1},
	}
	_, err := commands.NewSubmitCountsCommand(kernel.NewUUID(), counts)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewSubmitCountsCommand_MissingOrderItemID(t *testing.T) {
	counts := []commands.ItemCount{
		{OrderItemID: kernel.UUID{}, CountedQty: 1},
	}
	_, err := commands.NewSubmitCountsCommand(kernel.NewUUID(), counts)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
