package commands_test

import (
	"testing"

	"launderly/internal/core/application/usecases/commands"
	"launderly/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaiseBypassCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	workerID := kernel.NewUUID()

	cmd, err := commands.NewRaiseBypassCommand(orderID, workerID, "  two shirts missing  ")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, workerID, cmd.OrderWorkerID())
	assert.Equal(t, "two shirts missing", cmd.Note())
}

func TestNewRaiseBypassCommand_BlankNote(t *testing.T) {
	_, err := commands.NewRaiseBypassCommand(kernel.NewUUID(), kernel.NewUUID(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBypassNoteIsRequired)
}

func TestNewRaiseBypassCommand_InvalidWorkerID(t *testing.T) {
	_, err := commands.NewRaiseBypassCommand(kernel.NewUUID(), kernel.UUID{}, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
