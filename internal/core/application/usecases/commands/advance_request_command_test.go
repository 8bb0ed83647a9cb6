package commands_test

import (
	"testing"

	"launderly/internal/core/application/usecases/commands"
	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/request"
	"launderly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceRequestCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewAdvanceRequestCommand(id, request.Delivery, 3)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.RequestID())
	assert.Equal(t, request.Delivery, cmd.Kind())
	assert.Equal(t, 3, cmd.ExpectedVersion())
}

func TestNewAdvanceRequestCommand_ZeroVersionSkipsCheck(t *testing.T) {
	cmd, err := commands.NewAdvanceRequestCommand(kernel.NewUUID(), request.Pickup, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.ExpectedVersion())
}

func TestNewAdvanceRequestCommand_InvalidRequestID(t *testing.T) {
	_, err := commands.NewAdvanceRequestCommand(kernel.UUID{}, request.Pickup, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAdvanceRequestCommand_UnknownKind(t *testing.T) {
	_, err := commands.NewAdvanceRequestCommand(kernel.NewUUID(), request.UnknownKind, 1)
	require.Error(t, err)
}

func TestNewAdvanceRequestCommand_NegativeVersion(t *testing.T) {
	_, err := commands.NewAdvanceRequestCommand(kernel.NewUUID(), request.Pickup, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
