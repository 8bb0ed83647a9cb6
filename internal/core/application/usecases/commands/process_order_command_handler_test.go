package commands_test

import (
	"testing"

	"launderly/internal/core/application/usecases/commands"
	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessOrderCommandHandler_Handle_CountsMatch(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t, 5)
	require.NoError(t, aggregate.SetItemCount(aggregate.Items()[0].ID(), 5))
	cmd, err := commands.NewProcessOrderCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Processing, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_MismatchWithoutBypass(t *testing.T) {
	ctx := t.Context()
	aggregate := newMismatchedOrder(t)
	cmd, err := commands.NewProcessOrderCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrProcessingBlocked)
	assert.Equal(t, order.Pending, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProcessOrderCommandHandler_Handle_MismatchWithApprovedBypass(t *testing.T) {
	ctx := t.Context()
	aggregate := newMismatchedOrder(t)
	require.NoError(t, aggregate.RaiseBypass(kernel.NewUUID(), kernel.NewUUID(), "shirt missing"))
	require.NoError(t, aggregate.ResolveBypass(true))
	cmd, err := commands.NewProcessOrderCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Processing, aggregate.Status())
}
