package commands_test

import (
	"testing"
	"time"

	"launderly/internal/core/application/usecases/commands"
	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"
	"launderly/internal/core/domain/model/request"
	"launderly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredRequest(t *testing.T, kind request.Kind, status request.Status, version int) *request.Request {
	t.Helper()
	addr, err := kernel.NewAddress("Main St 5", 3.2)
	require.NoError(t, err)
	r, err := request.RestoreRequest(
		kernel.NewUUID(), kind, status, "Jane", addr, version, time.Now(), time.Now())
	require.NoError(t, err)
	return r
}

func advanceCommand(t *testing.T, id kernel.UUID, kind request.Kind, expectedVersion int) commands.AdvanceRequestCommand {
	t.Helper()
	cmd, err := commands.NewAdvanceRequestCommand(id, kind, expectedVersion)
	require.NoError(t, err)
	return cmd
}

func TestAdvanceRequestCommandHandler_Handle_DeliveryMidPath(t *testing.T) {
	ctx := t.Context()
	errand := restoredRequest(t, request.Delivery, request.WaitingForDriver, 1)
	cmd := advanceCommand(t, errand.ID(), request.Delivery, 0)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, errand.ID()).Return(errand, nil).Once(),
		requestRepo.On("Update", mock.Anything, errand).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, request.OnTheWayToOutlet, errand.Status())
	assert.Equal(t, 2, errand.Version())
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceRequestCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd := advanceCommand(t, id, request.Pickup, 0)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("requestId", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAdvanceRequestCommandHandler_Handle_KindMismatch(t *testing.T) {
	ctx := t.Context()
	errand := restoredRequest(t, request.Pickup, request.WaitingForDriver, 1)
	cmd := advanceCommand(t, errand.ID(), request.Delivery, 0)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, errand.ID()).Return(errand, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, request.WaitingForDriver, errand.Status())
	requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdvanceRequestCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	errand := restoredRequest(t, request.Delivery, request.OnTheWayToOutlet, 5)
	cmd := advanceCommand(t, errand.ID(), request.Delivery, 2)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, errand.ID()).Return(errand, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	assert.Equal(t, request.OnTheWayToOutlet, errand.Status())
	assert.Equal(t, 5, errand.Version())
	requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdvanceRequestCommandHandler_Handle_TerminalStatus(t *testing.T) {
	ctx := t.Context()
	errand := restoredRequest(t, request.Pickup, request.ReceivedByOutlet, 4)
	cmd := advanceCommand(t, errand.ID(), request.Pickup, 0)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, errand.ID()).Return(errand, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, request.ReceivedByOutlet, errand.Status())
	assert.Equal(t, 4, errand.Version())
}

func TestAdvanceRequestCommandHandler_Handle_PickupReachesOutletOpensOrder(t *testing.T) {
	ctx := t.Context()
	errand := restoredRequest(t, request.Pickup, request.OnTheWayToOutlet, 3)
	cmd := advanceCommand(t, errand.ID(), request.Pickup, 3)

	requestRepo := new(MockRequestRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, errand.ID()).Return(errand, nil).Once(),
		requestRepo.On("Update", mock.Anything, errand).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.PickupRequestID().IsEqual(errand.ID()) && o.Status() == order.ArrivedAtOutlet
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, request.ReceivedByOutlet, errand.Status())
	assert.True(t, errand.IsTerminal())
	requestRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceRequestCommandHandler_Handle_DeliveryTerminalDoesNotOpenOrder(t *testing.T) {
	ctx := t.Context()
	errand := restoredRequest(t, request.Delivery, request.OnTheWayToCustomer, 3)
	cmd := advanceCommand(t, errand.ID(), request.Delivery, 0)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, errand.ID()).Return(errand, nil).Once(),
		requestRepo.On("Update", mock.Anything, errand).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, request.ReceivedByCustomer, errand.Status())
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
}
