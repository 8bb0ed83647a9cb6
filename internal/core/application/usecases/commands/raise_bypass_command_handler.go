package commands

import (
	"context"

	"launderly/internal/core/domain/model/kernel"
)

// RaiseBypassCommandHandler opens a bypass request on a mismatched order.
// The aggregate enforces the preconditions: the order must be pending, the
// counts must actually disagree, and no other bypass may be open.
type RaiseBypassCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRaiseBypassCommandHandler creates a handler for raising bypass requests.
func NewRaiseBypassCommandHandler(uowFactory OrderUoWFactory) RaiseBypassCommandHandler {
	return RaiseBypassCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the raise-bypass command.
func (h *RaiseBypassCommandHandler) Handle(ctx context.Context, cmd RaiseBypassCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.RaiseBypass(kernel.NewUUID(), cmd.OrderWorkerID(), cmd.Note()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
