package commands

import (
	"context"
)

// ProcessOrderCommandHandler starts laundry processing for a counted order.
// The aggregate rejects the transition while counts disagree and no bypass
// has been approved, so unverified loads never enter processing.
type ProcessOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewProcessOrderCommandHandler creates a handler for starting processing.
func NewProcessOrderCommandHandler(uowFactory OrderUoWFactory) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
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

	if err = aggregate.Process(); err != nil {
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
