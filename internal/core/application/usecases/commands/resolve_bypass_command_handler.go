package commands

import (
	"context"
)

// ResolveBypassCommandHandler applies an admin decision to the open bypass
// request of an order. Resolving without an open request fails inside the
// aggregate.
type ResolveBypassCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResolveBypassCommandHandler creates a handler for bypass resolution.
func NewResolveBypassCommandHandler(uowFactory OrderUoWFactory) ResolveBypassCommandHandler {
	return ResolveBypassCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolve-bypass command.
func (h *ResolveBypassCommandHandler) Handle(ctx context.Context, cmd ResolveBypassCommand) error {
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

	if err = aggregate.ResolveBypass(cmd.Approve()); err != nil {
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
