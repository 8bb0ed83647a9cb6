package commands

import (
	"context"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"
)

// IntakeOrderCommandHandler handles the outlet intake step.
// Attaches declared items, weight, and price to an order that arrived at
// the outlet, moving it into the pending status where counting happens.
type IntakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewIntakeOrderCommandHandler creates a handler for outlet intake.
func NewIntakeOrderCommandHandler(uowFactory OrderUoWFactory) IntakeOrderCommandHandler {
	return IntakeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command.
// Builds order items from the declared manifest and applies them to the
// aggregate, which rejects intake outside the arrived-at-outlet status.
func (h *IntakeOrderCommandHandler) Handle(ctx context.Context, cmd IntakeOrderCommand) error {
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

	items := make([]*order.OrderItem, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		item, itemErr := order.NewOrderItem(kernel.NewUUID(), spec.LaundryItemID, spec.ItemName, spec.ExpectedQty)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	if err = aggregate.Intake(items, cmd.Weight(), cmd.LaundryPrice()); err != nil {
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
