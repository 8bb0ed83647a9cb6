package commands

import (
	"context"
	"errors"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/request"
)

var ErrNoCompletedOrdersFound = errors.New("no completed orders without delivery found")

// ScheduleDeliveriesCommandHandler creates delivery errands for completed
// orders. Each errand reuses the customer and address of the order's pickup,
// and the order records the delivery so it is never scheduled twice.
// All changes for one sweep commit in a single transaction.
type ScheduleDeliveriesCommandHandler struct {
	uowFactory UoWFactory
}

// NewScheduleDeliveriesCommandHandler creates a handler for delivery scheduling.
// Requires a UoWFactory for coordinating request and order repositories.
func NewScheduleDeliveriesCommandHandler(uowFactory UoWFactory) ScheduleDeliveriesCommandHandler {
	return ScheduleDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the scheduling command.
// Returns ErrNoCompletedOrdersFound when no order is eligible, so callers
// can treat an empty sweep as a non-event.
func (h ScheduleDeliveriesCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveriesCommand) error {
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

	requestRepo := uow.RequestRepository()
	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllCompletedWithoutDelivery(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrNoCompletedOrdersFound
	}

	for _, completedOrder := range orders {
		pickup, pickupErr := requestRepo.Get(ctx, completedOrder.PickupRequestID())
		if pickupErr != nil {
			return pickupErr
		}

		delivery, deliveryErr := request.NewRequest(
			kernel.NewUUID(), request.Delivery, pickup.CustomerName(), pickup.Address())
		if deliveryErr != nil {
			return deliveryErr
		}

		if err = requestRepo.Add(ctx, delivery); err != nil {
			return err
		}

		if err = completedOrder.ScheduleDelivery(delivery.ID()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, completedOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
