package commands

import (
	"context"
	"fmt"
	"strings"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"
	"launderly/internal/core/domain/model/request"
	"launderly/internal/pkg/errs"
)

// AdvanceRequestCommandHandler orchestrates errand progression.
// Loads the errand, verifies the caller's kind and version expectations,
// advances the status, and persists the change. When a pickup reaches its
// terminal status the corresponding order is opened in the same transaction,
// so laundry never arrives at the outlet without an order to receive it.
//
// Example:
//
//	handler := NewAdvanceRequestCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceRequestCommand(requestID, request.Delivery, 0)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown errand
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // errand already at its terminal status
//	case errors.Is(err, errs.ErrVersionConflict):
//	    // caller acted on stale state
//	}
type AdvanceRequestCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceRequestCommandHandler creates a handler for errand progression.
// Requires a UoWFactory because terminal pickups open orders transactionally.
func NewAdvanceRequestCommandHandler(uowFactory UoWFactory) AdvanceRequestCommandHandler {
	return AdvanceRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
// The kind check and the expected-version check run before any mutation.
// Advancing past a terminal status fails with errs.ErrInvalidTransition.
func (h AdvanceRequestCommandHandler) Handle(ctx context.Context, cmd AdvanceRequestCommand) error {
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

	errand, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if errand.Kind() != cmd.Kind() {
		return errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("request %s is a %s errand, not %s", errand.ID(), errand.Kind(), cmd.Kind()))
	}

	if cmd.ExpectedVersion() != 0 && cmd.ExpectedVersion() != errand.Version() {
		return errs.NewVersionConflictError("requestId", cmd.ExpectedVersion(), errand.Version())
	}

	if err = errand.Advance(); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, errand); err != nil {
		return err
	}

	if errand.Kind() == request.Pickup && errand.IsTerminal() {
		if err = h.openOrder(ctx, uow, errand); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// openOrder creates the order for a pickup that just arrived at the outlet.
func (h AdvanceRequestCommandHandler) openOrder(ctx context.Context, uow UoW, pickup *request.Request) error {
	orderID := kernel.NewUUID()
	orderNumber := fmt.Sprintf("LDY-%s", strings.ToUpper(orderID.String()[:8]))

	newOrder, err := order.NewOrder(orderID, orderNumber, pickup.ID())
	if err != nil {
		return err
	}

	return uow.OrderRepository().Add(ctx, newOrder)
}
