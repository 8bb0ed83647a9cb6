package commands

import (
	"context"

	"launderly/internal/core/domain/services"
)

// SubmitCountsCommandHandler applies worker-entered counts to an order and
// reconciles them against the declared quantities. The reconciliation result
// is returned so callers can surface mismatches immediately.
type SubmitCountsCommandHandler struct {
	uowFactory OrderUoWFactory
	reconciler services.Reconciler
}

// NewSubmitCountsCommandHandler creates a handler for count submission.
func NewSubmitCountsCommandHandler(uowFactory OrderUoWFactory) SubmitCountsCommandHandler {
	return SubmitCountsCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle processes the counts command.
// Applies every count through the aggregate, which only accepts edits in the
// pending status, then reports which items still disagree with the manifest.
func (h *SubmitCountsCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitCountsCommand,
) (services.ReconciliationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.ReconciliationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ReconciliationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.ReconciliationResult{}, err
	}

	for _, count := range cmd.Counts() {
		if err = aggregate.SetItemCount(count.OrderItemID, count.CountedQty); err != nil {
			return services.ReconciliationResult{}, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return services.ReconciliationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ReconciliationResult{}, err
	}

	return h.reconciler.Reconcile(aggregate.Items()), nil
}
