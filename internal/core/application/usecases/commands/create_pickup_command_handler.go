package commands

import (
	"context"

	"launderly/internal/core/domain/model/request"
)

// CreatePickupCommandHandler handles the business logic for pickup registration.
// Creates new pickup errands in the waiting-for-driver status.
type CreatePickupCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreatePickupCommandHandler creates a handler for pickup registration.
// Requires a RequestUoWFactory for transactional persistence.
func NewCreatePickupCommandHandler(uowFactory RequestUoWFactory) CreatePickupCommandHandler {
	return CreatePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup registration command.
// Creates the errand in the waiting-for-driver status and persists it.
func (h *CreatePickupCommandHandler) Handle(ctx context.Context, cmd CreatePickupCommand) error {
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
	pickup, err := request.NewRequest(cmd.RequestID(), request.Pickup, cmd.CustomerName(), cmd.Address())
	if err != nil {
		return err
	}

	if err = requestRepo.Add(ctx, pickup); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
