package commands

import (
	"errors"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/guard"
)

var ErrResolveBypassCommandIsNotConstructed = errors.New(
	"ResolveBypassCommand must be created via NewResolveBypassCommand constructor",
)

// ResolveBypassCommand records an admin's decision on an open bypass
// request: approve the mismatched order for processing, or reject it and
// send the worker back to recounting.
type ResolveBypassCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	approve bool

	guard guard.ConstructorGuard
}

// NewResolveBypassCommand creates a command carrying the admin decision.
func NewResolveBypassCommand(orderID kernel.UUID, approve bool) (ResolveBypassCommand, error) {
	resolveCommand := ResolveBypassCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resolveCommand.setOrderID(orderID); err != nil {
		return ResolveBypassCommand{}, err
	}
	resolveCommand.approve = approve

	return resolveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveBypassCommand) Validate() error {
	return c.guard.Validate(ErrResolveBypassCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose bypass is decided.
func (c ResolveBypassCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Approve reports whether the admin approved the bypass.
func (c ResolveBypassCommand) Approve() bool {
	return c.approve
}

func (c *ResolveBypassCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
