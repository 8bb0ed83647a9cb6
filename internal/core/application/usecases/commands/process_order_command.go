package commands

import (
	"errors"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/guard"
)

var ErrProcessOrderCommandIsNotConstructed = errors.New(
	"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
)

// ProcessOrderCommand moves a counted order into processing. The aggregate
// gates this on reconciled counts or an approved bypass.
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command to start processing an order.
func NewProcessOrderCommand(orderID kernel.UUID) (ProcessOrderCommand, error) {
	processCommand := ProcessOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := processCommand.setOrderID(orderID); err != nil {
		return ProcessOrderCommand{}, err
	}

	return processCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to process.
func (c ProcessOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ProcessOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
