package commands

import (
	"errors"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/errs"
	"launderly/internal/pkg/guard"
)

var (
	ErrIntakeOrderCommandIsNotConstructed = errors.New(
		"IntakeOrderCommand must be created via NewIntakeOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// IntakeItem describes a single declared line item at outlet intake.
type IntakeItem struct {
	LaundryItemID kernel.UUID
	ItemName      string
	ExpectedQty   int
}

// IntakeOrderCommand attaches the declared contents to an order that just
// arrived at the outlet: the weighed load, the quoted price, and the line
// items the driver manifest promises.
//
// Example:
//
//	items := []IntakeItem{{LaundryItemID: shirtID, ItemName: "Shirt", ExpectedQty: 5}}
//	cmd, err := NewIntakeOrderCommand(orderID, items, 3.4, 120.0)
//	if err != nil {
//	    return err
//	}
//	handler := NewIntakeOrderCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type IntakeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	items        []IntakeItem
	weight       float64
	laundryPrice float64

	guard guard.ConstructorGuard
}

// NewIntakeOrderCommand creates a command to register order contents.
// Validates the order ID, requires at least one item with a positive
// expected quantity, a positive weight, and a non-negative price.
func NewIntakeOrderCommand(
	orderID kernel.UUID,
	items []IntakeItem,
	weight float64,
	laundryPrice float64,
) (IntakeOrderCommand, error) {
	intakeCommand := IntakeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		intakeCommand.setOrderID(orderID),
		intakeCommand.setItems(items),
		intakeCommand.setWeight(weight),
		intakeCommand.setLaundryPrice(laundryPrice),
	); err != nil {
		return IntakeOrderCommand{}, err
	}

	return intakeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c IntakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrIntakeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the contents.
func (c IntakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the declared line items.
func (c IntakeOrderCommand) Items() []IntakeItem {
	return c.items
}

// Weight returns the weighed load in kilograms.
func (c IntakeOrderCommand) Weight() float64 {
	return c.weight
}

// LaundryPrice returns the quoted price for the load.
func (c IntakeOrderCommand) LaundryPrice() float64 {
	return c.laundryPrice
}

func (c *IntakeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *IntakeOrderCommand) setItems(items []IntakeItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.LaundryItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("laundryItemId", err)
		}
		if item.ItemName == "" {
			return errs.NewValueIsRequiredError("itemName")
		}
		if item.ExpectedQty <= 0 {
			return errs.NewValueIsInvalidError("expectedQty")
		}
	}

	c.items = items
	return nil
}

func (c *IntakeOrderCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}

	c.weight = weight
	return nil
}

func (c *IntakeOrderCommand) setLaundryPrice(laundryPrice float64) error {
	if laundryPrice < 0 {
		return errs.NewValueIsInvalidError("laundryPrice")
	}

	c.laundryPrice = laundryPrice
	return nil
}
