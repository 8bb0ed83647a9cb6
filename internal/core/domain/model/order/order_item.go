package order

import (
	"errors"
	"fmt"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New(
	"OrderItem must be created via NewOrderItem or RestoreOrderItem constructor")

// OrderItem is a line item inside an Order: one laundry item type together
// with the quantity declared at intake and the quantity the worker physically
// counted during reconciliation.
//
// The counted quantity is initialized to zero and only meaningful once the
// worker begins reconciliation. There is deliberately no "not yet counted"
// tri-state: a count left at zero against a positive expectation is a
// mismatch.
type OrderItem struct {
	id            kernel.UUID
	laundryItemID kernel.UUID
	itemName      string
	expectedQty   int
	countedQty    int

	isConstructed bool
}

// NewOrderItem creates a line item with the declared quantity and a counted
// quantity of zero. The item name must be non-empty and the expected quantity
// positive.
func NewOrderItem(id kernel.UUID, laundryItemID kernel.UUID, itemName string, expectedQty int) (*OrderItem, error) {
	item := &OrderItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setLaundryItemID(laundryItemID),
		item.setItemName(itemName),
		item.setExpectedQty(expectedQty),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs a line item from persistence,
// including a previously recorded count.
func RestoreOrderItem(
	id kernel.UUID,
	laundryItemID kernel.UUID,
	itemName string,
	expectedQty int,
	countedQty int,
) (*OrderItem, error) {
	item, err := NewOrderItem(id, laundryItemID, itemName, expectedQty)
	if err != nil {
		return nil, err
	}

	if err = item.SetCounted(countedQty); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was properly constructed.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// LaundryItemID returns the catalog identifier of the laundry item type.
func (i *OrderItem) LaundryItemID() kernel.UUID {
	return i.laundryItemID
}

// ItemName returns the denormalized display name of the laundry item.
func (i *OrderItem) ItemName() string {
	return i.itemName
}

// ExpectedQty returns the quantity declared at intake.
func (i *OrderItem) ExpectedQty() int {
	return i.expectedQty
}

// CountedQty returns the quantity the worker physically counted.
// Zero until reconciliation records a count.
func (i *OrderItem) CountedQty() int {
	return i.countedQty
}

// SetCounted records the physically counted quantity.
// Negative counts are rejected here, at the edit boundary, so invalid input
// never reaches reconciliation.
func (i *OrderItem) SetCounted(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("countedQty",
			fmt.Errorf("%d is not a non-negative count", qty))
	}
	i.countedQty = qty
	return nil
}

// Matches reports whether the counted quantity equals the declared one.
func (i *OrderItem) Matches() bool {
	return i.countedQty == i.expectedQty
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setLaundryItemID(laundryItemID kernel.UUID) error {
	if err := laundryItemID.Validate(); err != nil {
		return err
	}
	i.laundryItemID = laundryItemID
	return nil
}

func (i *OrderItem) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	i.itemName = itemName
	return nil
}

func (i *OrderItem) setExpectedQty(expectedQty int) error {
	if expectedQty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("expectedQty",
			fmt.Errorf("%d is not greater than 0", expectedQty))
	}
	i.expectedQty = expectedQty
	return nil
}
