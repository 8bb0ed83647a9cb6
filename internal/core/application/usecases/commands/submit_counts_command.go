package commands

import (
	"errors"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/errs"
	"launderly/internal/pkg/guard"
)

var (
	ErrSubmitCountsCommandIsNotConstructed = errors.New(
		"SubmitCountsCommand must be created via NewSubmitCountsCommand constructor",
	)
	ErrCountsAreRequired = errors.New("at least one item count is required")
)

// ItemCount is one worker-entered physical count for a line item.
type ItemCount struct {
	OrderItemID kernel.UUID
	CountedQty  int
}

// SubmitCountsCommand records the physical counts an outlet worker entered
// for an order's line items. Counts are reconciled against the declared
// expected quantities after they are applied.
//
// Negative counts never reach the aggregate; they are rejected here, at the
// edit boundary.
type SubmitCountsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	counts  []ItemCount

	guard guard.ConstructorGuard
}

// NewSubmitCountsCommand creates a command carrying physical counts.
// Validates the order ID, requires at least one count, and rejects
// negative quantities.
func NewSubmitCountsCommand(orderID kernel.UUID, counts []ItemCount) (SubmitCountsCommand, error) {
	countsCommand := SubmitCountsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		countsCommand.setOrderID(orderID),
		countsCommand.setCounts(counts),
	); err != nil {
		return SubmitCountsCommand{}, err
	}

	return countsCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCountsCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCountsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being counted.
func (c SubmitCountsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Counts returns the entered physical counts.
func (c SubmitCountsCommand) Counts() []ItemCount {
	return c.counts
}

func (c *SubmitCountsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitCountsCommand) setCounts(counts []ItemCount) error {
	if len(counts) == 0 {
		return ErrCountsAreRequired
	}

	for _, count := range counts {
		if err := count.OrderItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("orderItemId", err)
		}
		if count.CountedQty < 0 {
			return errs.NewValueIsInvalidError("countedQty")
		}
	}

	c.counts = counts
	return nil
}
