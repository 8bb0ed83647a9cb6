package commands

import (
	"errors"
	"strings"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/guard"
)

var (
	ErrRaiseBypassCommandIsNotConstructed = errors.New(
		"RaiseBypassCommand must be created via NewRaiseBypassCommand constructor",
	)
	ErrBypassNoteIsRequired = errors.New("bypass note is required")
)

// RaiseBypassCommand asks an admin to approve processing an order whose
// physical counts disagree with the declared manifest. The note explains the
// discrepancy and must not be blank.
type RaiseBypassCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	orderWorkerID kernel.UUID
	note          string

	guard guard.ConstructorGuard
}

// NewRaiseBypassCommand creates a command to open a bypass request.
// The note is trimmed; a blank note is rejected.
func NewRaiseBypassCommand(orderID, orderWorkerID kernel.UUID, note string) (RaiseBypassCommand, error) {
	bypassCommand := RaiseBypassCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bypassCommand.setOrderID(orderID),
		bypassCommand.setOrderWorkerID(orderWorkerID),
		bypassCommand.setNote(note),
	); err != nil {
		return RaiseBypassCommand{}, err
	}

	return bypassCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseBypassCommand) Validate() error {
	return c.guard.Validate(ErrRaiseBypassCommandIsNotConstructed)
}

// OrderID returns the identifier of the mismatched order.
func (c RaiseBypassCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderWorkerID returns the identifier of the worker raising the bypass.
func (c RaiseBypassCommand) OrderWorkerID() kernel.UUID {
	return c.orderWorkerID
}

// Note returns the trimmed explanation for the discrepancy.
func (c RaiseBypassCommand) Note() string {
	return c.note
}

func (c *RaiseBypassCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RaiseBypassCommand) setOrderWorkerID(orderWorkerID kernel.UUID) error {
	if err := orderWorkerID.Validate(); err != nil {
		return err
	}

	c.orderWorkerID = orderWorkerID
	return nil
}

func (c *RaiseBypassCommand) setNote(note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return ErrBypassNoteIsRequired
	}

	c.note = note
	return nil
}
