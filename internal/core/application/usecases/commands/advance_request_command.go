package commands

import (
	"errors"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/request"
	"launderly/internal/pkg/errs"
	"launderly/internal/pkg/guard"
)

var ErrAdvanceRequestCommandIsNotConstructed = errors.New(
	"AdvanceRequestCommand must be created via NewAdvanceRequestCommand constructor",
)

// AdvanceRequestCommand moves a pickup or delivery errand one step forward
// along its kind-specific status path. The caller declares which kind it
// believes it is advancing; a mismatch is rejected rather than silently
// advancing the wrong workflow.
//
// ExpectedVersion carries the version the caller last observed. Zero means
// the caller opts out of the staleness check.
//
// Example:
//
//	cmd, err := NewAdvanceRequestCommand(requestID, request.Pickup, 3)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAdvanceRequestCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrVersionConflict) {
//	    // caller acted on stale state, refetch and retry
//	}
type AdvanceRequestCommand struct { //nolint:recvcheck //using for validation
	requestID       kernel.UUID
	kind            request.Kind
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewAdvanceRequestCommand creates a command to advance an errand.
// Validates the request ID and kind; expectedVersion must not be negative.
func NewAdvanceRequestCommand(
	requestID kernel.UUID,
	kind request.Kind,
	expectedVersion int,
) (AdvanceRequestCommand, error) {
	advanceCommand := AdvanceRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setRequestID(requestID),
		advanceCommand.setKind(kind),
		advanceCommand.setExpectedVersion(expectedVersion),
	); err != nil {
		return AdvanceRequestCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceRequestCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the errand to advance.
func (c AdvanceRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Kind returns the errand kind the caller expects to advance.
func (c AdvanceRequestCommand) Kind() request.Kind {
	return c.kind
}

// ExpectedVersion returns the version the caller last observed, or zero
// when the staleness check is skipped.
func (c AdvanceRequestCommand) ExpectedVersion() int {
	return c.expectedVersion
}

func (c *AdvanceRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *AdvanceRequestCommand) setKind(kind request.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AdvanceRequestCommand) setExpectedVersion(expectedVersion int) error {
	if expectedVersion < 0 {
		return errs.NewValueIsInvalidError("expectedVersion")
	}

	c.expectedVersion = expectedVersion
	return nil
}
