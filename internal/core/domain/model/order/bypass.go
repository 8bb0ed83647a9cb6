package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/errs"
)

// ErrBypassRequestIsNotConstructed is returned when a BypassRequest was not
// created through NewBypassRequest or RestoreBypassRequest.
var ErrBypassRequestIsNotConstructed = errors.New(
	"BypassRequest must be created via NewBypassRequest or RestoreBypassRequest constructor")

// BypassStatus represents the two-party approval state of a bypass request:
// the worker raises it as pending, an admin resolves it to approved or
// rejected. Approved and rejected are final.
type BypassStatus int

const (
	// BypassUnknown represents an invalid or undefined bypass status.
	BypassUnknown BypassStatus = iota

	// BypassPending means the bypass awaits an admin decision.
	BypassPending

	// BypassApproved means an admin signed off on processing despite the
	// count mismatch.
	BypassApproved

	// BypassRejected means an admin refused the bypass; the order stays
	// blocked until counts are corrected.
	BypassRejected
)

func getBypassStatusStrings() map[BypassStatus]string {
	return map[BypassStatus]string{
		BypassUnknown:  "UNKNOWN",
		BypassPending:  "PENDING",
		BypassApproved: "APPROVED",
		BypassRejected: "REJECTED",
	}
}

// Validate checks if the BypassStatus value is valid.
func (s BypassStatus) Validate() error {
	if s != BypassPending && s != BypassApproved && s != BypassRejected {
		return errs.NewValueIsInvalidErrorWithCause("bypassStatus",
			fmt.Errorf("%d is not a valid bypass status", s))
	}
	return nil
}

// String returns the wire form of the bypass status ("PENDING", "APPROVED",
// "REJECTED") or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s BypassStatus) String() string {
	if str, ok := getBypassStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// BypassRequest is an exception-approval record raised by a worker when the
// physical count does not match the declared quantities. It belongs to its
// Order aggregate; the Order enforces that at most one request is open at a
// time.
type BypassRequest struct {
	id            kernel.UUID
	orderWorkerID kernel.UUID
	note          string
	status        BypassStatus
	createdAt     time.Time

	isConstructed bool
}

// NewBypassRequest creates a pending bypass request.
// The note must be non-empty after trimming; it is how the worker explains the
// discrepancy to the reviewing admin.
func NewBypassRequest(id kernel.UUID, orderWorkerID kernel.UUID, note string) (*BypassRequest, error) {
	b := &BypassRequest{
		status:        BypassPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderWorkerID(orderWorkerID),
		b.setNote(note),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBypassRequest reconstructs a bypass request from persistence.
func RestoreBypassRequest(
	id kernel.UUID,
	orderWorkerID kernel.UUID,
	note string,
	status BypassStatus,
	createdAt time.Time,
) (*BypassRequest, error) {
	b, err := NewBypassRequest(id, orderWorkerID, note)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	b.status = status
	b.createdAt = createdAt

	return b, nil
}

// Validate ensures the bypass request was properly constructed.
func (b *BypassRequest) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBypassRequestIsNotConstructed
	}
	return nil
}

// ID returns the bypass request's unique identifier.
func (b *BypassRequest) ID() kernel.UUID {
	return b.id
}

// OrderWorkerID returns the worker-order linkage being contested.
func (b *BypassRequest) OrderWorkerID() kernel.UUID {
	return b.orderWorkerID
}

// Note returns the worker's explanation of the discrepancy.
func (b *BypassRequest) Note() string {
	return b.note
}

// Status returns the current approval state.
func (b *BypassRequest) Status() BypassStatus {
	return b.status
}

// CreatedAt returns when the bypass was raised.
func (b *BypassRequest) CreatedAt() time.Time {
	return b.createdAt
}

// IsOpen reports whether the request still awaits an admin decision.
func (b *BypassRequest) IsOpen() bool {
	return b.status == BypassPending
}

// Approve resolves a pending request in the worker's favor.
func (b *BypassRequest) Approve() error {
	return b.resolve(BypassApproved)
}

// Reject resolves a pending request against the worker.
func (b *BypassRequest) Reject() error {
	return b.resolve(BypassRejected)
}

func (b *BypassRequest) resolve(to BypassStatus) error {
	if b.status != BypassPending {
		return errs.NewValueIsInvalidErrorWithCause("bypassStatus",
			fmt.Errorf("%s is not a resolvable bypass status", b.status.String()))
	}
	b.status = to
	return nil
}

func (b *BypassRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *BypassRequest) setOrderWorkerID(orderWorkerID kernel.UUID) error {
	if err := orderWorkerID.Validate(); err != nil {
		return err
	}
	b.orderWorkerID = orderWorkerID
	return nil
}

func (b *BypassRequest) setNote(note string) error {
	if strings.TrimSpace(note) == "" {
		return errs.NewValueIsRequiredError("bypassNote")
	}
	b.note = note
	return nil
}
