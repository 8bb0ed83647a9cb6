package request

import (
	"errors"
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest. This ensures all requests
	// are properly validated.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")
)

// Request represents a single pickup or delivery errand: the physical movement
// of laundry between a customer address and an outlet, performed by a driver.
// It is the aggregate root for the driver-facing workflow.
//
// Request follows these invariants:
//   - Must have a valid unique identifier, kind, customer name and address
//   - Status always lies on the path defined for its kind (see NextStatus)
//   - Status only ever moves one legal step at a time via Advance
//   - Every successful advance bumps the version; the version is the
//     optimistic-concurrency token that rejects stale advances
//   - Requests are never deleted, they only terminally reach the final status
//     of their kind's path
type Request struct {
	id           kernel.UUID
	kind         Kind
	status       Status
	customerName string
	address      kernel.Address
	version      int
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewRequest creates a new errand in WaitingForDriver status with version 1.
// All parameters are validated; the customer name must be non-empty.
func NewRequest(id kernel.UUID, kind Kind, customerName string, address kernel.Address) (*Request, error) {
	now := time.Now().UTC()
	r := &Request{
		status:        WaitingForDriver,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setKind(kind),
		r.setCustomerName(customerName),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a Request from persistence without running the
// creation-time defaults. The status is checked against the kind's path so a
// corrupted row cannot produce an aggregate in an impossible state.
func RestoreRequest(
	id kernel.UUID,
	kind Kind,
	status Status,
	customerName string,
	address kernel.Address,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Request, error) {
	r := &Request{
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setKind(kind),
		r.setCustomerName(customerName),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateFor(kind); err != nil {
		return nil, err
	}
	r.status = status

	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	return r, nil
}

// Validate ensures the Request was properly constructed.
// Returns ErrRequestIsNotConstructed otherwise.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by their unique identifiers.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// Kind returns whether the errand is a pickup or a delivery.
func (r *Request) Kind() Kind {
	return r.kind
}

// Status returns the current workflow status.
func (r *Request) Status() Status {
	return r.status
}

// CustomerName returns the name of the customer the errand serves.
func (r *Request) CustomerName() string {
	return r.customerName
}

// Address returns the customer address and its distance from the outlet.
func (r *Request) Address() kernel.Address {
	return r.address
}

// Version returns the optimistic-concurrency token.
// It starts at 1 and increases by one on every successful advance.
func (r *Request) Version() int {
	return r.version
}

// CreatedAt returns when the errand was scheduled.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the errand last changed.
func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

// IsTerminal reports whether the errand has reached the end of its path
// (RECEIVED_BY_OUTLET for pickups, RECEIVED_BY_CUSTOMER for deliveries).
func (r *Request) IsTerminal() bool {
	return r.status.IsTerminalFor(r.kind)
}

// Advance moves the errand exactly one legal step along its kind's path and
// bumps the version. Advancing a terminal request returns an
// InvalidTransitionError and leaves the aggregate untouched.
//
// Example:
//
//	// request is a pickup in WAITING_FOR_DRIVER
//	err := request.Advance()
//	// request.Status() == request.OnTheWayToCustomer, Version() bumped
func (r *Request) Advance() error {
	next, err := NextStatus(r.kind, r.status)
	if err != nil {
		return err
	}

	r.status = next
	r.version++
	r.updatedAt = time.Now().UTC()
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *Request) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	r.customerName = customerName
	return nil
}

func (r *Request) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	r.address = address
	return nil
}
