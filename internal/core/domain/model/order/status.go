package order

import (
	"fmt"

	"launderly/internal/pkg/errs"
)

// Status represents the coarse outlet/worker-facing lifecycle of an order.
//
// State transitions:
//
//	ArrivedAtOutlet ──> Pending ──> Processing ──> Completed
//	       │               │
//	       └───> Cancelled <┘
//
// ArrivedAtOutlet is the only state from which intake (attaching items and
// weight) may happen. Pending is the reconciliation phase; leaving it via
// Process is gated by the aggregate, not by the status machine alone.
// Completed and Cancelled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// ArrivedAtOutlet is the initial status, set when the pickup errand
	// reaches outlet custody. The order has no items yet.
	ArrivedAtOutlet

	// Pending means intake is done and the order awaits reconciliation
	// and processing by a worker.
	Pending

	// Processing means the laundry is being washed.
	Processing

	// Completed means the laundry is processed and ready for delivery.
	Completed

	// Cancelled means the order was abandoned before processing started.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		ArrivedAtOutlet: "ARRIVED_AT_OUTLET",
		Pending:         "PENDING",
		Processing:      "PROCESSING",
		Completed:       "COMPLETED",
		Cancelled:       "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		ArrivedAtOutlet: "ARRIVED_AT_OUTLET",
		Pending:         "PENDING",
		Processing:      "PROCESSING",
		Completed:       "COMPLETED",
		Cancelled:       "CANCELLED",
	}
}

// StatusFromString parses the wire form of an order status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("orderStatus",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-vocabulary values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire form of the status (e.g. "ARRIVED_AT_OUTLET")
// or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Intake transitions the status out of ArrivedAtOutlet into Pending.
// Any other current status is an invalid transition.
func (s Status) Intake() (Status, error) {
	if s != ArrivedAtOutlet {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s is not a valid status for intake", s.String()))
	}
	return Pending, nil
}

// Process transitions the status from Pending to Processing.
func (s Status) Process() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s is not a valid status to process", s.String()))
	}
	return Processing, nil
}

// Complete transitions the status from Processing to Completed.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s is not a valid status to complete", s.String()))
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Only orders that have not started processing can be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != ArrivedAtOutlet && s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s is not a valid status to cancel", s.String()))
	}
	return Cancelled, nil
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}
