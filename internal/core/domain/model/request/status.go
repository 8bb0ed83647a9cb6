package request

import (
	"fmt"

	"launderly/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup or delivery errand.
//
// The two kinds follow strictly ordered paths that share literals but not
// order:
//
//	pickup:   WAITING_FOR_DRIVER -> ON_THE_WAY_TO_CUSTOMER -> ON_THE_WAY_TO_OUTLET -> RECEIVED_BY_OUTLET
//	delivery: WAITING_FOR_DRIVER -> ON_THE_WAY_TO_OUTLET -> ON_THE_WAY_TO_CUSTOMER -> RECEIVED_BY_CUSTOMER
//
// Because ON_THE_WAY_TO_OUTLET and ON_THE_WAY_TO_CUSTOMER appear in both paths
// in reversed order, a flat status-keyed lookup would silently conflate the
// two workflows. All transition queries therefore go through NextStatus, which
// is keyed by (Kind, Status).
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// WaitingForDriver is the initial status of every errand: it has been
	// scheduled but no driver has started working on it.
	WaitingForDriver

	// OnTheWayToCustomer means the driver is heading to the customer address.
	// First leg of a pickup, last leg of a delivery.
	OnTheWayToCustomer

	// OnTheWayToOutlet means the driver is heading to the outlet.
	// Second leg of a pickup, first leg of a delivery.
	OnTheWayToOutlet

	// ReceivedByOutlet is the terminal status of the pickup path:
	// the laundry is in outlet custody and order intake can begin.
	ReceivedByOutlet

	// ReceivedByCustomer is the terminal status of the delivery path:
	// the processed laundry is back with the customer.
	ReceivedByCustomer
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:      "UNKNOWN",
		WaitingForDriver:   "WAITING_FOR_DRIVER",
		OnTheWayToCustomer: "ON_THE_WAY_TO_CUSTOMER",
		OnTheWayToOutlet:   "ON_THE_WAY_TO_OUTLET",
		ReceivedByOutlet:   "RECEIVED_BY_OUTLET",
		ReceivedByCustomer: "RECEIVED_BY_CUSTOMER",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		WaitingForDriver:   "WAITING_FOR_DRIVER",
		OnTheWayToCustomer: "ON_THE_WAY_TO_CUSTOMER",
		OnTheWayToOutlet:   "ON_THE_WAY_TO_OUTLET",
		ReceivedByOutlet:   "RECEIVED_BY_OUTLET",
		ReceivedByCustomer: "RECEIVED_BY_CUSTOMER",
	}
}

// getTransitions returns the complete transition table of the driver workflow.
// A (kind, status) pair absent from the table has no legal next status.
func getTransitions() map[Kind]map[Status]Status {
	return map[Kind]map[Status]Status{
		Pickup: {
			WaitingForDriver:   OnTheWayToCustomer,
			OnTheWayToCustomer: OnTheWayToOutlet,
			OnTheWayToOutlet:   ReceivedByOutlet,
		},
		Delivery: {
			WaitingForDriver:   OnTheWayToOutlet,
			OnTheWayToOutlet:   OnTheWayToCustomer,
			OnTheWayToCustomer: ReceivedByCustomer,
		},
	}
}

// NextStatus returns the single legal status following current for the given
// kind. It is pure and total over the defined workflow: for a terminal status,
// an unknown status, or an invalid kind it returns an InvalidTransitionError
// rather than echoing the current status back.
//
// Example:
//
//	next, err := request.NextStatus(request.Pickup, request.WaitingForDriver)
//	// next == request.OnTheWayToCustomer
func NextStatus(kind Kind, current Status) (Status, error) {
	if err := kind.Validate(); err != nil {
		return UnknownStatus, errs.NewInvalidTransitionErrorWithCause(kind.String(), current.String(), err)
	}

	next, ok := getTransitions()[kind][current]
	if !ok {
		return UnknownStatus, errs.NewInvalidTransitionError(kind.String(), current.String())
	}

	return next, nil
}

// TerminalStatus returns the final status of the given kind's path:
// ReceivedByOutlet for pickups, ReceivedByCustomer for deliveries.
func TerminalStatus(kind Kind) (Status, error) {
	switch kind {
	case Pickup:
		return ReceivedByOutlet, nil
	case Delivery:
		return ReceivedByCustomer, nil
	default:
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid request kind", kind))
	}
}

// StatusFromString parses the wire form of a status (e.g. "WAITING_FOR_DRIVER").
// Returns an error for any other value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid request status", s))
}

// Validate checks if the Status value is valid for either kind.
// UnknownStatus (0) and out-of-vocabulary values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateFor checks that the status belongs to the given kind's path.
// A pickup can never be RECEIVED_BY_CUSTOMER and a delivery can never be
// RECEIVED_BY_OUTLET; catching that here keeps restored aggregates honest.
func (s Status) ValidateFor(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	if _, onPath := getTransitions()[kind][s]; onPath {
		return nil
	}
	if terminal, err := TerminalStatus(kind); err == nil && s == terminal {
		return nil
	}

	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%s is not a valid status for kind %s", s.String(), kind.String()))
}

// IsTerminalFor reports whether the status ends the given kind's path.
// Terminal statuses admit no further driver-triggered advance.
func (s Status) IsTerminalFor(kind Kind) bool {
	terminal, err := TerminalStatus(kind)
	return err == nil && s == terminal
}

// String returns the wire form of the status (e.g. "RECEIVED_BY_OUTLET")
// or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
