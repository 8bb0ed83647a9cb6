package request

import (
	"fmt"

	"launderly/internal/pkg/errs"
)

// Kind distinguishes the two errand kinds a driver can perform.
//
// The distinction matters beyond labeling: pickup and delivery reuse the same
// ON_THE_WAY_* status literals in opposite order, so the transition function is
// always keyed by (Kind, Status).
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	UnknownKind Kind = iota

	// Pickup is an errand collecting laundry from a customer
	// and bringing it to the outlet.
	Pickup

	// Delivery is an errand returning processed laundry
	// from the outlet to the customer.
	Delivery
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "unknown",
		Pickup:      "pickup",
		Delivery:    "delivery",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // UnknownKind is intentionally excluded as it's invalid
	return map[Kind]string{
		Pickup:   "pickup",
		Delivery: "delivery",
	}
}

// KindFromString parses the wire form of a kind ("pickup" or "delivery").
// Returns an error for any other value.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a valid request kind", s))
}

// Validate checks if the Kind value is valid.
// Valid kinds are Pickup and Delivery; UnknownKind (0) and anything else fail.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid request kind", k))
	}
	return nil
}

// String returns the wire form of the kind ("pickup", "delivery")
// or "unknown" for invalid values. Implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
