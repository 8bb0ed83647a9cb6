package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"launderly/internal/pkg/errs"
	"launderly/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a customer address served by an outlet, together with the
// road distance between the two. It is an immutable value object: the zero
// value is invalid and fails validation, so instances must be created through
// NewAddress.
//
// Distance is used for driver dispatch and fare calculation; it must be a
// finite, non-negative number of kilometers.
//
// Example:
//
//	addr, err := kernel.NewAddress("12 Musgrave Rd", 3.4)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(addr.Line(), addr.DistanceKm())
type Address struct { //nolint:recvcheck //using for validation
	line       string
	distanceKm float64
	guard      guard.ConstructorGuard
}

// NewAddress creates a validated Address.
// The address line must be non-empty after trimming and the distance must be a
// finite value greater than or equal to zero kilometers.
func NewAddress(line string, distanceKm float64) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setLine(line), addr.setDistanceKm(distanceKm)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was created through NewAddress.
// Returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Line returns the street address line.
func (a Address) Line() string {
	return a.line
}

// DistanceKm returns the distance from the outlet in kilometers.
func (a Address) DistanceKm() float64 {
	return a.distanceKm
}

// IsEqual reports whether two addresses have the same line and distance.
func (a Address) IsEqual(other Address) bool {
	return a.line == other.line && a.distanceKm == other.distanceKm
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return fmt.Sprintf("%s (%.2f km)", a.line, a.distanceKm)
}

func (a *Address) setLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return errs.NewValueIsRequiredError("address line")
	}
	a.line = line
	return nil
}

func (a *Address) setDistanceKm(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%v is not a finite non-negative distance", distanceKm))
	}
	a.distanceKm = distanceKm
	return nil
}
