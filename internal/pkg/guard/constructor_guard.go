// Package guard provides a defensive construction marker for domain objects.
//
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was produced by its designated constructor or left as a zero
// value. Commands, queries and entities use this to refuse operating on
// objects that skipped validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply a more specific error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value is "not constructed" and fails validation.
//
// Example:
//
//	type RaiseBypassCommand struct {
//	    note  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRaiseBypassCommand(note string) (RaiseBypassCommand, error) {
//	    if note == "" {
//	        return RaiseBypassCommand{}, errors.New("note is required")
//	    }
//	    return RaiseBypassCommand{note: note, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RaiseBypassCommand) Validate() error {
//	    return c.guard.Validate(ErrRaiseBypassCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built via its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
