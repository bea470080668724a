// Package guard implements the constructor-guard pattern used by commands and
// value objects across the application. Embedding a ConstructorGuard in a
// struct makes a zero-value instance distinguishable from one created through
// its designated constructor, so Validate methods can reject objects that
// bypassed construction-time validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by Validate when
// no specific validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing object passed through a
// constructor. The zero value is unconstructed.
//
// Example:
//
//	type Plate struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPlate(raw string) (Plate, error) {
//	    // validation...
//	    return Plate{value: normalized, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Plate) Validate() error {
//	    return p.guard.Validate(ErrPlateIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the enclosing object was built through its
// constructor, otherwise the supplied validation error (or
// ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
