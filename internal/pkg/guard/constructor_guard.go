// Package guard lets value objects detect that they were built by their
// constructor rather than declared as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, commands and queries.
// Its zero value is "not constructed"; only NewConstructorGuard marks it as built.
//
// Example:
//
//	type Window struct {
//	    days  int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewWindow(days int) Window {
//	    return Window{days: days, guard: guard.NewConstructorGuard()}
//	}
//
//	func (w Window) Validate() error {
//	    return w.guard.Validate(ErrWindowIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
