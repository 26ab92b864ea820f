// Package guard provides the ConstructorGuard defensive-construction pattern
// used by commands, queries, and value objects throughout the application.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so objects that bypassed their constructor fail validation
// instead of carrying unvalidated state into the core.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value fails Validate, which is the entire point:
// a struct literal that skipped the constructor is distinguishable from
// a properly built one.
//
// Example:
//
//	type ApproveVersionCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewApproveVersionCommand(orderID kernel.UUID) (ApproveVersionCommand, error) {
//	    // ... validation ...
//	    return ApproveVersionCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ApproveVersionCommand) Validate() error {
//	    return c.guard.Validate(ErrApproveVersionCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// guards it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
