// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands to tell constructor-built instances from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built by a constructor.
// The zero value is "not constructed".
//
// Example:
//
//	var ErrFeesNotConstructed = errors.New("Fees must be created via NewFees")
//
//	type Fees struct {
//	    handling float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewFees(handling float64) (Fees, error) {
//	    if handling < 0 {
//	        return Fees{}, errors.New("handling fee cannot be negative")
//	    }
//	    return Fees{handling: handling, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (f Fees) Validate() error {
//	    return f.guard.Validate(ErrFeesNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
