// Package guard implements the constructor-guard pattern used by domain
// value objects and aggregates. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable, so that objects bypassing their designated
// constructor fail validation instead of silently carrying invalid state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether an object was created through its constructor.
// The zero value reports "not constructed"; only NewConstructorGuard produces
// a guard that passes validation.
//
// Example:
//
//	type Plan struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPlan(name string) (Plan, error) {
//	    if name == "" {
//	        return Plan{}, errors.New("name is required")
//	    }
//	    return Plan{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Plan) Validate() error {
//	    return p.guard.Validate(ErrPlanIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was created through its constructor.
// For zero-value guards it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
