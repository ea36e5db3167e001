// Package guard provides ConstructorGuard, a zero-size marker embedded in value
// objects, commands and queries to tell constructor-built values apart from
// zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded value
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was created through a constructor.
//
// Example:
//
//	var ErrPointIsNotConstructed = errors.New("GeoPoint must be created via NewGeoPoint")
//
//	type GeoPoint struct {
//	    lat, lon float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (p GeoPoint) Validate() error {
//	    return p.guard.Validate(ErrPointIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
