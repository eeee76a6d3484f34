package kernel

import (
	"errors"

	"rates/internal/pkg/errs"
	"rates/internal/pkg/guard"
)

// pincodeLength is the number of digits in a valid Indian postal code.
const pincodeLength = 6

var (
	// ErrPincodeIsNotConstructed is returned when attempting to use an
	// improperly initialized Pincode. Pincodes must be created via NewPincode.
	ErrPincodeIsNotConstructed = errs.NewValueIsRequiredError(
		"pincode must be created via NewPincode constructor")

	// ErrPincodeIsInvalid is returned when the supplied value is not a
	// 6-digit postal code.
	ErrPincodeIsInvalid = errs.NewValueIsInvalidError("pincode")
)

// Pincode is an immutable value object representing a 6-digit postal code.
// It identifies the pickup and delivery endpoints of a shipment and is the
// key into the pincode directory that supplies city, state and metro data.
//
// The zero value is invalid and fails validation - use NewPincode.
//
// Example:
//
//	origin, err := kernel.NewPincode("560001")
//	if err != nil {
//	    // handle validation error
//	}
type Pincode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPincode creates a Pincode from its string form.
// The value must be exactly six ASCII digits; anything else fails with
// ErrPincodeIsInvalid, and an empty string fails with a required-value error.
func NewPincode(value string) (Pincode, error) {
	pincode := Pincode{
		guard: guard.NewConstructorGuard(),
	}

	if err := pincode.setValue(value); err != nil {
		return Pincode{}, err
	}

	return pincode, nil
}

// Validate checks that the Pincode was created through NewPincode.
// The zero value fails with ErrPincodeIsNotConstructed.
func (p Pincode) Validate() error {
	return p.guard.Validate(ErrPincodeIsNotConstructed)
}

// String returns the 6-digit postal code.
// Implements the fmt.Stringer interface.
func (p Pincode) String() string {
	return p.value
}

// IsEqual compares two pincodes for equality by value.
// Both pincodes must be properly constructed for the comparison to succeed.
func (p Pincode) IsEqual(other Pincode) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.value == other.value, nil
}

func (p *Pincode) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("pincode")
	}

	if len(value) != pincodeLength {
		return ErrPincodeIsInvalid
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return ErrPincodeIsInvalid
		}
	}

	p.value = value
	return nil
}

// PincodeInfo is the directory record for one pincode: the city and state it
// belongs to and whether it lies in a metro service area. Instances are
// supplied by the pincode directory collaborator and are read-only.
type PincodeInfo struct { //nolint:recvcheck //using for validation
	city    string
	state   string
	isMetro bool
	guard   guard.ConstructorGuard
}

// ErrPincodeInfoIsNotConstructed is returned when using an improperly
// initialized PincodeInfo.
var ErrPincodeInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"pincode info must be created via NewPincodeInfo constructor")

// NewPincodeInfo creates a directory record with the given city, state and
// metro flag. City and state must be non-empty.
func NewPincodeInfo(city string, state string, isMetro bool) (PincodeInfo, error) {
	info := PincodeInfo{
		isMetro: isMetro,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(info.setCity(city), info.setState(state)); err != nil {
		return PincodeInfo{}, err
	}

	return info, nil
}

// Validate checks that the PincodeInfo was created through NewPincodeInfo.
func (i PincodeInfo) Validate() error {
	return i.guard.Validate(ErrPincodeInfoIsNotConstructed)
}

// City returns the city the pincode belongs to.
func (i PincodeInfo) City() string {
	return i.city
}

// State returns the state the pincode belongs to.
func (i PincodeInfo) State() string {
	return i.state
}

// IsMetro reports whether the pincode lies in a metro service area.
func (i PincodeInfo) IsMetro() bool {
	return i.isMetro
}

func (i *PincodeInfo) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	i.city = city
	return nil
}

func (i *PincodeInfo) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}

	i.state = state
	return nil
}
