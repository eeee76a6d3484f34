package rate

import (
	"fmt"

	"rates/internal/pkg/errs"
)

// Unit conversion constants.
const (
	gramsPerKilogram    = 1000.0
	centimetersPerInch  = 2.54
)

// WeightUnit is the unit a request's weight is expressed in.
type WeightUnit string

const (
	// WeightUnitKilogram expresses weight in kilograms.
	WeightUnitKilogram WeightUnit = "kg"
	// WeightUnitGram expresses weight in grams.
	WeightUnitGram WeightUnit = "g"
)

// Validate checks if the WeightUnit value is valid.
func (u WeightUnit) Validate() error {
	switch u {
	case WeightUnitKilogram, WeightUnitGram:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("weight unit is invalid",
			fmt.Errorf("%q is not a valid weight unit", string(u)))
	}
}

// ToKilograms converts a weight in this unit to kilograms.
func (u WeightUnit) ToKilograms(value float64) float64 {
	if u == WeightUnitGram {
		return value / gramsPerKilogram
	}
	return value
}

// SizeUnit is the unit a request's box dimensions are expressed in.
type SizeUnit string

const (
	// SizeUnitCentimeter expresses dimensions in centimeters.
	SizeUnitCentimeter SizeUnit = "cm"
	// SizeUnitInch expresses dimensions in inches.
	SizeUnitInch SizeUnit = "in"
)

// Validate checks if the SizeUnit value is valid.
func (u SizeUnit) Validate() error {
	switch u {
	case SizeUnitCentimeter, SizeUnitInch:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("size unit is invalid",
			fmt.Errorf("%q is not a valid size unit", string(u)))
	}
}

// ToCentimeters converts a length in this unit to centimeters.
func (u SizeUnit) ToCentimeters(value float64) float64 {
	if u == SizeUnitInch {
		return value * centimetersPerInch
	}
	return value
}
