package services

import (
	"fmt"
	"math"

	"rates/internal/core/domain/model/rate"
	"rates/internal/pkg/errs"
)

// volumetricDivisor converts a box volume in cubic centimeters into a
// volumetric weight in kilograms. 5000 is the industry-standard divisor.
const volumetricDivisor = 5000.0

// incrementEpsilon absorbs float artifacts in the increment division so a
// billed weight exactly on a slab boundary never consumes a phantom unit,
// while a genuine overshoot of 0.01 kg still rounds up to a full increment.
const incrementEpsilon = 1e-9

// WeightBillingCalculator is a domain service converting a request's physical
// measurements into the billable weight and the discrete number of pricing
// increments a courier charges above its base slab.
//
// Both results are pure functions of their inputs. The billed weight depends
// only on the request, so the aggregator computes it once and shares it across
// couriers; increments depend on each courier's slab and step, so they are
// computed per courier.
type WeightBillingCalculator struct{}

// NewWeightBillingCalculator creates a new WeightBillingCalculator instance.
func NewWeightBillingCalculator() WeightBillingCalculator {
	return WeightBillingCalculator{}
}

// BilledWeightKg computes the billable weight of a request in kilograms.
//
// The actual weight is normalized to kilograms, the box dimensions to
// centimeters, and the volumetric weight derived as L*W*H / 5000. The billed
// weight is the greater of the two: couriers charge for the space a light but
// bulky parcel occupies.
//
// The result is monotonically non-decreasing in weight and in each dimension.
func (w WeightBillingCalculator) BilledWeightKg(request rate.RateRequest) (float64, error) {
	if err := request.Validate(); err != nil {
		return 0, err
	}

	length, width, height := request.DimensionsInCm()
	volumetricKg := length * width * height / volumetricDivisor

	return math.Max(request.WeightInKg(), volumetricKg), nil
}

// Increments computes how many charge units the billed weight consumes above
// the courier's base weight slab.
//
// A billed weight within the slab costs zero increments. Above it, partial
// increments always round up: a shipment 0.01 kg over a threshold consumes a
// full increment.
//
// Fails when the billed weight is not positive or the increment weight step
// is not strictly positive - a zero step indicates a malformed plan.
func (w WeightBillingCalculator) Increments(
	billedWeightKg float64,
	weightSlabKg float64,
	incrementWeightKg float64,
) (int, error) {
	if billedWeightKg <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("billed weight",
			fmt.Errorf("%v must be greater than zero", billedWeightKg))
	}

	if incrementWeightKg <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("increment weight",
			fmt.Errorf("%v must be greater than zero", incrementWeightKg))
	}

	if billedWeightKg <= weightSlabKg {
		return 0, nil
	}

	units := (billedWeightKg - weightSlabKg) / incrementWeightKg
	return int(math.Ceil(units - incrementEpsilon)), nil
}
