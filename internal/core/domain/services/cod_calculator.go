package services

import (
	"math"

	"rates/internal/core/domain/model/pricing"
	"rates/internal/core/domain/model/rate"
)

// codPercentDivisor converts a percentage fee into a fraction of the
// collectable amount.
const codPercentDivisor = 100.0

// CODCalculator is a domain service computing the cash-on-delivery surcharge
// of one courier for one request.
//
// The surcharge compensates the courier for cash handling and is borne by the
// seller. It applies only when the request is COD and the courier's pricing
// entry allows COD; in every other case the charge is zero, never an error.
type CODCalculator struct{}

// NewCODCalculator creates a new CODCalculator instance.
func NewCODCalculator() CODCalculator {
	return CODCalculator{}
}

// Calculate returns the COD surcharge for the request under the given
// courier pricing entry.
//
// The charge is the greater of the fixed fee and the percentage fee on the
// collectable amount:
//
//	max(codChargeFixed, collectableAmount * codChargePercent / 100)
//
// Prepaid requests and couriers without COD applicability are charged zero.
func (c CODCalculator) Calculate(request rate.RateRequest, courierPricing *pricing.CourierPricing) float64 {
	if !request.PaymentType().IsCOD() || !courierPricing.IsCODApplicable() {
		return 0
	}

	percentFee := request.CollectableAmount() * courierPricing.CODChargePercent() / codPercentDivisor
	return math.Max(courierPricing.CODChargeFixed(), percentFee)
}
