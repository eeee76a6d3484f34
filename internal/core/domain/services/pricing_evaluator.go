package services

import (
	"rates/internal/core/domain/model/pricing"
)

// PricingEvaluator is a domain service applying one zone price row to a
// computed increment count, producing the forward and return leg amounts.
//
// Applicability gating happens one level up in the aggregator: a courier with
// a leg flag off is excluded from that leg entirely, never priced at zero
// here. The evaluator assumes a validated price row and therefore cannot
// fail - every field it reads is guaranteed non-negative by construction.
type PricingEvaluator struct{}

// NewPricingEvaluator creates a new PricingEvaluator instance.
func NewPricingEvaluator() PricingEvaluator {
	return PricingEvaluator{}
}

// Forward returns the forward-leg amount: base price plus the per-unit
// increment price for every unit above the slab.
func (e PricingEvaluator) Forward(zonePricing pricing.ZonePricing, increments int) float64 {
	return zonePricing.BasePrice() + float64(increments)*zonePricing.IncrementPrice()
}

// Return returns the return-to-origin amount.
//
// When the row mirrors forward pricing, the forward base/increment pair is
// reused; otherwise the row's own RTO base and increment prices apply. In
// both cases the flat RTO charge is added exactly once on top.
func (e PricingEvaluator) Return(zonePricing pricing.ZonePricing, increments int) float64 {
	if zonePricing.IsRTOSameAsForward() {
		return e.Forward(zonePricing, increments) + zonePricing.FlatRTOCharge()
	}

	return zonePricing.RTOBasePrice() +
		float64(increments)*zonePricing.RTOIncrementPrice() +
		zonePricing.FlatRTOCharge()
}
