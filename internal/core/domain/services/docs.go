// Package services contains the rate and zone pricing engine: stateless
// domain services that turn a rate request, a pricing plan snapshot and the
// courier list into a ranked set of per-courier quotes.
//
// Services:
//   - ZoneResolver: classifies a pincode pair into a shipping zone
//   - WeightBillingCalculator: billed weight and pricing increments
//   - PricingEvaluator: forward and return amounts from a zone price row
//   - CODCalculator: cash-on-delivery surcharge
//   - RateCalculator: per-courier fan-out, filtering and ranking
//
// Every service is a pure function over immutable inputs; the only I/O is
// the pincode directory read behind the PincodeDirectory interface. Identical
// inputs always produce an identical quote list, which is what lets order
// creation, bulk shipping and the rate calculator share one engine.
package services
