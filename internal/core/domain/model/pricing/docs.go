// Package pricing contains the pricing-plan aggregate: a seller's plan with
// per-courier pricing entries and per-zone price rows.
//
// A PricingPlan owns CourierPricing entries (one per courier), and each entry
// owns ZonePricing rows (one per zone the courier serves). The aggregate is
// loaded as an immutable snapshot and handed to the rating services; nothing
// in this package performs I/O or mutation after construction.
package pricing
