package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"rates/internal/core/domain/model/courier"
	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/pricing"
	"rates/internal/core/domain/model/rate"
)

// ErrNoCourierAvailable is the error callers map an empty quote list to
// before presenting it to a user. The calculator itself returns the empty
// list without error - an unserved lane is a valid outcome, not a fault.
var ErrNoCourierAvailable = errors.New("no courier available for this shipment")

// RateCalculator is the quote aggregator: the single entry point of the rate
// and zone pricing engine. Given a request, a pricing plan snapshot and the
// platform's couriers it produces a ranked list of per-courier quotes.
//
// Pipeline per computation:
//  1. resolve the shipping zone once from the pincode pair
//  2. compute the billed weight once from the request measurements
//  3. fan out over the plan's courier entries, each evaluated independently
//  4. fan in, drop skipped couriers, rank the surviving quotes
//
// Couriers are skipped silently when inactive, not applicable to the
// requested leg, or without a price row for the resolved zone - skips reduce
// the candidate set, they are not errors.
//
// The plan and courier snapshots are read-only for the duration of one call,
// which is what makes the per-courier fan-out safe without locks.
//
// Example usage:
//
//	calculator := services.NewRateCalculator()
//	quotes, err := calculator.Calculate(ctx, directory, request, plan, couriers)
//	if err != nil {
//	    // pincode lookup failed or the snapshot is malformed
//	    return err
//	}
//	if len(quotes) == 0 {
//	    return services.ErrNoCourierAvailable
//	}
//	best := quotes[0]
type RateCalculator struct {
	resolver  ZoneResolver
	billing   WeightBillingCalculator
	evaluator PricingEvaluator
	cod       CODCalculator
}

// NewRateCalculator creates a RateCalculator wired with the engine's domain
// services.
func NewRateCalculator() RateCalculator {
	return RateCalculator{
		resolver:  NewZoneResolver(),
		billing:   NewWeightBillingCalculator(),
		evaluator: NewPricingEvaluator(),
		cod:       NewCODCalculator(),
	}
}

// Calculate produces the ranked quote list for a request.
//
// Ranking is ascending by total charge; ties are broken by shorter courier
// pickup time, then by courier identifier, so the order is fully
// deterministic.
//
// Returns an error when either pincode is unresolvable or the plan snapshot
// is malformed; both abort the whole computation since every quote depends on
// zone and billed weight. An empty list with a nil error means no courier
// serves the lane.
func (c RateCalculator) Calculate(
	ctx context.Context,
	directory PincodeDirectory,
	request rate.RateRequest,
	plan *pricing.PricingPlan,
	couriers []*courier.Courier,
) ([]rate.RateQuote, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	couriersByID := make(map[string]*courier.Courier, len(couriers))
	for _, cr := range couriers {
		if err := cr.Validate(); err != nil {
			return nil, err
		}
		couriersByID[cr.ID().String()] = cr
	}

	zone, err := c.resolver.Resolve(ctx, directory, request.PickupPincode(), request.DeliveryPincode())
	if err != nil {
		return nil, err
	}

	billedWeightKg, err := c.billing.BilledWeightKg(request)
	if err != nil {
		return nil, err
	}

	// Fan out one evaluation per plan entry. Each goroutine owns its slot in
	// the results slices, so no synchronization beyond the WaitGroup is
	// needed.
	entries := plan.CourierPricings()
	quotes := make([]*rate.RateQuote, len(entries))
	evalErrs := make([]error, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func(i int, entry *pricing.CourierPricing) {
			defer wg.Done()
			quotes[i], evalErrs[i] = c.evaluate(request, zone, billedWeightKg, entry, couriersByID)
		}(i, entry)
	}
	wg.Wait()

	if err = errors.Join(evalErrs...); err != nil {
		return nil, err
	}

	ranked := make([]rate.RateQuote, 0, len(entries))
	for _, quote := range quotes {
		if quote != nil {
			ranked = append(ranked, *quote)
		}
	}

	sort.Slice(ranked, func(a, b int) bool {
		left, right := ranked[a], ranked[b]
		if left.TotalCharge() != right.TotalCharge() {
			return left.TotalCharge() < right.TotalCharge()
		}

		leftPickup := couriersByID[left.CourierID().String()].PickupTime()
		rightPickup := couriersByID[right.CourierID().String()].PickupTime()
		if leftPickup != rightPickup {
			return leftPickup < rightPickup
		}

		return left.CourierID().String() < right.CourierID().String()
	})

	return ranked, nil
}

// evaluate prices one plan entry against the request.
// A nil quote with a nil error means the courier was skipped.
func (c RateCalculator) evaluate(
	request rate.RateRequest,
	zone kernel.Zone,
	billedWeightKg float64,
	entry *pricing.CourierPricing,
	couriersByID map[string]*courier.Courier,
) (*rate.RateQuote, error) {
	cr, ok := couriersByID[entry.CourierID().String()]
	if !ok || !cr.IsActive() {
		return nil, nil
	}

	if request.IsReverseOrder() {
		if !entry.IsRTOApplicable() {
			return nil, nil
		}
	} else {
		if !entry.IsForwardApplicable() || cr.IsReturnOnly() {
			return nil, nil
		}
	}

	zonePricing, ok := entry.ZonePricingFor(zone)
	if !ok {
		return nil, nil
	}

	increments, err := c.billing.Increments(billedWeightKg, entry.WeightSlab(), entry.IncrementWeight())
	if err != nil {
		return nil, err
	}

	forwardCharge := c.evaluator.Forward(zonePricing, increments)

	var rtoCharge float64
	if request.IsReverseOrder() {
		rtoCharge = c.evaluator.Return(zonePricing, increments)
	}

	codCharge := c.cod.Calculate(request, entry)

	quote, err := rate.NewRateQuote(cr.ID(), cr.Name(), zone, billedWeightKg, forwardCharge, rtoCharge, codCharge)
	if err != nil {
		return nil, err
	}

	return &quote, nil
}
