package pricing

import (
	"errors"
	"fmt"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/errs"
	"rates/internal/pkg/guard"
)

// ErrZonePricingIsNotConstructed indicates that a ZonePricing was not
// initialized through the NewZonePricing constructor.
var ErrZonePricingIsNotConstructed = errors.New("ZonePricing must be created via NewZonePricing constructor")

// ZonePricing is the price row a courier charges for one zone.
// It belongs to exactly one CourierPricing entry and is unique per zone
// within that entry.
//
// Forward pricing is base price plus increments; return (RTO) pricing either
// mirrors the forward formula or uses its own base/increment pair, and in both
// cases the flat RTO charge is added once on top.
//
// All monetary fields are non-negative; a malformed row indicates a bad plan
// snapshot and is rejected at construction.
type ZonePricing struct { //nolint:recvcheck //using for validation
	// zone selects which origin/destination bucket this row prices
	zone kernel.Zone

	// basePrice is the forward charge for the base weight slab
	basePrice float64

	// incrementPrice is the forward charge per extra billing unit
	incrementPrice float64

	// isRTOSameAsForward reuses the forward formula for the return leg
	isRTOSameAsForward bool

	// rtoBasePrice is the return-leg base charge when not mirroring forward
	rtoBasePrice float64

	// rtoIncrementPrice is the return-leg charge per extra billing unit
	rtoIncrementPrice float64

	// flatRTOCharge is a one-time addend applied to every return leg
	flatRTOCharge float64

	guard guard.ConstructorGuard
}

// NewZonePricing creates a price row for the given zone.
// The zone must be valid and every monetary field non-negative.
func NewZonePricing(
	zone kernel.Zone,
	basePrice float64,
	incrementPrice float64,
	isRTOSameAsForward bool,
	rtoBasePrice float64,
	rtoIncrementPrice float64,
	flatRTOCharge float64,
) (ZonePricing, error) {
	zp := ZonePricing{
		isRTOSameAsForward: isRTOSameAsForward,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		zp.setZone(zone),
		zp.setAmount("base price", &zp.basePrice, basePrice),
		zp.setAmount("increment price", &zp.incrementPrice, incrementPrice),
		zp.setAmount("rto base price", &zp.rtoBasePrice, rtoBasePrice),
		zp.setAmount("rto increment price", &zp.rtoIncrementPrice, rtoIncrementPrice),
		zp.setAmount("flat rto charge", &zp.flatRTOCharge, flatRTOCharge),
	); err != nil {
		return ZonePricing{}, err
	}

	return zp, nil
}

// Validate checks that the ZonePricing was created through its constructor.
func (z ZonePricing) Validate() error {
	return z.guard.Validate(ErrZonePricingIsNotConstructed)
}

// Zone returns the zone this row prices.
func (z ZonePricing) Zone() kernel.Zone {
	return z.zone
}

// BasePrice returns the forward charge for the base weight slab.
func (z ZonePricing) BasePrice() float64 {
	return z.basePrice
}

// IncrementPrice returns the forward charge per extra billing unit.
func (z ZonePricing) IncrementPrice() float64 {
	return z.incrementPrice
}

// IsRTOSameAsForward reports whether the return leg reuses the forward formula.
func (z ZonePricing) IsRTOSameAsForward() bool {
	return z.isRTOSameAsForward
}

// RTOBasePrice returns the return-leg base charge.
func (z ZonePricing) RTOBasePrice() float64 {
	return z.rtoBasePrice
}

// RTOIncrementPrice returns the return-leg charge per extra billing unit.
func (z ZonePricing) RTOIncrementPrice() float64 {
	return z.rtoIncrementPrice
}

// FlatRTOCharge returns the one-time addend applied to every return leg.
func (z ZonePricing) FlatRTOCharge() float64 {
	return z.flatRTOCharge
}

func (z *ZonePricing) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	z.zone = zone
	return nil
}

// setAmount validates and assigns a monetary field.
// Negative amounts indicate a malformed plan snapshot.
func (z *ZonePricing) setAmount(name string, field *float64, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%v must not be negative", value))
	}

	*field = value
	return nil
}
