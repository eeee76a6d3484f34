package pricing

import (
	"errors"
	"fmt"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/errs"
	"rates/internal/pkg/guard"
)

// Domain errors for courier pricing operations.
var (
	// ErrCourierPricingIsNotConstructed is returned when using an improperly
	// initialized CourierPricing.
	ErrCourierPricingIsNotConstructed = errors.New(
		"CourierPricing must be created via NewCourierPricing constructor")
	// ErrIncrementWeightIsInvalid is returned when the increment weight step
	// is not strictly positive. A zero step would make incremental billing
	// divide by zero.
	ErrIncrementWeightIsInvalid = errs.NewValueIsInvalidError("increment weight must be greater than zero")
	// ErrZoneAlreadyPriced is returned when adding a second price row for a
	// zone that already has one.
	ErrZoneAlreadyPriced = errors.New("zone already has a price row for this courier")
)

// CourierPricing holds one courier's pricing configuration inside a plan.
// It belongs to exactly one (plan, courier) pair and owns the per-zone price
// rows for that courier.
//
// The weight slab is the base weight bucket covered by a zone row's base
// price; anything above it is billed in incrementWeight-sized units. The
// applicability flags gate which legs (forward, RTO, COD, COD reversal) the
// courier may be quoted for - a courier with a flag off is excluded from that
// leg entirely, not priced at zero.
//
// A zone with no price row means the courier does not serve that zone; that
// is a silent exclusion, not an error.
type CourierPricing struct { //nolint:recvcheck //using for validation
	// courierID identifies the courier this entry prices
	courierID kernel.UUID

	// weightSlab is the base weight bucket in kg included in the base price
	weightSlab float64

	// incrementWeight is the billing step in kg above the slab, always > 0
	incrementWeight float64

	// incrementPrice is the plan-level default charge per extra unit,
	// shown on rate cards; zone rows carry the effective per-zone price
	incrementPrice float64

	// codChargeFixed is the fixed cash-handling fee for COD shipments
	codChargeFixed float64

	// codChargePercent is the percentage fee on the collectable amount
	codChargePercent float64

	// applicability flags per leg
	isForwardApplicable     bool
	isRTOApplicable         bool
	isCODApplicable         bool
	isCODReversalApplicable bool

	// zonePricings holds the per-zone price rows, unique per zone
	zonePricings []ZonePricing

	guard guard.ConstructorGuard
}

// NewCourierPricing creates a pricing entry for one courier.
//
// Parameters:
//   - courierID: the courier this entry prices (must be a valid UUID)
//   - weightSlab: base weight bucket in kg (must not be negative)
//   - incrementWeight: billing step in kg (must be > 0)
//   - incrementPrice: default charge per extra unit (must not be negative)
//   - codChargeFixed, codChargePercent: COD surcharge parameters (must not be negative)
//   - forward, rto, cod, codReversal: leg applicability flags
//
// Zone rows are attached afterwards with AddZonePricing.
func NewCourierPricing(
	courierID kernel.UUID,
	weightSlab float64,
	incrementWeight float64,
	incrementPrice float64,
	codChargeFixed float64,
	codChargePercent float64,
	forward bool,
	rto bool,
	cod bool,
	codReversal bool,
) (*CourierPricing, error) {
	cp := &CourierPricing{
		isForwardApplicable:     forward,
		isRTOApplicable:         rto,
		isCODApplicable:         cod,
		isCODReversalApplicable: codReversal,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cp.setCourierID(courierID),
		cp.setWeightSlab(weightSlab),
		cp.setIncrementWeight(incrementWeight),
		cp.setAmount("increment price", &cp.incrementPrice, incrementPrice),
		cp.setAmount("cod charge fixed", &cp.codChargeFixed, codChargeFixed),
		cp.setAmount("cod charge percent", &cp.codChargePercent, codChargePercent),
	); err != nil {
		return nil, err
	}

	return cp, nil
}

// RestoreCourierPricing reconstructs a CourierPricing entry from persistent
// storage, including its zone price rows. The restored entry behaves
// identically to one built through NewCourierPricing + AddZonePricing.
func RestoreCourierPricing(
	courierID kernel.UUID,
	weightSlab float64,
	incrementWeight float64,
	incrementPrice float64,
	codChargeFixed float64,
	codChargePercent float64,
	forward bool,
	rto bool,
	cod bool,
	codReversal bool,
	zonePricings []ZonePricing,
) (*CourierPricing, error) {
	cp, err := NewCourierPricing(
		courierID,
		weightSlab,
		incrementWeight,
		incrementPrice,
		codChargeFixed,
		codChargePercent,
		forward,
		rto,
		cod,
		codReversal,
	)
	if err != nil {
		return nil, err
	}

	for _, zp := range zonePricings {
		if err = cp.AddZonePricing(zp); err != nil {
			return nil, err
		}
	}

	return cp, nil
}

// Validate checks that the CourierPricing was created through its constructor.
func (c *CourierPricing) Validate() error {
	if c == nil {
		return ErrCourierPricingIsNotConstructed
	}
	return c.guard.Validate(ErrCourierPricingIsNotConstructed)
}

// CourierID returns the identifier of the courier this entry prices.
func (c *CourierPricing) CourierID() kernel.UUID {
	return c.courierID
}

// WeightSlab returns the base weight bucket in kg.
func (c *CourierPricing) WeightSlab() float64 {
	return c.weightSlab
}

// IncrementWeight returns the billing step in kg, guaranteed > 0.
func (c *CourierPricing) IncrementWeight() float64 {
	return c.incrementWeight
}

// IncrementPrice returns the plan-level default charge per extra unit.
func (c *CourierPricing) IncrementPrice() float64 {
	return c.incrementPrice
}

// CODChargeFixed returns the fixed cash-handling fee.
func (c *CourierPricing) CODChargeFixed() float64 {
	return c.codChargeFixed
}

// CODChargePercent returns the percentage fee on the collectable amount.
func (c *CourierPricing) CODChargePercent() float64 {
	return c.codChargePercent
}

// IsForwardApplicable reports whether the courier may be quoted for forward legs.
func (c *CourierPricing) IsForwardApplicable() bool {
	return c.isForwardApplicable
}

// IsRTOApplicable reports whether the courier may be quoted for return legs.
func (c *CourierPricing) IsRTOApplicable() bool {
	return c.isRTOApplicable
}

// IsCODApplicable reports whether COD surcharges apply to this courier.
func (c *CourierPricing) IsCODApplicable() bool {
	return c.isCODApplicable
}

// IsCODReversalApplicable reports whether COD reversal handling applies.
func (c *CourierPricing) IsCODReversalApplicable() bool {
	return c.isCODReversalApplicable
}

// ZonePricings returns all zone price rows of this entry.
// The returned slice is a copy to prevent external modification.
func (c *CourierPricing) ZonePricings() []ZonePricing {
	out := make([]ZonePricing, len(c.zonePricings))
	copy(out, c.zonePricings)
	return out
}

// AddZonePricing attaches a price row for a zone the courier serves.
// Each zone may be priced at most once per courier; a duplicate fails with
// ErrZoneAlreadyPriced.
func (c *CourierPricing) AddZonePricing(zp ZonePricing) error {
	if err := zp.Validate(); err != nil {
		return err
	}

	if _, ok := c.ZonePricingFor(zp.Zone()); ok {
		return ErrZoneAlreadyPriced
	}

	c.zonePricings = append(c.zonePricings, zp)
	return nil
}

// ZonePricingFor returns the price row for the given zone.
// The second return value reports whether the courier serves the zone;
// absence is a silent exclusion, not an error.
func (c *CourierPricing) ZonePricingFor(zone kernel.Zone) (ZonePricing, bool) {
	for _, zp := range c.zonePricings {
		if zp.Zone() == zone {
			return zp, true
		}
	}
	return ZonePricing{}, false
}

func (c *CourierPricing) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CourierPricing) setWeightSlab(weightSlab float64) error {
	if weightSlab < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight slab",
			fmt.Errorf("%v must not be negative", weightSlab))
	}

	c.weightSlab = weightSlab
	return nil
}

func (c *CourierPricing) setIncrementWeight(incrementWeight float64) error {
	if incrementWeight <= 0 {
		return ErrIncrementWeightIsInvalid
	}

	c.incrementWeight = incrementWeight
	return nil
}

func (c *CourierPricing) setAmount(name string, field *float64, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%v must not be negative", value))
	}

	*field = value
	return nil
}
