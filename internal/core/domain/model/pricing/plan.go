package pricing

import (
	"errors"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/errs"
	"rates/internal/pkg/guard"
)

// Domain errors for pricing plan operations.
var (
	// ErrPlanNameIsRequired is returned when attempting to create a plan without a name.
	ErrPlanNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPricingPlanIsNotConstructed is returned when using an improperly initialized PricingPlan.
	ErrPricingPlanIsNotConstructed = errors.New("PricingPlan must be created via NewPricingPlan constructor")
	// ErrCourierAlreadyPriced is returned when adding a second pricing entry
	// for a courier that already has one in the plan.
	ErrCourierAlreadyPriced = errors.New("courier already has a pricing entry in this plan")
)

// PricingPlan is the aggregate root for a seller's pricing configuration.
// It owns an ordered set of CourierPricing entries, one per courier the plan
// covers, each with its own zone price rows.
//
// Exactly one plan is marked default across the system at any time; sellers
// without an assigned plan fall back to it. Enforcing that uniqueness is the
// repository's concern - the aggregate only carries the flag.
//
// The engine treats a plan as a read-only snapshot: once loaded for a quote
// computation it is never mutated, which is what makes the per-courier
// evaluation safe to parallelize.
type PricingPlan struct { //nolint:recvcheck //using for validation
	// id uniquely identifies the plan
	id kernel.UUID

	// name is the human-readable plan name shown to sellers and admins
	name string

	// isDefault marks the system-wide fallback plan
	isDefault bool

	// courierPricings are the per-courier entries, ordered, unique per courier
	courierPricings []*CourierPricing

	guard guard.ConstructorGuard
}

// NewPricingPlan creates an empty plan with the given identity.
// Courier entries are attached afterwards with AddCourierPricing.
func NewPricingPlan(id kernel.UUID, name string, isDefault bool) (*PricingPlan, error) {
	plan := &PricingPlan{
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(plan.setID(id), plan.setName(name)); err != nil {
		return nil, err
	}

	return plan, nil
}

// RestorePricingPlan reconstructs a plan aggregate from persistent storage
// with its courier entries already attached. The restored plan behaves
// identically to one built through NewPricingPlan + AddCourierPricing.
func RestorePricingPlan(
	id kernel.UUID,
	name string,
	isDefault bool,
	courierPricings []*CourierPricing,
) (*PricingPlan, error) {
	plan, err := NewPricingPlan(id, name, isDefault)
	if err != nil {
		return nil, err
	}

	for _, cp := range courierPricings {
		if err = plan.AddCourierPricing(cp); err != nil {
			return nil, err
		}
	}

	return plan, nil
}

// IsEqual compares two plans by their unique identifiers.
func (p *PricingPlan) IsEqual(other *PricingPlan) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks that the PricingPlan was created through its constructor.
func (p *PricingPlan) Validate() error {
	if p == nil {
		return ErrPricingPlanIsNotConstructed
	}
	return p.guard.Validate(ErrPricingPlanIsNotConstructed)
}

// ID returns the unique identifier of the plan.
func (p *PricingPlan) ID() kernel.UUID {
	return p.id
}

// Name returns the human-readable plan name.
func (p *PricingPlan) Name() string {
	return p.name
}

// IsDefault reports whether this is the system-wide fallback plan.
func (p *PricingPlan) IsDefault() bool {
	return p.isDefault
}

// CourierPricings returns the per-courier entries in plan order.
// The returned slice is a copy to prevent external modification.
func (p *PricingPlan) CourierPricings() []*CourierPricing {
	out := make([]*CourierPricing, len(p.courierPricings))
	copy(out, p.courierPricings)
	return out
}

// AddCourierPricing attaches a pricing entry for a courier.
// Each courier may appear at most once per plan; a duplicate fails with
// ErrCourierAlreadyPriced.
func (p *PricingPlan) AddCourierPricing(cp *CourierPricing) error {
	if err := cp.Validate(); err != nil {
		return err
	}

	if _, ok := p.PricingFor(cp.CourierID()); ok {
		return ErrCourierAlreadyPriced
	}

	p.courierPricings = append(p.courierPricings, cp)
	return nil
}

// PricingFor returns the pricing entry for the given courier.
// The second return value reports whether the plan covers the courier.
func (p *PricingPlan) PricingFor(courierID kernel.UUID) (*CourierPricing, bool) {
	for _, cp := range p.courierPricings {
		if cp.CourierID().IsEqual(courierID) {
			return cp, true
		}
	}
	return nil, false
}

func (p *PricingPlan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *PricingPlan) setName(name string) error {
	if name == "" {
		return ErrPlanNameIsRequired
	}

	p.name = name
	return nil
}
