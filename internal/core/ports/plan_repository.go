package ports

import (
	"context"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/pricing"
)

// PlanRepository defines the persistence contract for pricing plan aggregates.
// A plan is always loaded as a complete snapshot - every courier entry with
// its zone price rows - so the rate calculator never observes a partially
// loaded configuration.
type PlanRepository interface {
	// Add persists a new pricing plan aggregate to storage.
	// The plan must be valid and not already exist in the repository.
	Add(ctx context.Context, plan *pricing.PricingPlan) error

	// Update persists changes to an existing plan aggregate,
	// replacing its courier entries and zone rows.
	Update(ctx context.Context, plan *pricing.PricingPlan) error

	// Get retrieves a complete plan snapshot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pricing.PricingPlan, error)

	// GetDefault retrieves the system-wide fallback plan.
	// Sellers without an assigned plan are quoted against it. Exactly one
	// default exists at any time; storage enforces that uniqueness.
	GetDefault(ctx context.Context) (*pricing.PricingPlan, error)
}
