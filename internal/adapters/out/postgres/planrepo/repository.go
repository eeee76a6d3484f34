package planrepo

import (
	"context"
	"errors"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/pricing"
	"rates/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPlanRepository implements PlanRepository using GORM.
// Plans are loaded as full snapshots: every Get pulls the courier entries and
// their zone rows in one Preload chain, because the engine prices against the
// whole plan and never against individual rows.
type GormPlanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPlanRepository creates a new GORM pricing plan repository.
func NewGormPlanRepository(db *gorm.DB, tracker aggregateTracker) *GormPlanRepository {
	return &GormPlanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pricing plan with all its courier entries and zone rows.
// When the plan is marked default, any previous default is demoted first so
// at most one default exists at any time.
func (r *GormPlanRepository) Add(ctx context.Context, aggregate *pricing.PricingPlan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.IsDefault() {
		if err := r.demoteCurrentDefault(ctx, aggregate.ID()); err != nil {
			return err
		}
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update replaces an existing plan snapshot. The courier entries and zone rows
// carry synthetic IDs, so they are rewritten wholesale rather than diffed.
func (r *GormPlanRepository) Update(ctx context.Context, aggregate *pricing.PricingPlan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.IsDefault() {
		if err := r.demoteCurrentDefault(ctx, aggregate.ID()); err != nil {
			return err
		}
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&PlanDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":       dto.Name,
			"is_default": dto.IsDefault,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// Rewrite the child rows: zone rows cascade with their entries.
	if err := r.db.WithContext(ctx).
		Where("plan_id = ?", dto.ID).
		Delete(&CourierPricingDTO{}).Error; err != nil {
		return err
	}

	if len(dto.CourierPricings) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.CourierPricings).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a plan by ID with its full pricing snapshot.
func (r *GormPlanRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.PricingPlan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlanDTO
	if err := r.db.WithContext(ctx).
		Preload("CourierPricings.ZonePricings").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing plan", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDefault retrieves the system-wide fallback plan.
// A missing default is a deployment error surfaced as an object-not-found.
func (r *GormPlanRepository) GetDefault(ctx context.Context) (*pricing.PricingPlan, error) {
	var dto PlanDTO
	if err := r.db.WithContext(ctx).
		Preload("CourierPricings.ZonePricings").
		First(&dto, "is_default = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing plan", "default")
		}
		return nil, err
	}

	return toDomain(dto)
}

// demoteCurrentDefault clears the default flag on any other plan.
func (r *GormPlanRepository) demoteCurrentDefault(ctx context.Context, planID kernel.UUID) error {
	return r.db.WithContext(ctx).Model(&PlanDTO{}).
		Where("is_default = ? AND id <> ?", true, planID.Bytes()).
		Update("is_default", false).Error
}
