// Package planrepo provides data transfer objects and mapping functions for
// pricing plan persistence. A plan is stored across three tables: the plan row,
// one courier_pricings row per courier entry and one zone_pricings row per
// priced zone.
package planrepo

import (
	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// PlanDTO represents the database structure for persisting pricing plan aggregates.
type PlanDTO struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name            string              `gorm:"type:varchar(255);not null"`
	IsDefault       bool                `gorm:"type:boolean;not null;index"`
	CourierPricings []CourierPricingDTO `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for plan entities.
func (PlanDTO) TableName() string {
	return "plans"
}

// CourierPricingDTO represents one courier's pricing entry within a plan.
// The row ID is synthetic: the domain entry is identified by (plan, courier),
// so a fresh ID is generated on every save.
type CourierPricingDTO struct {
	ID                      uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PlanID                  uuid.UUID        `gorm:"type:uuid;not null;index"`
	CourierID               uuid.UUID        `gorm:"type:uuid;not null;index"`
	WeightSlab              float64          `gorm:"type:numeric;not null"`
	IncrementWeight         float64          `gorm:"type:numeric;not null"`
	IncrementPrice          float64          `gorm:"type:numeric;not null"`
	CODChargeFixed          float64          `gorm:"type:numeric;not null"`
	CODChargePercent        float64          `gorm:"type:numeric;not null"`
	IsForwardApplicable     bool             `gorm:"type:boolean;not null"`
	IsRTOApplicable         bool             `gorm:"type:boolean;not null"`
	IsCODApplicable         bool             `gorm:"type:boolean;not null"`
	IsCODReversalApplicable bool             `gorm:"type:boolean;not null"`
	ZonePricings            []ZonePricingDTO `gorm:"foreignKey:CourierPricingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for courier pricing entries.
func (CourierPricingDTO) TableName() string {
	return "courier_pricings"
}

// ZonePricingDTO represents a courier's price row for one zone.
type ZonePricingDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierPricingID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Zone               string    `gorm:"type:varchar(32);not null"`
	BasePrice          float64   `gorm:"type:numeric;not null"`
	IncrementPrice     float64   `gorm:"type:numeric;not null"`
	IsRTOSameAsForward bool      `gorm:"type:boolean;not null"`
	RTOBasePrice       float64   `gorm:"type:numeric;not null"`
	RTOIncrementPrice  float64   `gorm:"type:numeric;not null"`
	FlatRTOCharge      float64   `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for zone price rows.
func (ZonePricingDTO) TableName() string {
	return "zone_pricings"
}

// fromDomain converts a plan aggregate to its database representation,
// generating fresh synthetic IDs for the entry and zone rows.
func fromDomain(plan *pricing.PricingPlan) PlanDTO {
	planID := plan.ID().Bytes()
	entries := plan.CourierPricings()

	entryDTOs := make([]CourierPricingDTO, 0, len(entries))
	for _, entry := range entries {
		entryID := uuid.New()

		zoneRows := entry.ZonePricings()
		zoneDTOs := make([]ZonePricingDTO, 0, len(zoneRows))
		for _, zp := range zoneRows {
			zoneDTOs = append(zoneDTOs, ZonePricingDTO{
				ID:                 uuid.New(),
				CourierPricingID:   entryID,
				Zone:               zp.Zone().String(),
				BasePrice:          zp.BasePrice(),
				IncrementPrice:     zp.IncrementPrice(),
				IsRTOSameAsForward: zp.IsRTOSameAsForward(),
				RTOBasePrice:       zp.RTOBasePrice(),
				RTOIncrementPrice:  zp.RTOIncrementPrice(),
				FlatRTOCharge:      zp.FlatRTOCharge(),
			})
		}

		entryDTOs = append(entryDTOs, CourierPricingDTO{
			ID:                      entryID,
			PlanID:                  planID,
			CourierID:               entry.CourierID().Bytes(),
			WeightSlab:              entry.WeightSlab(),
			IncrementWeight:         entry.IncrementWeight(),
			IncrementPrice:          entry.IncrementPrice(),
			CODChargeFixed:          entry.CODChargeFixed(),
			CODChargePercent:        entry.CODChargePercent(),
			IsForwardApplicable:     entry.IsForwardApplicable(),
			IsRTOApplicable:         entry.IsRTOApplicable(),
			IsCODApplicable:         entry.IsCODApplicable(),
			IsCODReversalApplicable: entry.IsCODReversalApplicable(),
			ZonePricings:            zoneDTOs,
		})
	}

	return PlanDTO{
		ID:              planID,
		Name:            plan.Name(),
		IsDefault:       plan.IsDefault(),
		CourierPricings: entryDTOs,
	}
}

// toDomain converts a database DTO to a plan aggregate using the Restore
// constructors, so a corrupt snapshot fails loudly instead of producing an
// invalid plan.
func toDomain(dto PlanDTO) (*pricing.PricingPlan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	entries := make([]*pricing.CourierPricing, 0, len(dto.CourierPricings))
	for _, entryDTO := range dto.CourierPricings {
		entry, entryErr := entryToDomain(entryDTO)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return pricing.RestorePricingPlan(id, dto.Name, dto.IsDefault, entries)
}

// entryToDomain converts a courier pricing row and its zone rows to the
// domain entry.
func entryToDomain(dto CourierPricingDTO) (*pricing.CourierPricing, error) {
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	zoneRows := make([]pricing.ZonePricing, 0, len(dto.ZonePricings))
	for _, zpDTO := range dto.ZonePricings {
		zone, zoneErr := kernel.ZoneFromString(zpDTO.Zone)
		if zoneErr != nil {
			return nil, zoneErr
		}

		zp, zpErr := pricing.NewZonePricing(
			zone,
			zpDTO.BasePrice,
			zpDTO.IncrementPrice,
			zpDTO.IsRTOSameAsForward,
			zpDTO.RTOBasePrice,
			zpDTO.RTOIncrementPrice,
			zpDTO.FlatRTOCharge,
		)
		if zpErr != nil {
			return nil, zpErr
		}
		zoneRows = append(zoneRows, zp)
	}

	return pricing.RestoreCourierPricing(
		courierID,
		dto.WeightSlab,
		dto.IncrementWeight,
		dto.IncrementPrice,
		dto.CODChargeFixed,
		dto.CODChargePercent,
		dto.IsForwardApplicable,
		dto.IsRTOApplicable,
		dto.IsCODApplicable,
		dto.IsCODReversalApplicable,
		zoneRows,
	)
}
