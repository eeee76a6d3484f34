package shipmentrepo

import (
	"context"
	"errors"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/shipment"
	"rates/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database.
// A booking writes the courier and the quote snapshot in the same statement;
// a map is used so nil quote columns are cleared rather than skipped.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":                 dto.Status,
			"courier_id":             dto.CourierID,
			"quote_courier_name":     dto.QuoteCourierName,
			"quote_zone":             dto.QuoteZone,
			"quote_billed_weight_kg": dto.QuoteBilledWeightKg,
			"quote_forward_charge":   dto.QuoteForwardCharge,
			"quote_rto_charge":       dto.QuoteRTOCharge,
			"quote_cod_charge":       dto.QuoteCODCharge,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInCreatedStatus retrieves the booking backlog: shipments still waiting
// for a courier. The background booking job drains this set.
//
// Example:
//
//	pending, err := repo.GetAllInCreatedStatus(ctx)
//	if err != nil {
//		return fmt.Errorf("failed to get pending shipments: %w", err)
//	}
//	for _, s := range pending {
//		fmt.Printf("Awaiting courier: %s\n", s.ID())
//	}
func (r *GormShipmentRepository) GetAllInCreatedStatus(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", shipment.Created.String()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
