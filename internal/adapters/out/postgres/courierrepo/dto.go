// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"time"

	"rates/internal/core/domain/model/courier"
	"rates/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// PickupTime is stored as nanoseconds so the column round-trips time.Duration exactly.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	ServiceType  string    `gorm:"type:varchar(32);not null"`
	IsActive     bool      `gorm:"type:boolean;not null"`
	IsReturnOnly bool      `gorm:"type:boolean;not null"`
	PickupTime   int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(courier *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:           courier.ID().Bytes(),
		Name:         courier.Name(),
		ServiceType:  courier.ServiceType().String(),
		IsActive:     courier.IsActive(),
		IsReturnOnly: courier.IsReturnOnly(),
		PickupTime:   int64(courier.PickupTime()),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the aggregate with its persisted activity state using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceType, err := courier.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		serviceType,
		dto.IsActive,
		dto.IsReturnOnly,
		time.Duration(dto.PickupTime),
	)
}
