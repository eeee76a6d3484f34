package ports

import (
	"context"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Provides methods for storing, retrieving, and querying shipments based on
// their lifecycle status.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate,
	// including its booked courier and quote snapshot.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllInCreatedStatus retrieves the shipments still waiting for a
	// courier to be booked. Used by the booking job to drain the backlog.
	GetAllInCreatedStatus(ctx context.Context) ([]*shipment.Shipment, error)
}
