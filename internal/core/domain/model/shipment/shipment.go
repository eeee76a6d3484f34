package shipment

import (
	"errors"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/rate"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment factory method.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is the aggregate root recording a seller's order through the
// quoting workflow. It carries the original rate request so the engine can be
// replayed over pending shipments, and snapshots the accepted quote (courier,
// zone, billed weight, charge breakdown) once a courier is booked.
//
// Invariants:
//   - must have a valid unique identifier and a validated rate request
//   - zone and charges are only set together with a courier, at booking
//   - status transitions follow the Created -> Booked -> Completed machine
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// request is the seller's original rate request
	request rate.RateRequest

	// status represents the current state in the shipment lifecycle
	status Status

	// courierID is the booked courier's ID (nil until booked)
	courierID *kernel.UUID

	// quote is the accepted quote snapshot (nil until booked)
	quote *rate.RateQuote

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a shipment in Created status from a validated request.
//
// Example:
//
//	s, err := shipment.NewShipment(kernel.NewUUID(), request)
//	if err != nil {
//	    // Handle validation error
//	}
func NewShipment(id kernel.UUID, request rate.RateRequest) (*Shipment, error) {
	s := &Shipment{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(s.setID(id), s.setRequest(request)); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistent storage.
// Status/courier consistency is revalidated so a corrupt row cannot produce
// a shipment that claims to be booked without a courier.
func RestoreShipment(
	id kernel.UUID,
	request rate.RateRequest,
	status Status,
	courierID *kernel.UUID,
	quote *rate.RateQuote,
) (*Shipment, error) {
	s, err := NewShipment(id, request)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
	}
	if quote != nil {
		if err = quote.Validate(); err != nil {
			return nil, err
		}
	}

	s.status = status
	s.courierID = courierID
	s.quote = quote
	return s, nil
}

// Validate ensures the Shipment was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Request returns the seller's original rate request.
func (s *Shipment) Request() rate.RateRequest {
	return s.request
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// Courier returns the booked courier's ID, or nil if not yet booked.
func (s *Shipment) Courier() *kernel.UUID {
	return s.courierID
}

// Quote returns the accepted quote snapshot, or nil if not yet booked.
func (s *Shipment) Quote() *rate.RateQuote {
	return s.quote
}

// Book accepts a courier quote for the shipment.
//
// Business rules:
//   - the quote must be properly constructed
//   - the shipment must be in Created or Booked status
//   - rebooking replaces the previous courier and quote snapshot
func (s *Shipment) Book(quote rate.RateQuote) error {
	if err := quote.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Book()
	if err != nil {
		return err
	}

	courierID := quote.CourierID()
	s.status = newStatus
	s.courierID = &courierID
	s.quote = &quote
	return nil
}

// Complete marks the shipment as delivered.
// Only Booked shipments can be completed; Completed is final.
func (s *Shipment) Complete() error {
	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// setID validates and sets the shipment's unique identifier.
func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setRequest validates and sets the seller's rate request.
func (s *Shipment) setRequest(request rate.RateRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}
	s.request = request
	return nil
}
