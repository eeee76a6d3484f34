// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The shipment row carries the seller's original
// rate request inline plus a nullable accepted-quote snapshot that is only
// populated once a courier is booked.
package shipmentrepo

import (
	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/rate"
	"rates/internal/core/domain/model/shipment"
	"rates/internal/pkg/errs"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Status is stored by name so rows stay readable in ad-hoc queries; the quote
// columns are all-or-nothing together with CourierID.
type ShipmentDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	PickupPincode   string `gorm:"type:varchar(6);not null"`
	DeliveryPincode string `gorm:"type:varchar(6);not null"`

	Weight     float64 `gorm:"type:numeric;not null"`
	WeightUnit string  `gorm:"type:varchar(8);not null"`

	BoxLength float64 `gorm:"type:numeric;not null"`
	BoxWidth  float64 `gorm:"type:numeric;not null"`
	BoxHeight float64 `gorm:"type:numeric;not null"`
	SizeUnit  string  `gorm:"type:varchar(8);not null"`

	PaymentType       int     `gorm:"type:int;not null"`
	CollectableAmount float64 `gorm:"type:numeric;not null"`
	IsReverseOrder    bool    `gorm:"type:boolean;not null"`

	Status string `gorm:"type:varchar(32);not null;index"`

	CourierID *uuid.UUID `gorm:"type:uuid;index"`

	QuoteCourierName    *string  `gorm:"type:varchar(255)"`
	QuoteZone           *string  `gorm:"type:varchar(32)"`
	QuoteBilledWeightKg *float64 `gorm:"type:numeric"`
	QuoteForwardCharge  *float64 `gorm:"type:numeric"`
	QuoteRTOCharge      *float64 `gorm:"type:numeric"`
	QuoteCODCharge      *float64 `gorm:"type:numeric"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	request := s.Request()

	dto := ShipmentDTO{
		ID:                s.ID().Bytes(),
		PickupPincode:     request.PickupPincode().String(),
		DeliveryPincode:   request.DeliveryPincode().String(),
		Weight:            request.Weight(),
		WeightUnit:        string(request.WeightUnit()),
		BoxLength:         request.BoxLength(),
		BoxWidth:          request.BoxWidth(),
		BoxHeight:         request.BoxHeight(),
		SizeUnit:          string(request.SizeUnit()),
		PaymentType:       int(request.PaymentType()),
		CollectableAmount: request.CollectableAmount(),
		IsReverseOrder:    request.IsReverseOrder(),
		Status:            s.Status().String(),
	}

	if s.Courier() != nil {
		raw := s.Courier().Bytes()
		dto.CourierID = &raw
	}

	if quote := s.Quote(); quote != nil {
		name := quote.CourierName()
		zone := quote.Zone().String()
		billed := quote.BilledWeightKg()
		forward := quote.ForwardCharge()
		rto := quote.RTOCharge()
		cod := quote.CODCharge()

		dto.QuoteCourierName = &name
		dto.QuoteZone = &zone
		dto.QuoteBilledWeightKg = &billed
		dto.QuoteForwardCharge = &forward
		dto.QuoteRTOCharge = &rto
		dto.QuoteCODCharge = &cod
	}

	return dto
}

// toDomain converts a database DTO to a shipment aggregate.
// The rate request and quote snapshot are rebuilt through their constructors
// so status/courier consistency is revalidated on every load.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	request, err := requestToDomain(dto)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if cErr != nil {
			return nil, cErr
		}
		courierID = &cID
	}

	quote, err := quoteToDomain(dto, courierID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, request, status, courierID, quote)
}

// requestToDomain rebuilds the seller's rate request from the shipment row.
func requestToDomain(dto ShipmentDTO) (rate.RateRequest, error) {
	pickup, err := kernel.NewPincode(dto.PickupPincode)
	if err != nil {
		return rate.RateRequest{}, err
	}

	delivery, err := kernel.NewPincode(dto.DeliveryPincode)
	if err != nil {
		return rate.RateRequest{}, err
	}

	paymentType, err := rate.PaymentTypeFromInt(dto.PaymentType)
	if err != nil {
		return rate.RateRequest{}, err
	}

	return rate.NewRateRequest(
		pickup,
		delivery,
		dto.Weight,
		rate.WeightUnit(dto.WeightUnit),
		dto.BoxLength,
		dto.BoxWidth,
		dto.BoxHeight,
		rate.SizeUnit(dto.SizeUnit),
		paymentType,
		dto.CollectableAmount,
		dto.IsReverseOrder,
	)
}

// quoteToDomain rebuilds the accepted quote snapshot, or returns nil when the
// shipment has none. A quote without a courier is a corrupt row.
func quoteToDomain(dto ShipmentDTO, courierID *kernel.UUID) (*rate.RateQuote, error) {
	if dto.QuoteCourierName == nil {
		return nil, nil //nolint:nilnil //absence of a snapshot is a valid state
	}

	if courierID == nil {
		return nil, errs.NewValueIsInvalidError("quote snapshot without a booked courier")
	}

	zone, err := kernel.ZoneFromString(*dto.QuoteZone)
	if err != nil {
		return nil, err
	}

	quote, err := rate.NewRateQuote(
		*courierID,
		*dto.QuoteCourierName,
		zone,
		*dto.QuoteBilledWeightKg,
		*dto.QuoteForwardCharge,
		*dto.QuoteRTOCharge,
		*dto.QuoteCODCharge,
	)
	if err != nil {
		return nil, err
	}

	return &quote, nil
}
