package rate

import (
	"errors"
	"fmt"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/errs"
	"rates/internal/pkg/guard"
)

// Domain errors for rate request construction.
var (
	// ErrRateRequestIsNotConstructed is returned when using an improperly
	// initialized RateRequest.
	ErrRateRequestIsNotConstructed = errors.New("RateRequest must be created via NewRateRequest constructor")
	// ErrCollectableAmountIsRequired is returned when a COD request carries
	// no collectable amount.
	ErrCollectableAmountIsRequired = errs.NewValueIsRequiredError("collectable amount")
)

// RateRequest is the caller-constructed input of one quote computation.
// It is ephemeral: built per request, validated once, then read by every
// stage of the engine without further checks.
//
// Weight and dimensions are carried in the caller's units and normalized on
// read via WeightInKg and dimension getters; validation guarantees they are
// strictly positive, so the weight billing calculator never sees an invalid
// measurement.
//
// Example:
//
//	pickup, _ := kernel.NewPincode("560001")
//	delivery, _ := kernel.NewPincode("110001")
//	req, err := rate.NewRateRequest(pickup, delivery,
//	    0.6, rate.WeightUnitKilogram,
//	    10, 10, 10, rate.SizeUnitCentimeter,
//	    rate.PaymentTypePrepaid, 0, false)
type RateRequest struct { //nolint:recvcheck //using for validation
	pickupPincode   kernel.Pincode
	deliveryPincode kernel.Pincode

	weight     float64
	weightUnit WeightUnit

	boxLength float64
	boxWidth  float64
	boxHeight float64
	sizeUnit  SizeUnit

	paymentType       PaymentType
	collectableAmount float64

	isReverseOrder bool

	guard guard.ConstructorGuard
}

// NewRateRequest creates a validated quote request.
//
// Validation rules:
//   - both pincodes must be properly constructed
//   - weight and every box dimension must be strictly positive
//   - weight and size units must be known
//   - a COD request must carry a positive collectable amount; the amount must
//     never be negative
//
// All violations are aggregated into a single returned error.
func NewRateRequest(
	pickupPincode kernel.Pincode,
	deliveryPincode kernel.Pincode,
	weight float64,
	weightUnit WeightUnit,
	boxLength float64,
	boxWidth float64,
	boxHeight float64,
	sizeUnit SizeUnit,
	paymentType PaymentType,
	collectableAmount float64,
	isReverseOrder bool,
) (RateRequest, error) {
	req := RateRequest{
		isReverseOrder: isReverseOrder,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		req.setPincode("pickup pincode", &req.pickupPincode, pickupPincode),
		req.setPincode("delivery pincode", &req.deliveryPincode, deliveryPincode),
		req.setMeasurement("weight", &req.weight, weight),
		req.setWeightUnit(weightUnit),
		req.setMeasurement("box length", &req.boxLength, boxLength),
		req.setMeasurement("box width", &req.boxWidth, boxWidth),
		req.setMeasurement("box height", &req.boxHeight, boxHeight),
		req.setSizeUnit(sizeUnit),
		req.setPayment(paymentType, collectableAmount),
	); err != nil {
		return RateRequest{}, err
	}

	return req, nil
}

// Validate checks that the RateRequest was created through its constructor.
func (r RateRequest) Validate() error {
	return r.guard.Validate(ErrRateRequestIsNotConstructed)
}

// PickupPincode returns the origin pincode.
func (r RateRequest) PickupPincode() kernel.Pincode {
	return r.pickupPincode
}

// DeliveryPincode returns the destination pincode.
func (r RateRequest) DeliveryPincode() kernel.Pincode {
	return r.deliveryPincode
}

// Weight returns the declared weight in the unit of WeightUnit.
func (r RateRequest) Weight() float64 {
	return r.weight
}

// WeightUnit returns the unit the declared weight is expressed in.
func (r RateRequest) WeightUnit() WeightUnit {
	return r.weightUnit
}

// WeightInKg returns the declared weight normalized to kilograms.
func (r RateRequest) WeightInKg() float64 {
	return r.weightUnit.ToKilograms(r.weight)
}

// BoxLength returns the box length in the unit of SizeUnit.
func (r RateRequest) BoxLength() float64 {
	return r.boxLength
}

// BoxWidth returns the box width in the unit of SizeUnit.
func (r RateRequest) BoxWidth() float64 {
	return r.boxWidth
}

// BoxHeight returns the box height in the unit of SizeUnit.
func (r RateRequest) BoxHeight() float64 {
	return r.boxHeight
}

// SizeUnit returns the unit the box dimensions are expressed in.
func (r RateRequest) SizeUnit() SizeUnit {
	return r.sizeUnit
}

// DimensionsInCm returns length, width and height normalized to centimeters.
func (r RateRequest) DimensionsInCm() (length, width, height float64) {
	return r.sizeUnit.ToCentimeters(r.boxLength),
		r.sizeUnit.ToCentimeters(r.boxWidth),
		r.sizeUnit.ToCentimeters(r.boxHeight)
}

// PaymentType returns the payment mode of the shipment.
func (r RateRequest) PaymentType() PaymentType {
	return r.paymentType
}

// CollectableAmount returns the COD collectable amount (0 for prepaid).
func (r RateRequest) CollectableAmount() float64 {
	return r.collectableAmount
}

// IsReverseOrder reports whether the quote is for a reverse (return) leg.
func (r RateRequest) IsReverseOrder() bool {
	return r.isReverseOrder
}

func (r *RateRequest) setPincode(name string, field *kernel.Pincode, value kernel.Pincode) error {
	if err := value.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}

	*field = value
	return nil
}

// setMeasurement validates and assigns a physical measurement.
// Non-positive weights and dimensions make billing undefined and abort the
// whole request.
func (r *RateRequest) setMeasurement(name string, field *float64, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%v must be greater than zero", value))
	}

	*field = value
	return nil
}

func (r *RateRequest) setWeightUnit(unit WeightUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	r.weightUnit = unit
	return nil
}

func (r *RateRequest) setSizeUnit(unit SizeUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	r.sizeUnit = unit
	return nil
}

func (r *RateRequest) setPayment(paymentType PaymentType, collectableAmount float64) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}

	if collectableAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("collectable amount",
			fmt.Errorf("%v must not be negative", collectableAmount))
	}

	if paymentType.IsCOD() && collectableAmount == 0 {
		return ErrCollectableAmountIsRequired
	}

	r.paymentType = paymentType
	r.collectableAmount = collectableAmount
	return nil
}
