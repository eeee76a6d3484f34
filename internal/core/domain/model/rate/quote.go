package rate

import (
	"errors"
	"fmt"
	"math"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/errs"
	"rates/internal/pkg/guard"
)

// ErrRateQuoteIsNotConstructed is returned when using an improperly
// initialized RateQuote.
var ErrRateQuoteIsNotConstructed = errors.New("RateQuote must be created via NewRateQuote constructor")

// RateQuote is one courier's priced offer for a request.
// It is the ephemeral output of the quote aggregator: a snapshot of the
// resolved zone, the billed weight and the charge breakdown, with the total
// derived at construction so it can never drift from its parts.
//
// All monetary values are rounded to two decimals in the platform's base
// currency. The total is forward + RTO + COD, so it is always at least the
// forward charge.
type RateQuote struct { //nolint:recvcheck //using for validation
	courierID   kernel.UUID
	courierName string

	zone           kernel.Zone
	billedWeightKg float64

	forwardCharge float64
	rtoCharge     float64
	codCharge     float64
	totalCharge   float64

	guard guard.ConstructorGuard
}

// NewRateQuote assembles a quote from the engine's computed parts.
// Charges must be non-negative; each part is rounded to two decimals and the
// total derived from the rounded parts.
func NewRateQuote(
	courierID kernel.UUID,
	courierName string,
	zone kernel.Zone,
	billedWeightKg float64,
	forwardCharge float64,
	rtoCharge float64,
	codCharge float64,
) (RateQuote, error) {
	quote := RateQuote{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quote.setCourier(courierID, courierName),
		quote.setZone(zone),
		quote.setBilledWeight(billedWeightKg),
		quote.setCharge("forward charge", &quote.forwardCharge, forwardCharge),
		quote.setCharge("rto charge", &quote.rtoCharge, rtoCharge),
		quote.setCharge("cod charge", &quote.codCharge, codCharge),
	); err != nil {
		return RateQuote{}, err
	}

	quote.totalCharge = Round2(quote.forwardCharge + quote.rtoCharge + quote.codCharge)
	return quote, nil
}

// Validate checks that the RateQuote was created through its constructor.
func (q RateQuote) Validate() error {
	return q.guard.Validate(ErrRateQuoteIsNotConstructed)
}

// CourierID returns the identifier of the quoted courier.
func (q RateQuote) CourierID() kernel.UUID {
	return q.courierID
}

// CourierName returns the seller-facing name of the quoted courier.
func (q RateQuote) CourierName() string {
	return q.courierName
}

// Zone returns the zone resolved for the request.
func (q RateQuote) Zone() kernel.Zone {
	return q.zone
}

// BilledWeightKg returns the billed weight in kilograms.
func (q RateQuote) BilledWeightKg() float64 {
	return q.billedWeightKg
}

// ForwardCharge returns the forward-leg charge.
func (q RateQuote) ForwardCharge() float64 {
	return q.forwardCharge
}

// RTOCharge returns the return-leg charge (0 for forward-only quotes).
func (q RateQuote) RTOCharge() float64 {
	return q.rtoCharge
}

// CODCharge returns the cash-on-delivery surcharge (0 when not applicable).
func (q RateQuote) CODCharge() float64 {
	return q.codCharge
}

// TotalCharge returns forward + RTO + COD, rounded to two decimals.
func (q RateQuote) TotalCharge() float64 {
	return q.totalCharge
}

func (q *RateQuote) setCourier(courierID kernel.UUID, courierName string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if courierName == "" {
		return errs.NewValueIsRequiredError("courier name")
	}

	q.courierID = courierID
	q.courierName = courierName
	return nil
}

func (q *RateQuote) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	q.zone = zone
	return nil
}

func (q *RateQuote) setBilledWeight(billedWeightKg float64) error {
	if billedWeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("billed weight",
			fmt.Errorf("%v must be greater than zero", billedWeightKg))
	}

	q.billedWeightKg = billedWeightKg
	return nil
}

func (q *RateQuote) setCharge(name string, field *float64, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%v must not be negative", value))
	}

	*field = Round2(value)
	return nil
}

// Round2 rounds a monetary amount to two decimal places, half away from zero.
// All charges leaving the engine pass through this helper.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
