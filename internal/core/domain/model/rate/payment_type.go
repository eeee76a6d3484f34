package rate

import (
	"fmt"

	"rates/internal/pkg/errs"
)

// PaymentType is the payment mode of a shipment.
// The numeric values are part of the public API contract:
// 0 is prepaid, 1 is cash on delivery.
type PaymentType int

const (
	// PaymentTypePrepaid marks a shipment paid online up front.
	PaymentTypePrepaid PaymentType = 0

	// PaymentTypeCOD marks a cash-on-delivery shipment. COD shipments carry a
	// collectable amount and may attract a cash-handling surcharge.
	PaymentTypeCOD PaymentType = 1
)

// getPaymentTypeStrings returns the display names for all payment types.
func getPaymentTypeStrings() map[PaymentType]string {
	return map[PaymentType]string{
		PaymentTypePrepaid: "PREPAID",
		PaymentTypeCOD:     "COD",
	}
}

// Validate checks if the PaymentType value is valid.
func (p PaymentType) Validate() error {
	if _, ok := getPaymentTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment type is invalid",
			fmt.Errorf("%d is not a valid payment type", p))
	}
	return nil
}

// String returns the display name of the payment type.
// Safe to call on any PaymentType value, including invalid ones.
func (p PaymentType) String() string {
	if str, ok := getPaymentTypeStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// PaymentTypeFromInt parses the wire representation (0 prepaid, 1 COD).
func PaymentTypeFromInt(v int) (PaymentType, error) {
	pt := PaymentType(v)
	if err := pt.Validate(); err != nil {
		return pt, err
	}
	return pt, nil
}

// IsCOD reports whether the payment type is cash on delivery.
func (p PaymentType) IsCOD() bool {
	return p == PaymentTypeCOD
}
