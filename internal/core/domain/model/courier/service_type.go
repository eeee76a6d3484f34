package courier

import (
	"fmt"

	"rates/internal/pkg/errs"
)

// ServiceType classifies the transport mode a courier service runs on.
// It is informational for sellers choosing between quotes and does not
// influence pricing directly.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	// This value (0) helps catch uninitialized ServiceType values.
	ServiceTypeUnknown ServiceType = iota

	// ServiceTypeExpress is a premium fast service.
	ServiceTypeExpress

	// ServiceTypeSurface is a ground-transport service.
	ServiceTypeSurface

	// ServiceTypeAir is an air-cargo service.
	ServiceTypeAir
)

// getServiceTypeStrings returns the wire/storage names for all service types.
func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown: "UNKNOWN",
		ServiceTypeExpress: "EXPRESS",
		ServiceTypeSurface: "SURFACE",
		ServiceTypeAir:     "AIR",
	}
}

// getValidServiceTypeStrings returns only the service types a courier may carry.
func getValidServiceTypeStrings() map[ServiceType]string {
	//nolint:exhaustive // ServiceTypeUnknown is intentionally excluded as it's invalid
	return map[ServiceType]string{
		ServiceTypeExpress: "EXPRESS",
		ServiceTypeSurface: "SURFACE",
		ServiceTypeAir:     "AIR",
	}
}

// Validate checks if the ServiceType value is valid.
// ServiceTypeUnknown (0) and any other values are invalid.
func (s ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service type is invalid",
			fmt.Errorf("%d is not a valid service type", s))
	}
	return nil
}

// String returns the storage name of the service type, e.g. "EXPRESS".
// Safe to call on any ServiceType value, including invalid ones.
func (s ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ServiceTypeFromString parses a service type from its storage name.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for st, str := range getValidServiceTypeStrings() {
		if str == s {
			return st, nil
		}
	}
	return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause("service type is invalid",
		fmt.Errorf("%q is not a valid service type", s))
}
