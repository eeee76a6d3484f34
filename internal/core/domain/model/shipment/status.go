package shipment

import (
	"fmt"

	"rates/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct business workflow.
//
// State transitions:
//
//	Created ──┬──> Booked ──> Completed
//	          │       │
//	          └───────┘
//	     (rebooking allowed)
//
// A shipment is Created when the seller submits it, Booked once a courier
// quote is accepted, and Completed when the shipment is delivered. Rebooking
// from Booked to Booked is allowed so a different courier can be chosen
// before manifesting.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a shipment is first submitted.
	// Shipments in this status are waiting for a courier to be booked.
	Created

	// Booked indicates a courier quote has been accepted for the shipment.
	// Shipments can be rebooked while in this status.
	Booked

	// Completed indicates the shipment has been delivered.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Booked:    "Booked",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Booked:    "Booked",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateBook checks if the status allows booking without performing the transition.
//
// Valid statuses for booking:
//   - Created (initial booking)
//   - Booked (rebooking with a different courier)
func (s Status) ValidateBook() error {
	if s != Created && s != Booked {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to book", s.String()),
		)
	}
	return nil
}

// Book returns the status after accepting a courier quote.
// Fails if booking is not allowed from the current status.
func (s Status) Book() (Status, error) {
	if err := s.ValidateBook(); err != nil {
		return s, err
	}
	return Booked, nil
}

// Complete returns the status after delivery.
// Only Booked shipments can be completed.
func (s Status) Complete() (Status, error) {
	if s != Booked {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}

// ValidateCanHaveCourier validates the consistency between shipment status
// and courier assignment.
//
// Business rules:
//   - Created shipments must not have a courier booked
//   - Booked and Completed shipments must have a courier booked
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Booked && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Booked || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// StatusFromString parses a status from its string representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}
