package courier

import (
	"errors"
	"time"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/errs"
	"rates/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPickupTimeIsInvalid is returned when the pickup time is negative.
	ErrPickupTimeIsInvalid = errs.NewValueIsInvalidError("pickup time must not be negative")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a shippable courier service on the platform.
// It is an aggregate root carrying the identity and service attributes the
// quote aggregator filters and ranks on.
//
// Key attributes:
//   - isActive: inactive couriers are excluded from all quoting
//   - serviceType: EXPRESS, SURFACE or AIR, informational for sellers
//   - isReturnOnly: a courier dedicated to reverse shipments, excluded from
//     forward legs regardless of plan applicability flags
//   - pickupTime: typical time until pickup, used only as a ranking tie-break
//
// Pricing lives in the seller's plan (pricing.CourierPricing), not on the
// courier itself: the same courier can be priced differently per plan.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "BlueDart Express",
//	    courier.ServiceTypeExpress, false, 4*time.Hour)
//	if err != nil {
//	    // Handle construction error
//	}
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the seller-facing name of the courier service
	name string
	// serviceType is the transport mode of the service
	serviceType ServiceType
	// isActive marks whether the courier may be quoted at all
	isActive bool
	// isReturnOnly marks a courier dedicated to reverse shipments
	isReturnOnly bool
	// pickupTime is the typical time until pickup, a ranking tie-break only
	pickupTime time.Duration
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates an active Courier with the specified attributes.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: seller-facing name (must be non-empty)
//   - serviceType: EXPRESS, SURFACE or AIR
//   - isReturnOnly: whether the courier serves reverse shipments only
//   - pickupTime: typical time until pickup (must not be negative)
//
// Returns a validation error aggregating all invalid parameters.
func NewCourier(
	id kernel.UUID,
	name string,
	serviceType ServiceType,
	isReturnOnly bool,
	pickupTime time.Duration,
) (*Courier, error) {
	c := &Courier{
		isActive:     true,
		isReturnOnly: isReturnOnly,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setServiceType(serviceType),
		c.setPickupTime(pickupTime),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including its activity state. The restored courier behaves identically to
// one created through normal domain operations.
func RestoreCourier(
	id kernel.UUID,
	name string,
	serviceType ServiceType,
	isActive bool,
	isReturnOnly bool,
	pickupTime time.Duration,
) (*Courier, error) {
	c, err := NewCourier(id, name, serviceType, isReturnOnly, pickupTime)
	if err != nil {
		return nil, err
	}

	c.isActive = isActive
	return c, nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks that the Courier was created through NewCourier.
// The zero value and nil pointers fail with ErrCourierIsNotConstructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the seller-facing name of the courier service.
func (c *Courier) Name() string {
	return c.name
}

// ServiceType returns the transport mode of the service.
func (c *Courier) ServiceType() ServiceType {
	return c.serviceType
}

// IsActive reports whether the courier may be quoted.
func (c *Courier) IsActive() bool {
	return c.isActive
}

// IsReturnOnly reports whether the courier serves reverse shipments only.
func (c *Courier) IsReturnOnly() bool {
	return c.isReturnOnly
}

// PickupTime returns the typical time until pickup.
// Shorter pickup times win ranking ties between equal totals.
func (c *Courier) PickupTime() time.Duration {
	return c.pickupTime
}

// Activate makes the courier eligible for quoting again.
func (c *Courier) Activate() {
	c.isActive = true
}

// Deactivate excludes the courier from all future quoting.
// Already-issued quotes are unaffected.
func (c *Courier) Deactivate() {
	c.isActive = false
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Courier) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *Courier) setPickupTime(pickupTime time.Duration) error {
	if pickupTime < 0 {
		return ErrPickupTimeIsInvalid
	}

	c.pickupTime = pickupTime
	return nil
}
