package services

import (
	"context"
	"strings"

	"rates/internal/core/domain/model/kernel"
)

// PincodeDirectory supplies the city, state and metro flag for a pincode.
// Implementations live in the adapter layer; the resolver only ever reads
// through this interface and never performs I/O itself.
//
// A pincode absent from the directory must fail with an error wrapping
// errs.ErrObjectNotFound so callers can translate it into a user-facing
// "service unavailable to this pincode" message.
type PincodeDirectory interface {
	Lookup(ctx context.Context, pincode kernel.Pincode) (kernel.PincodeInfo, error)
}

// ZoneResolver is a domain service classifying an origin/destination pincode
// pair into a shipping zone. The zone is the key into every courier's price
// table, so resolution happens exactly once per quote computation, before any
// courier is evaluated.
//
// Rules, first match wins:
//  1. same pincode, or same city and state -> WITHIN_CITY
//  2. same state, different city -> WITHIN_STATE
//  3. both endpoints flagged metro -> WITHIN_METRO
//  4. either state in the north-east set -> NORTH_EAST
//  5. otherwise -> WITHIN_ROI
//
// Resolution is deterministic and total over resolvable pincode pairs. An
// unresolvable pincode aborts the whole quote request - there is no fallback
// zone.
type ZoneResolver struct{}

// NewZoneResolver creates a new ZoneResolver instance.
func NewZoneResolver() ZoneResolver {
	return ZoneResolver{}
}

// Resolve classifies the pickup/delivery pair into a zone using the directory
// for city, state and metro data.
//
// Returns the directory's lookup error unchanged when either pincode is
// unresolvable; every downstream price depends on the zone, so the caller
// must abort the computation.
func (r ZoneResolver) Resolve(
	ctx context.Context,
	directory PincodeDirectory,
	pickup kernel.Pincode,
	delivery kernel.Pincode,
) (kernel.Zone, error) {
	if err := pickup.Validate(); err != nil {
		return kernel.ZoneUnknown, err
	}
	if err := delivery.Validate(); err != nil {
		return kernel.ZoneUnknown, err
	}

	pickupInfo, err := directory.Lookup(ctx, pickup)
	if err != nil {
		return kernel.ZoneUnknown, err
	}

	deliveryInfo, err := directory.Lookup(ctx, delivery)
	if err != nil {
		return kernel.ZoneUnknown, err
	}

	sameState := strings.EqualFold(pickupInfo.State(), deliveryInfo.State())
	sameCity := strings.EqualFold(pickupInfo.City(), deliveryInfo.City())

	switch {
	case pickup.String() == delivery.String() || (sameCity && sameState):
		return kernel.ZoneWithinCity, nil
	case sameState:
		return kernel.ZoneWithinState, nil
	case pickupInfo.IsMetro() && deliveryInfo.IsMetro():
		return kernel.ZoneWithinMetro, nil
	case kernel.IsNorthEastState(pickupInfo.State()) || kernel.IsNorthEastState(deliveryInfo.State()):
		return kernel.ZoneNorthEast, nil
	default:
		return kernel.ZoneWithinROI, nil
	}
}
