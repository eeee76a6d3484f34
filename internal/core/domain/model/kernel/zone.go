package kernel

import (
	"fmt"
	"strings"

	"rates/internal/pkg/errs"
)

// Zone is the coarse geographic bucket a shipment falls into.
// It is the key into a courier's zone pricing table: every price row is
// selected by the zone resolved from the origin/destination pincode pair.
//
// Zones are resolved per computation and never stored against a shipment
// until a quote is accepted.
type Zone int

const (
	// ZoneUnknown represents an invalid or undefined zone.
	// This value (0) helps catch uninitialized Zone values.
	ZoneUnknown Zone = iota

	// ZoneWithinCity covers shipments whose endpoints share a pincode
	// or a city+state pair.
	ZoneWithinCity

	// ZoneWithinState covers shipments within one state but across cities.
	ZoneWithinState

	// ZoneWithinMetro covers shipments between two metro service areas.
	ZoneWithinMetro

	// ZoneWithinROI covers everything else: rest-of-India shipments.
	ZoneWithinROI

	// ZoneNorthEast covers shipments touching a north-eastern state.
	ZoneNorthEast
)

// getZoneStrings returns the wire/storage names for all zones.
func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		ZoneUnknown:     "UNKNOWN",
		ZoneWithinCity:  "WITHIN_CITY",
		ZoneWithinState: "WITHIN_STATE",
		ZoneWithinMetro: "WITHIN_METRO",
		ZoneWithinROI:   "WITHIN_ROI",
		ZoneNorthEast:   "NORTH_EAST",
	}
}

// getValidZoneStrings returns only the zones a price row may be keyed by.
func getValidZoneStrings() map[Zone]string {
	//nolint:exhaustive // ZoneUnknown is intentionally excluded as it's invalid
	return map[Zone]string{
		ZoneWithinCity:  "WITHIN_CITY",
		ZoneWithinState: "WITHIN_STATE",
		ZoneWithinMetro: "WITHIN_METRO",
		ZoneWithinROI:   "WITHIN_ROI",
		ZoneNorthEast:   "NORTH_EAST",
	}
}

// AllZones returns the valid zones in resolver priority order.
// Useful for building complete rate cards.
func AllZones() []Zone {
	return []Zone{ZoneWithinCity, ZoneWithinState, ZoneWithinMetro, ZoneWithinROI, ZoneNorthEast}
}

// Validate checks if the Zone value is valid.
// ZoneUnknown (0) and any other values are invalid.
func (z Zone) Validate() error {
	if _, ok := getValidZoneStrings()[z]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("zone is invalid", fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// String returns the storage name of the zone, e.g. "WITHIN_CITY".
// Safe to call on any Zone value, including invalid ones.
func (z Zone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return "UNKNOWN"
}

// ZoneFromString parses a zone from its storage name.
// Returns an error for names that do not map to a valid zone.
func ZoneFromString(s string) (Zone, error) {
	for zone, str := range getValidZoneStrings() {
		if str == s {
			return zone, nil
		}
	}
	return ZoneUnknown, errs.NewValueIsInvalidErrorWithCause("zone is invalid",
		fmt.Errorf("%q is not a valid zone", s))
}

// getNorthEastStates returns the fixed set of north-eastern states.
// Any shipment with an endpoint in one of these states that did not already
// match a closer zone resolves to ZoneNorthEast.
func getNorthEastStates() []string {
	return []string{
		"Arunachal Pradesh",
		"Assam",
		"Manipur",
		"Meghalaya",
		"Mizoram",
		"Nagaland",
		"Sikkim",
		"Tripura",
	}
}

// IsNorthEastState reports whether the given state belongs to the fixed
// north-east set. The comparison is case-insensitive.
func IsNorthEastState(state string) bool {
	for _, s := range getNorthEastStates() {
		if strings.EqualFold(s, state) {
			return true
		}
	}
	return false
}
