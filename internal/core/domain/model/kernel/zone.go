package kernel

import (
	"fmt"

	"picking/internal/pkg/errs"
)

// Zone is a value object identifying a physical warehouse zone.
// Tasks are always scoped to exactly one zone, and zones partition
// storage locations between them.
//
// The zero value of Zone is invalid; valid zones are Zone1, Zone2 and Zone3.
//
// Example usage:
//
//	zone := kernel.Zone1
//	if err := zone.Validate(); err != nil {
//	    // handle invalid zone
//	}
type Zone int

const (
	// ZoneUnknown represents an invalid or undefined zone.
	// This value (0) helps catch uninitialized Zone values.
	ZoneUnknown Zone = iota

	// Zone1 is the main picking floor (national-alphabet rows А through П).
	Zone1

	// Zone2 is the far picking floor (national-alphabet rows Р through Я,
	// plus the Latin Z rows).
	Zone2

	// Zone3 is the remote annex identified by a literal storage code
	// rather than a row letter.
	Zone3
)

// getZoneStrings returns a map of Zone values to their string representations.
func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		ZoneUnknown: "Unknown",
		Zone1:       "Zone1",
		Zone2:       "Zone2",
		Zone3:       "Zone3",
	}
}

// AllZones returns every valid zone in ascending order.
// Useful for iteration in reports and read models.
func AllZones() []Zone {
	return []Zone{Zone1, Zone2, Zone3}
}

// ZoneFromInt converts a raw integer (e.g. from persistence) into a Zone.
// Returns an error if the integer does not map to a valid zone.
func ZoneFromInt(v int) (Zone, error) {
	z := Zone(v)
	if err := z.Validate(); err != nil {
		return ZoneUnknown, err
	}
	return z, nil
}

// Validate checks if the Zone value is valid.
//
// Valid zones are: Zone1, Zone2, Zone3.
// ZoneUnknown (0) and any other values are invalid.
func (z Zone) Validate() error {
	if z != Zone1 && z != Zone2 && z != Zone3 {
		return errs.NewValueIsInvalidErrorWithCause("zone is invalid",
			fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// String returns the human-readable name of the zone.
// Implements fmt.Stringer and is safe to call on any Zone value.
func (z Zone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return "Unknown"
}

// IsEqual compares two zones for equality.
func (z Zone) IsEqual(other Zone) bool {
	return z == other
}
