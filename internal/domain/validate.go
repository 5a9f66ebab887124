package domain

import (
	"fmt"
	"math"

	"github.com/couchcryptid/thermo-data-etl/internal/tempscale"
)

// Plausible kelvin range for any temperature property, both bounds exclusive.
const (
	minPlausibleKelvin = 0.0
	maxPlausibleKelvin = 14000.0
)

// ValidateTemperature checks that a normalized temperature is physically
// plausible. It returns a short reason for rejection, or "" when valid.
func ValidateTemperature(r tempscale.Result) string {
	switch r.Outcome {
	case tempscale.OutcomeMissing:
		return "missing value"
	case tempscale.OutcomeUnsupportedUnit:
		return fmt.Sprintf("unsupported unit %q", r.Unit)
	case tempscale.OutcomeOutOfRange:
		return "value not representable in kelvin"
	}
	v := r.Value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("value: %g", v)
	}
	if v <= minPlausibleKelvin || v >= maxPlausibleKelvin {
		return fmt.Sprintf("value: %g K outside (%g, %g)", v, minPlausibleKelvin, maxPlausibleKelvin)
	}
	return ""
}
