package domain

import (
	"errors"
	"strings"
)

// ErrNotTemperature is returned for records whose property is not a
// temperature.
var ErrNotTemperature = errors.New("property is not a temperature")

var temperatureProperties = map[string]string{
	"T":   "temperature",
	"TL":  "lower temperature",
	"TU":  "upper temperature",
	"TB":  "boiling temperature",
	"TC":  "critical temperature",
	"TE":  "eutectic temperature",
	"TM":  "monotectic temperature",
	"TBN": "normal boiling temperature",
	"TMN": "normal melting temperature",
	"TT":  "phase transition temperature",
	"TPT": "triple point temperature",
	"TR":  "radiance temperature",
	"TX":  "reference temperature",
	"TUC": "upper consolute temperature",
}

// IsTemperatureProperty reports whether code is a temperature variable code.
func IsTemperatureProperty(code string) bool {
	_, ok := temperatureProperties[normalizeProperty(code)]
	return ok
}

// PropertyName returns the descriptive name for a temperature variable code.
func PropertyName(code string) string {
	return temperatureProperties[normalizeProperty(code)]
}

func normalizeProperty(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
