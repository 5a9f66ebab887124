package tempscale

import "strings"

// Unit is a temperature unit symbol.
type Unit string

const (
	Kelvin     Unit = "K"
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
	Rankine    Unit = "R"
)

const celsiusOffset = 273.15

// ParseUnit maps common spellings ("K", "°C", "degF", "kelvin") to a Unit.
// Unrecognised input is returned verbatim with ok=false.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "°")) {
	case "k", "kelvin":
		return Kelvin, true
	case "c", "degc", "celsius":
		return Celsius, true
	case "f", "degf", "fahrenheit":
		return Fahrenheit, true
	case "r", "degr", "rankine":
		return Rankine, true
	}
	return Unit(s), false
}

// ToKelvin converts a value and its uncertainty to kelvin. Offsets leave the
// uncertainty alone; the 5/9 factor for Fahrenheit and Rankine scales it.
// Unknown units report false and return the inputs unchanged.
func ToKelvin(v, unc float64, u Unit) (float64, float64, bool) {
	switch u {
	case Kelvin:
		return v, unc, true
	case Celsius:
		return v + celsiusOffset, unc, true
	case Fahrenheit:
		return (v-32)*5/9 + celsiusOffset, unc * 5 / 9, true
	case Rankine:
		return v * 5 / 9, unc * 5 / 9, true
	}
	return v, unc, false
}

// FromKelvin is the inverse of ToKelvin.
func FromKelvin(v, unc float64, u Unit) (float64, float64, bool) {
	switch u {
	case Kelvin:
		return v, unc, true
	case Celsius:
		return v - celsiusOffset, unc, true
	case Fahrenheit:
		return (v-celsiusOffset)*9/5 + 32, unc * 9 / 5, true
	case Rankine:
		return v * 9 / 5, unc * 9 / 5, true
	}
	return v, unc, false
}
