package tempscale

import (
	"math"
	"strconv"
	"strings"
)

// MissingValue is returned in place of a NaN temperature.
const MissingValue = -999.0

// Measurement is a reported temperature with its context. Year and
// DeclaredScale are optional; an empty DeclaredScale means none was reported.
type Measurement struct {
	Value         float64
	Uncertainty   float64
	Unit          string
	Year          *int
	DeclaredScale string
}

// NormalizedTemperature is an ITS-90 kelvin value. For missing values and
// unsupported units the unit is whatever was reported.
type NormalizedTemperature struct {
	Value       float64 `json:"value"`
	Uncertainty float64 `json:"uncertainty"`
	Unit        string  `json:"unit"`
}

// Outcome describes which path Normalize took.
type Outcome string

const (
	OutcomeMissing         Outcome = "missing"
	OutcomeUnsupportedUnit Outcome = "unsupported_unit"
	OutcomeAlreadyITS90    Outcome = "its90"
	OutcomeNoScale         Outcome = "no_scale"
	OutcomeConverted       Outcome = "converted"
	// OutcomeOutOfRange marks inputs whose kelvin value or uncertainty is not
	// a finite float64 (overflow during unit conversion, infinite input).
	OutcomeOutOfRange Outcome = "out_of_range"
)

// Result is a normalized temperature plus how it was derived.
type Result struct {
	NormalizedTemperature

	Outcome Outcome
	// Scale is the scale the value was converted from, ScaleNone when no
	// conversion ran.
	Scale Scale
	// Precision is the number of decimal places worth keeping: one more than
	// the kelvin input carried. Zero when no kelvin value was produced.
	Precision int
}

// Normalize converts a measurement to ITS-90 kelvin.
//
// NaN values yield MissingValue with the reported uncertainty and unit.
// Celsius, Fahrenheit and Rankine are converted to kelvin first; any other
// unit is returned unconverted. The scale is then chosen by SelectScale and
// its correction applied. Uncertainty is only touched by the unit factor.
// Anything that is not finite after conversion yields OutcomeOutOfRange with
// the reported inputs, non-finite ones replaced by MissingValue.
func Normalize(m Measurement) Result {
	if math.IsNaN(m.Value) {
		return Result{
			NormalizedTemperature: NormalizedTemperature{Value: MissingValue, Uncertainty: finiteOr(m.Uncertainty, MissingValue), Unit: m.Unit},
			Outcome:               OutcomeMissing,
		}
	}
	if !isFinite(m.Value) || !isFinite(m.Uncertainty) {
		return outOfRange(m)
	}

	unit, _ := ParseUnit(m.Unit)
	k, unc, ok := ToKelvin(m.Value, m.Uncertainty, unit)
	if !ok {
		return Result{
			NormalizedTemperature: NormalizedTemperature{Value: m.Value, Uncertainty: m.Uncertainty, Unit: m.Unit},
			Outcome:               OutcomeUnsupportedUnit,
		}
	}
	if !isFinite(k) || !isFinite(unc) {
		return outOfRange(m)
	}

	res := Result{
		NormalizedTemperature: NormalizedTemperature{Value: k, Uncertainty: unc, Unit: string(Kelvin)},
		Precision:             precisionDigits(k),
	}

	switch scale := SelectScale(k, m.Year, m.DeclaredScale); scale {
	case ScaleNone:
		res.Outcome = OutcomeNoScale
	case ScaleITS90:
		res.Outcome = OutcomeAlreadyITS90
	default:
		v := ToITS90(scale, k)
		if !isFinite(v) {
			return outOfRange(m)
		}
		res.Value = v
		res.Scale = scale
		res.Outcome = OutcomeConverted
	}
	return res
}

func outOfRange(m Measurement) Result {
	return Result{
		NormalizedTemperature: NormalizedTemperature{
			Value:       finiteOr(m.Value, MissingValue),
			Uncertainty: finiteOr(m.Uncertainty, MissingValue),
			Unit:        m.Unit,
		},
		Outcome: OutcomeOutOfRange,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOr(v, fallback float64) float64 {
	if isFinite(v) {
		return v
	}
	return fallback
}

// Rounded returns the value rounded to Precision decimal places. Sentinel
// and unconverted results are returned as is, as are values whose scaling
// would overflow (subnormals, magnitudes near math.MaxFloat64).
func (r Result) Rounded() float64 {
	if r.Precision <= 0 {
		return r.Value
	}
	p := math.Pow10(r.Precision)
	scaled := r.Value * p
	if math.IsInf(p, 0) || math.IsInf(scaled, 0) {
		return r.Value
	}
	return math.Round(scaled) / p
}

// precisionDigits counts the decimal places in v's shortest representation
// and adds one. Integral values count as one place ("300" reads as "300.0").
func precisionDigits(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 2
	}
	return len(s) - i
}
