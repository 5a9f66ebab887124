package tempscale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Measurement
		want      NormalizedTemperature
		outcome   Outcome
		scale     Scale
		precision int
	}{
		{
			name:      "declared ITS-27 in kelvin",
			in:        Measurement{Value: 97.80, Uncertainty: 0.02, Unit: "K", DeclaredScale: "ITS-27"},
			want:      NormalizedTemperature{Value: 97.818605, Uncertainty: 0.02, Unit: "K"},
			outcome:   OutcomeConverted,
			scale:     ScaleITS27,
			precision: 2,
		},
		{
			name:      "celsius from 1990 is already ITS-90",
			in:        Measurement{Value: 20, Uncertainty: 0.1, Unit: "C", Year: year(1990)},
			want:      NormalizedTemperature{Value: 293.15, Uncertainty: 0.1, Unit: "K"},
			outcome:   OutcomeAlreadyITS90,
			precision: 3,
		},
		{
			name:      "year selects NBS-55",
			in:        Measurement{Value: 15.0, Uncertainty: 0.001, Unit: "K", Year: year(1956)},
			want:      NormalizedTemperature{Value: 14.999, Uncertainty: 0.001, Unit: "K"},
			outcome:   OutcomeConverted,
			scale:     ScaleNBS55,
			precision: 2,
		},
		{
			name:      "fahrenheit scales uncertainty",
			in:        Measurement{Value: 212, Uncertainty: 0.9, Unit: "F", Year: year(1930)},
			want:      NormalizedTemperature{Value: 373.124, Uncertainty: 0.5, Unit: "K"},
			outcome:   OutcomeConverted,
			scale:     ScaleITS27,
			precision: 3,
		},
		{
			name:      "rankine without context",
			in:        Measurement{Value: 491.67, Uncertainty: 0.9, Unit: "R"},
			want:      NormalizedTemperature{Value: 273.15, Uncertainty: 0.5, Unit: "K"},
			outcome:   OutcomeNoScale,
			precision: 3,
		},
		{
			name:      "degree sign accepted",
			in:        Measurement{Value: 20, Uncertainty: 0.1, Unit: "°C", DeclaredScale: "its-90"},
			want:      NormalizedTemperature{Value: 293.15, Uncertainty: 0.1, Unit: "K"},
			outcome:   OutcomeAlreadyITS90,
			precision: 3,
		},
		{
			name:      "pre-1927 passes through",
			in:        Measurement{Value: 300, Uncertainty: 1, Unit: "K", Year: year(1910)},
			want:      NormalizedTemperature{Value: 300, Uncertainty: 1, Unit: "K"},
			outcome:   OutcomeNoScale,
			precision: 2,
		},
		{
			name:    "unsupported unit returned unconverted",
			in:      Measurement{Value: 4200, Uncertainty: 5, Unit: "mK", DeclaredScale: "ITS-27"},
			want:    NormalizedTemperature{Value: 4200, Uncertainty: 5, Unit: "mK"},
			outcome: OutcomeUnsupportedUnit,
		},
		{
			name:    "missing value",
			in:      Measurement{Value: math.NaN(), Uncertainty: 0.5, Unit: "C", Year: year(1950)},
			want:    NormalizedTemperature{Value: MissingValue, Uncertainty: 0.5, Unit: "C"},
			outcome: OutcomeMissing,
		},
		{
			name:    "fahrenheit overflow",
			in:      Measurement{Value: 1e308, Uncertainty: 1, Unit: "F", Year: year(1995)},
			want:    NormalizedTemperature{Value: 1e308, Uncertainty: 1, Unit: "F"},
			outcome: OutcomeOutOfRange,
		},
		{
			name:    "rankine overflow",
			in:      Measurement{Value: -1e308, Unit: "R"},
			want:    NormalizedTemperature{Value: -1e308, Unit: "R"},
			outcome: OutcomeOutOfRange,
		},
		{
			name:    "infinite uncertainty",
			in:      Measurement{Value: 300, Uncertainty: math.Inf(1), Unit: "K", Year: year(1995)},
			want:    NormalizedTemperature{Value: 300, Uncertainty: MissingValue, Unit: "K"},
			outcome: OutcomeOutOfRange,
		},
		{
			name:    "infinite value",
			in:      Measurement{Value: math.Inf(-1), Uncertainty: 0.1, Unit: "K"},
			want:    NormalizedTemperature{Value: MissingValue, Uncertainty: 0.1, Unit: "K"},
			outcome: OutcomeOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.InDelta(t, tt.want.Value, got.Value, 1e-9)
			assert.InDelta(t, tt.want.Uncertainty, got.Uncertainty, 1e-12)
			assert.Equal(t, tt.want.Unit, got.Unit)
			assert.Equal(t, tt.outcome, got.Outcome)
			assert.Equal(t, tt.scale, got.Scale)
			assert.Equal(t, tt.precision, got.Precision)
		})
	}
}

func TestNormalize_RulePrecedence(t *testing.T) {
	got := Normalize(Measurement{Value: 20, Unit: "K", Year: year(1968)})
	assert.Equal(t, ScaleIPTS68, got.Scale)
	assert.InDelta(t, 19.991, got.Value, 1e-9)
}

func TestNormalize_ITS90Idempotent(t *testing.T) {
	first := Normalize(Measurement{Value: 97.80, Unit: "K", DeclaredScale: "ITS-27"})
	second := Normalize(Measurement{Value: first.Value, Unit: first.Unit, DeclaredScale: "ITS-90"})
	assert.Equal(t, first.Value, second.Value)
	assert.Equal(t, OutcomeAlreadyITS90, second.Outcome)
}

func TestNormalize_UncertaintyUntouchedByCorrection(t *testing.T) {
	for _, s := range Scales() {
		got := Normalize(Measurement{Value: 20, Uncertainty: 0.123, Unit: "K", DeclaredScale: s.String()})
		assert.Equal(t, 0.123, got.Uncertainty, s.String())
	}
}

func TestResult_Rounded(t *testing.T) {
	tests := []struct {
		name string
		in   Result
		want float64
	}{
		{"two places", Result{NormalizedTemperature: NormalizedTemperature{Value: 97.818605}, Precision: 2}, 97.82},
		{"three places", Result{NormalizedTemperature: NormalizedTemperature{Value: 373.1239999}, Precision: 3}, 373.124},
		{"no precision", Result{NormalizedTemperature: NormalizedTemperature{Value: MissingValue}}, MissingValue},
		{"subnormal keeps value", Result{NormalizedTemperature: NormalizedTemperature{Value: 5e-324}, Precision: 326}, 5e-324},
		{"huge value keeps value", Result{NormalizedTemperature: NormalizedTemperature{Value: 1.7e308}, Precision: 2}, 1.7e308},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.in.Rounded(), 1e-12)
		})
	}
}

func TestPrecisionDigits(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{97.8, 2},
		{300, 2},
		{293.15, 3},
		{0.001, 4},
		{14.9995, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, precisionDigits(tt.in), "%g", tt.in)
	}
}

func TestNormalize_AlwaysFinite(t *testing.T) {
	inputs := []Measurement{
		{Value: 1e308, Unit: "F"},
		{Value: math.MaxFloat64, Unit: "R", Year: year(1950)},
		{Value: math.MaxFloat64, Unit: "C", Year: year(1970)},
		{Value: 5e-324, Unit: "K", Year: year(1995)},
		{Value: math.NaN(), Uncertainty: math.Inf(1), Unit: "K"},
		{Value: math.Inf(1), Uncertainty: math.NaN(), Unit: "mK"},
	}
	for _, m := range inputs {
		got := Normalize(m)
		for _, v := range []float64{got.Value, got.Uncertainty, got.Rounded()} {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%+v -> %+v", m, got)
		}
	}
}
