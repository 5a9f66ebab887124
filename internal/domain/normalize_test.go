package domain

import (
	"encoding/json"
	"testing"

	"github.com/couchcryptid/thermo-data-etl/internal/tempscale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInput(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }
	year := func(y int) *int { return &y }

	tests := []struct {
		name  string
		in    TemperatureInput
		round bool
		want  TemperatureOutput
	}{
		{
			name: "pre-1990 year converts",
			in:   TemperatureInput{Value: ptr(20.0), Uncertainty: 0.1, Unit: "K", Year: year(1968)},
			want: TemperatureOutput{Value: 19.991, Uncertainty: 0.1, Unit: "K", Outcome: tempscale.OutcomeConverted, AppliedScale: "IPTS-68", Precision: 2, Valid: true},
		},
		{
			name:  "declared scale wins and rounds",
			in:    TemperatureInput{Value: ptr(300), Unit: "K", Year: year(2001), Scale: "ipts-68"},
			round: true,
			want:  TemperatureOutput{Value: 299.99, Unit: "K", Outcome: tempscale.OutcomeConverted, AppliedScale: "IPTS-68", Precision: 2, Valid: true},
		},
		{
			name:  "subnormal survives rounding",
			in:    TemperatureInput{Value: ptr(5e-324), Unit: "K", Year: year(1995)},
			round: true,
			want:  TemperatureOutput{Value: 5e-324, Unit: "K", Outcome: tempscale.OutcomeAlreadyITS90, Precision: 325, Valid: true},
		},
		{
			name: "overflow is out of range",
			in:   TemperatureInput{Value: ptr(1e308), Unit: "F", Year: year(1995)},
			want: TemperatureOutput{Value: 1e308, Unit: "F", Outcome: tempscale.OutcomeOutOfRange, ValidationError: "value not representable in kelvin"},
		},
		{
			name: "null value is missing",
			in:   TemperatureInput{Unit: "K", Uncertainty: 1.5},
			want: TemperatureOutput{Value: tempscale.MissingValue, Uncertainty: 1.5, Unit: "K", Outcome: tempscale.OutcomeMissing, ValidationError: "missing value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeInput(tt.in, tt.round)
			assert.InDelta(t, tt.want.Value, got.Value, 1e-9)
			got.Value = tt.want.Value
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemperatureInput_JSON(t *testing.T) {
	var in TemperatureInput
	require.NoError(t, json.Unmarshal([]byte(`{"value":null,"unit":"C","year":1930,"scale":"ITS-27"}`), &in))

	assert.Nil(t, in.Value)
	m := in.Measurement()
	assert.True(t, m.Value != m.Value, "missing value decodes to NaN")
	require.NotNil(t, m.Year)
	assert.Equal(t, 1930, *m.Year)
	assert.Equal(t, "ITS-27", m.DeclaredScale)
}
