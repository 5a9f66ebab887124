package domain

import (
	"math"

	"github.com/couchcryptid/thermo-data-etl/internal/tempscale"
)

// TemperatureInput is a standalone measurement as accepted by the normalize
// API and the offline CLI. A null or absent value is treated as missing.
type TemperatureInput struct {
	Value       *float64 `json:"value"`
	Uncertainty float64  `json:"uncertainty"`
	Unit        string   `json:"unit"`
	Year        *int     `json:"year,omitempty"`
	Scale       string   `json:"scale,omitempty"`
}

// TemperatureOutput is the normalized form of a TemperatureInput.
type TemperatureOutput struct {
	Value           float64           `json:"value"`
	Uncertainty     float64           `json:"uncertainty"`
	Unit            string            `json:"unit"`
	Outcome         tempscale.Outcome `json:"outcome"`
	AppliedScale    string            `json:"applied_scale,omitempty"`
	Precision       int               `json:"precision,omitempty"`
	Valid           bool              `json:"valid"`
	ValidationError string            `json:"validation_error,omitempty"`
}

func (in TemperatureInput) Measurement() tempscale.Measurement {
	v := math.NaN()
	if in.Value != nil {
		v = *in.Value
	}
	return tempscale.Measurement{
		Value:         v,
		Uncertainty:   in.Uncertainty,
		Unit:          in.Unit,
		Year:          in.Year,
		DeclaredScale: in.Scale,
	}
}

// NormalizeInput normalizes and validates a single input. With round set the
// value is rounded to the captured precision.
func NormalizeInput(in TemperatureInput, round bool) TemperatureOutput {
	res := tempscale.Normalize(in.Measurement())
	reason := ValidateTemperature(res)

	value := res.Value
	if round {
		value = res.Rounded()
	}
	return TemperatureOutput{
		Value:           value,
		Uncertainty:     res.Uncertainty,
		Unit:            res.Unit,
		Outcome:         res.Outcome,
		AppliedScale:    res.Scale.String(),
		Precision:       res.Precision,
		Valid:           reason == "",
		ValidationError: reason,
	}
}
