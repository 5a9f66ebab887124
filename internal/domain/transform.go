package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/thermo-data-etl/internal/tempscale"
)

// ParseRawEvent deserializes a RawEvent's value into a MeasurementEvent.
// It expects the flat JSON record produced by the collector and rejects
// non-temperature properties with ErrNotTemperature.
func ParseRawEvent(raw RawEvent) (MeasurementEvent, error) {
	var rec RawMeasurementRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return MeasurementEvent{}, fmt.Errorf("parse raw event: %w", err)
	}
	if !IsTemperatureProperty(rec.Property) {
		return MeasurementEvent{}, fmt.Errorf("parse raw event: %q: %w", rec.Property, ErrNotTemperature)
	}

	property := normalizeProperty(rec.Property)
	text := strings.TrimSpace(rec.Value)

	return MeasurementEvent{
		ID:         generateID(rec),
		CitationID: strings.TrimSpace(rec.CitationID),
		DataSetID:  strings.TrimSpace(rec.DataSetID),
		Compounds:  rec.Compounds,
		Property:   property,
		Reported: Reported{
			Value:       parseValue(text),
			Uncertainty: parseFloatOrZero(rec.Uncertainty),
			Unit:        strings.TrimSpace(rec.Units),
			Text:        text,
		},
		Year:          parseYear(rec.Year),
		DeclaredScale: strings.TrimSpace(rec.TemperatureScale),

		RawPayload: raw.Value,
	}, nil
}

// parseValue returns nil for empty, NaN, infinite or unparsable values.
func parseValue(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseFloatOrZero parses a string as float64, returning 0 on failure or for
// NaN and infinities.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseYear accepts "1952" and "1952.0"; anything else is absent.
func parseYear(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if y, err := strconv.Atoi(s); err == nil {
		return &y
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil
	}
	y := int(f)
	return &y
}

// generateID produces a deterministic ID from the record's key fields, so
// reprocessing the same raw record yields the same ID.
func generateID(rec RawMeasurementRecord) string {
	input := strings.Join([]string{
		strings.TrimSpace(rec.CitationID),
		strings.TrimSpace(rec.DataSetID),
		normalizeProperty(rec.Property),
		strings.TrimSpace(rec.Value),
		strings.TrimSpace(rec.Units),
		strings.TrimSpace(rec.Year),
		strings.TrimSpace(rec.TemperatureScale),
	}, "|")
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	prop := strings.ToLower(normalizeProperty(rec.Property))
	if prop == "" {
		return short
	}
	return prop + "-" + short
}

// Measurement converts the event's reported value and context into the
// normalizer's input.
func (e MeasurementEvent) Measurement() tempscale.Measurement {
	v := math.NaN()
	if e.Reported.Value != nil {
		v = *e.Reported.Value
	}
	return tempscale.Measurement{
		Value:         v,
		Uncertainty:   e.Reported.Uncertainty,
		Unit:          e.Reported.Unit,
		Year:          e.Year,
		DeclaredScale: e.DeclaredScale,
	}
}

// EnrichMeasurementEvent normalizes the reported temperature to ITS-90 kelvin,
// validates the result, and stamps the processing time.
func EnrichMeasurementEvent(event MeasurementEvent) MeasurementEvent {
	res := tempscale.Normalize(event.Measurement())

	event.Temperature = res.NormalizedTemperature
	event.AppliedScale = res.Scale.String()
	event.Outcome = res.Outcome
	event.Precision = res.Precision

	reason := ValidateTemperature(res)
	event.Valid = reason == ""
	event.ValidationError = reason

	event.ProcessedAt = clock.Now().UTC()
	return event
}

// SerializeMeasurementEvent encodes an event for the sink topic, keyed by ID.
func SerializeMeasurementEvent(event MeasurementEvent) (OutputEvent, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize measurement event: %w", err)
	}
	return OutputEvent{
		Key:   []byte(event.ID),
		Value: value,
		Headers: map[string]string{
			"property":     event.Property,
			"outcome":      string(event.Outcome),
			"processed_at": event.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
