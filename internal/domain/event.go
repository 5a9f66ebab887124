package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/thermo-data-etl/internal/tempscale"
)

// RawMeasurementRecord is the flat JSON record produced by the collector.
type RawMeasurementRecord struct {
	CitationID       string   `json:"citation_id"`
	DataSetID        string   `json:"data_set_id"`
	Compounds        []string `json:"compounds,omitempty"`
	Property         string   `json:"property"` // variable code, e.g. "T", "TM"
	Value            string   `json:"value"`
	Uncertainty      string   `json:"uncertainty"`
	Units            string   `json:"units"`
	Year             string   `json:"year"`
	TemperatureScale string   `json:"temperature_scale"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Reported is the measurement as published. Value is nil when missing.
type Reported struct {
	Value       *float64 `json:"value"`
	Uncertainty float64  `json:"uncertainty"`
	Unit        string   `json:"unit"`
	Text        string   `json:"text,omitempty"` // literal value as received
}

// MeasurementEvent is the domain-rich representation after parsing and
// normalization.
type MeasurementEvent struct {
	ID            string   `json:"id"`
	CitationID    string   `json:"citation_id,omitempty"`
	DataSetID     string   `json:"data_set_id,omitempty"`
	Compounds     []string `json:"compounds,omitempty"`
	Property      string   `json:"property"`
	Reported      Reported `json:"reported"`
	Year          *int     `json:"year,omitempty"`
	DeclaredScale string   `json:"declared_scale,omitempty"`

	// Normalization results.
	Temperature  tempscale.NormalizedTemperature `json:"temperature"`
	AppliedScale string                          `json:"applied_scale,omitempty"`
	Outcome      tempscale.Outcome               `json:"outcome"`
	Precision    int                             `json:"precision,omitempty"`

	Valid           bool   `json:"valid"`
	ValidationError string `json:"validation_error,omitempty"`

	CitationSource string `json:"citation_source,omitempty"` // "record", "lookup", "failed"

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
