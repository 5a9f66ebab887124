package domain

import (
	"context"
	"log/slog"
)

// Citation is the publication-level context of a measurement.
type Citation struct {
	ID               string
	Year             *int
	TemperatureScale string
}

// Empty reports whether the citation carries no usable context.
func (c Citation) Empty() bool {
	return c.Year == nil && c.TemperatureScale == ""
}

// CitationResolver looks up citation metadata in the property database.
type CitationResolver interface {
	LookupCitation(ctx context.Context, citationID string) (Citation, error)
}

// Citation source labels.
const (
	CitationFromRecord = "record"
	CitationFromLookup = "lookup"
	CitationFailed     = "failed"
)

// EnrichWithCitation fills in year and declared scale from the citation when
// the record carried neither. A nil resolver disables lookups; a failed lookup
// leaves the event unchanged apart from CitationSource (graceful degradation).
func EnrichWithCitation(ctx context.Context, event MeasurementEvent, resolver CitationResolver, logger *slog.Logger) MeasurementEvent {
	if event.Year != nil || event.DeclaredScale != "" {
		event.CitationSource = CitationFromRecord
		return event
	}
	if resolver == nil || event.CitationID == "" {
		return event
	}

	c, err := resolver.LookupCitation(ctx, event.CitationID)
	if err != nil {
		logger.Warn("citation lookup failed",
			"event_id", event.ID,
			"citation_id", event.CitationID,
			"error", err,
		)
		event.CitationSource = CitationFailed
		return event
	}
	if c.Empty() {
		return event
	}

	event.Year = c.Year
	event.DeclaredScale = c.TemperatureScale
	event.CitationSource = CitationFromLookup
	return event
}
