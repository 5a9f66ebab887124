package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/thermo-data-etl/internal/domain"
	"github.com/couchcryptid/thermo-data-etl/internal/observability"
)

// MeasurementTransformer implements Transformer: parse, optional citation
// lookup, ITS-90 normalization, serialization.
type MeasurementTransformer struct {
	resolver domain.CitationResolver
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewTransformer creates a MeasurementTransformer. Pass a nil resolver to
// disable citation lookups.
func NewTransformer(resolver domain.CitationResolver, metrics *observability.Metrics, logger *slog.Logger) *MeasurementTransformer {
	return &MeasurementTransformer{
		resolver: resolver,
		metrics:  metrics,
		logger:   logger,
	}
}

func (t *MeasurementTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	event, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	event = domain.EnrichWithCitation(ctx, event, t.resolver, t.logger)
	event = domain.EnrichMeasurementEvent(event)

	t.metrics.Normalizations.WithLabelValues(string(event.Outcome), event.AppliedScale).Inc()
	if !event.Valid {
		t.metrics.ValidationFailures.Inc()
		t.logger.Debug("implausible temperature",
			"event_id", event.ID,
			"citation_id", event.CitationID,
			"reason", event.ValidationError,
		)
	}

	return domain.SerializeMeasurementEvent(event)
}
