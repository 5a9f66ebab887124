package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "thermo_etl"

// Metrics holds the Prometheus counters, histograms, and gauges for the ETL pipeline.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	MessagesSkipped  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Normalization metrics.
	Normalizations     *prometheus.CounterVec // labels: outcome, scale
	ValidationFailures prometheus.Counter

	// Citation lookup metrics.
	CitationRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	CitationCache       *prometheus.CounterVec // labels: result={hit,miss}
	CitationAPIDuration prometheus.Histogram
	CitationEnabled     prometheus.Gauge

	// Sink and API metrics.
	RowsWritten       prometheus.Counter
	NormalizeRequests *prometheus.CounterVec // labels: status={ok,bad_request}
}

func newMetrics() *Metrics {
	return &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total messages read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total measurements written to the sink.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total transformation failures.",
		}),
		MessagesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_skipped_total",
			Help:      "Messages skipped because their property is not a temperature.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		Normalizations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "normalizations_total",
			Help:      "Normalized measurements by outcome and source scale.",
		}, []string{"outcome", "scale"}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Normalized measurements outside the plausible range.",
		}),
		CitationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "citation_requests_total",
			Help:      "Property database citation lookups by outcome.",
		}, []string{"outcome"}),
		CitationCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "citation_cache_total",
			Help:      "Citation cache lookups by result.",
		}, []string{"result"}),
		CitationAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "citation_api_duration_seconds",
			Help:      "Property database request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		CitationEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "citation_lookup_enabled",
			Help:      "1 when citation lookups are enabled, 0 otherwise.",
		}),
		RowsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sql_rows_written_total",
			Help:      "Rows inserted by the SQL sink (duplicates excluded).",
		}),
		NormalizeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "normalize_requests_total",
			Help:      "Synchronous normalize API requests by status.",
		}, []string{"status"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.MessagesSkipped,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.Normalizations,
		m.ValidationFailures,
		m.CitationRequests,
		m.CitationCache,
		m.CitationAPIDuration,
		m.CitationEnabled,
		m.RowsWritten,
		m.NormalizeRequests,
	}
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics registered on a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	m := newMetrics()
	prometheus.NewRegistry().MustRegister(m.collectors()...)
	return m
}
