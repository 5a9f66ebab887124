package pipeline_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/couchcryptid/thermo-data-etl/internal/domain"
	"github.com/couchcryptid/thermo-data-etl/internal/observability"
	"github.com/couchcryptid/thermo-data-etl/internal/pipeline"
	"github.com/couchcryptid/thermo-data-etl/internal/tempscale"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

// mockBatchExtractor returns its events as a single batch, then blocks until
// the context is cancelled to simulate an idle topic.
type mockBatchExtractor struct {
	events []domain.RawEvent
	served atomic.Bool
}

func (m *mockBatchExtractor) ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error) {
	if len(m.events) > 0 && !m.served.Swap(true) {
		if len(m.events) > batchSize {
			return m.events[:batchSize], nil
		}
		return m.events, nil
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

type mockTransformer struct {
	err error
}

func (m *mockTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	if m.err != nil {
		return domain.OutputEvent{}, m.err
	}
	return domain.OutputEvent{Key: raw.Key, Value: raw.Value}, nil
}

type mockLoader struct {
	mu       sync.Mutex
	failures int
	calls    int
	loaded   []domain.OutputEvent
}

func (m *mockLoader) LoadBatch(_ context.Context, events []domain.OutputEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.calls <= m.failures {
		return errors.New("broker unavailable")
	}
	m.loaded = append(m.loaded, events...)
	return nil
}

func (m *mockLoader) Loaded() []domain.OutputEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.OutputEvent(nil), m.loaded...)
}

type mockResolver struct {
	citation domain.Citation
	err      error
	calls    atomic.Int64
}

func (m *mockResolver) LookupCitation(_ context.Context, _ string) (domain.Citation, error) {
	m.calls.Add(1)
	return m.citation, m.err
}

func newTestMetrics() *observability.Metrics {
	return observability.NewMetricsForTesting()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// --- pipeline tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	raw := makeRawEvent(t, "4711", "T", "97.80", "K")

	ext := &mockBatchExtractor{events: []domain.RawEvent{raw}}
	ldr := &mockLoader{}
	metrics := newTestMetrics()

	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), metrics, 10)
	require.Error(t, p.CheckReadiness(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, p.Run(ctx))
	loaded := ldr.Loaded()
	require.Len(t, loaded, 1)
	assert.Equal(t, raw.Value, loaded[0].Value)
	require.NoError(t, p.CheckReadiness(context.Background()))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.MessagesConsumed), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.MessagesProduced), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.PipelineRunning), 0)
}

func TestPipeline_Run_ContextCancellation(t *testing.T) {
	ldr := &mockLoader{}
	p := pipeline.New(&mockBatchExtractor{}, &mockTransformer{}, ldr, discardLogger(), newTestMetrics(), 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Run(ctx))
	assert.Empty(t, ldr.Loaded())
}

func TestPipeline_Run_TransformErrorIsCommitted(t *testing.T) {
	var committed atomic.Bool
	raw := makeRawEvent(t, "4711", "T", "97.80", "K")
	raw.Commit = func(_ context.Context) error {
		committed.Store(true)
		return nil
	}

	ldr := &mockLoader{}
	metrics := newTestMetrics()
	p := pipeline.New(&mockBatchExtractor{events: []domain.RawEvent{raw}},
		&mockTransformer{err: errors.New("bad data")}, ldr, discardLogger(), metrics, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, p.Run(ctx))
	assert.Empty(t, ldr.Loaded())
	assert.True(t, committed.Load())
	assert.Error(t, p.CheckReadiness(context.Background()))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.TransformErrors), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.MessagesSkipped), 0)
}

func TestPipeline_Run_SkipsNonTemperature(t *testing.T) {
	pressure := makeRawEvent(t, "4711", "P", "101.325", "kPa")
	temperature := makeRawEvent(t, "4711", "TM", "1356.2", "K")

	ldr := &mockLoader{}
	metrics := newTestMetrics()
	tfm := pipeline.NewTransformer(nil, metrics, discardLogger())
	p := pipeline.New(&mockBatchExtractor{events: []domain.RawEvent{pressure, temperature}},
		tfm, ldr, discardLogger(), metrics, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, p.Run(ctx))
	require.Len(t, ldr.Loaded(), 1)
	assert.Equal(t, "TM", ldr.Loaded()[0].Headers["property"])
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.MessagesSkipped), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.TransformErrors), 0)
}

func TestPipeline_Run_CommitsAfterLoad(t *testing.T) {
	var committed atomic.Int64
	events := make([]domain.RawEvent, 3)
	for i := range events {
		events[i] = makeRawEvent(t, fmt.Sprint(100+i), "T", "300", "K")
		events[i].Topic = "raw-property-measurements"
		events[i].Offset = int64(i)
		events[i].Commit = func(_ context.Context) error {
			committed.Add(1)
			return nil
		}
	}

	ldr := &mockLoader{}
	p := pipeline.New(&mockBatchExtractor{events: events}, &mockTransformer{}, ldr, discardLogger(), newTestMetrics(), 10)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, p.Run(ctx))
	assert.Len(t, ldr.Loaded(), 3)
	assert.Equal(t, int64(3), committed.Load())
}

func TestPipeline_Run_LoadFailureDoesNotCommit(t *testing.T) {
	var committed atomic.Bool
	raw := makeRawEvent(t, "4711", "T", "300", "K")
	raw.Commit = func(_ context.Context) error {
		committed.Store(true)
		return nil
	}

	// Every load fails; the pipeline backs off until the context expires.
	ldr := &mockLoader{failures: 1000}
	p := pipeline.New(&mockBatchExtractor{events: []domain.RawEvent{raw}}, &mockTransformer{}, ldr, discardLogger(), newTestMetrics(), 10)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, p.Run(ctx))
	assert.Empty(t, ldr.Loaded())
	assert.False(t, committed.Load())
	assert.Error(t, p.CheckReadiness(context.Background()))
}

// --- transformer tests ---

func TestMeasurementTransformer_Transform(t *testing.T) {
	fakeClock := clockwork.NewFakeClockAt(time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC))
	domain.SetClock(fakeClock)
	t.Cleanup(func() { domain.SetClock(nil) })

	rec := domain.RawMeasurementRecord{
		CitationID:       "4711",
		DataSetID:        "88",
		Compounds:        []string{"Cu"},
		Property:         "T",
		Value:            "97.80",
		Uncertainty:      "0.02",
		Units:            "K",
		TemperatureScale: "ITS-27",
	}
	raw := rawFromRecord(t, rec)

	metrics := newTestMetrics()
	tfm := pipeline.NewTransformer(nil, metrics, discardLogger())
	out, err := tfm.Transform(context.Background(), raw)
	require.NoError(t, err)

	var got domain.MeasurementEvent
	require.NoError(t, json.Unmarshal(out.Value, &got))

	reported := 97.80
	want := domain.MeasurementEvent{
		ID:            string(out.Key),
		CitationID:    "4711",
		DataSetID:     "88",
		Compounds:     []string{"Cu"},
		Property:      "T",
		Reported:      domain.Reported{Value: &reported, Uncertainty: 0.02, Unit: "K", Text: "97.80"},
		DeclaredScale: "ITS-27",
		Temperature:   tempscale.NormalizedTemperature{Value: 97.818605, Uncertainty: 0.02, Unit: "K"},
		AppliedScale:  "ITS-27",
		Outcome:       tempscale.OutcomeConverted,
		Precision:     2,
		Valid:         true,

		CitationSource: domain.CitationFromRecord,
		ProcessedAt:    fakeClock.Now(),
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("transformed event mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, map[string]string{
		"property":     "T",
		"outcome":      "converted",
		"processed_at": "2026-03-02T09:30:00Z",
	}, out.Headers)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Normalizations.WithLabelValues("converted", "ITS-27")), 0)
}

func TestMeasurementTransformer_CitationLookup(t *testing.T) {
	year := 1956
	resolver := &mockResolver{citation: domain.Citation{ID: "4711", Year: &year}}

	raw := rawFromRecord(t, domain.RawMeasurementRecord{
		CitationID: "4711",
		Property:   "T",
		Value:      "15.0",
		Units:      "K",
	})

	tfm := pipeline.NewTransformer(resolver, newTestMetrics(), discardLogger())
	out, err := tfm.Transform(context.Background(), raw)
	require.NoError(t, err)

	var got domain.MeasurementEvent
	require.NoError(t, json.Unmarshal(out.Value, &got))
	assert.Equal(t, int64(1), resolver.calls.Load())
	assert.Equal(t, domain.CitationFromLookup, got.CitationSource)
	assert.Equal(t, "NBS-55", got.AppliedScale)
	assert.InDelta(t, 14.999, got.Temperature.Value, 1e-9)
}

func TestMeasurementTransformer_CitationLookupFails(t *testing.T) {
	resolver := &mockResolver{err: errors.New("timeout")}
	raw := rawFromRecord(t, domain.RawMeasurementRecord{
		CitationID: "4711",
		Property:   "T",
		Value:      "15.0",
		Units:      "K",
	})

	tfm := pipeline.NewTransformer(resolver, newTestMetrics(), discardLogger())
	out, err := tfm.Transform(context.Background(), raw)
	require.NoError(t, err)

	var got domain.MeasurementEvent
	require.NoError(t, json.Unmarshal(out.Value, &got))
	assert.Equal(t, domain.CitationFailed, got.CitationSource)
	assert.Equal(t, tempscale.OutcomeNoScale, got.Outcome)
	assert.InDelta(t, 15.0, got.Temperature.Value, 0)
}

func TestMeasurementTransformer_ValidationFailure(t *testing.T) {
	raw := rawFromRecord(t, domain.RawMeasurementRecord{
		CitationID: "4711",
		Property:   "TB",
		Value:      "16000",
		Units:      "K",
		Year:       "1995",
	})

	metrics := newTestMetrics()
	tfm := pipeline.NewTransformer(nil, metrics, discardLogger())
	out, err := tfm.Transform(context.Background(), raw)
	require.NoError(t, err)

	var got domain.MeasurementEvent
	require.NoError(t, json.Unmarshal(out.Value, &got))
	assert.False(t, got.Valid)
	assert.Contains(t, got.ValidationError, "outside")
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ValidationFailures), 0)
}

func TestMeasurementTransformer_OverflowEmittedInvalid(t *testing.T) {
	raw := rawFromRecord(t, domain.RawMeasurementRecord{
		CitationID:  "4711",
		Property:    "T",
		Value:       "1e308",
		Uncertainty: "Inf",
		Units:       "F",
		Year:        "1995",
	})

	metrics := newTestMetrics()
	tfm := pipeline.NewTransformer(nil, metrics, discardLogger())
	out, err := tfm.Transform(context.Background(), raw)
	require.NoError(t, err)

	var got domain.MeasurementEvent
	require.NoError(t, json.Unmarshal(out.Value, &got))
	assert.Equal(t, tempscale.OutcomeOutOfRange, got.Outcome)
	assert.False(t, got.Valid)
	assert.InDelta(t, 0, got.Reported.Uncertainty, 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ValidationFailures), 0)
}

func TestMeasurementTransformer_InvalidJSON(t *testing.T) {
	tfm := pipeline.NewTransformer(nil, newTestMetrics(), discardLogger())
	_, err := tfm.Transform(context.Background(), domain.RawEvent{Value: []byte("not json")})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotTemperature)
}

// --- helpers ---

func makeRawEvent(t *testing.T, citationID, property, value, units string) domain.RawEvent {
	t.Helper()
	return rawFromRecord(t, domain.RawMeasurementRecord{
		CitationID: citationID,
		Property:   property,
		Value:      value,
		Units:      units,
		Year:       "1995",
	})
}

func rawFromRecord(t *testing.T, rec domain.RawMeasurementRecord) domain.RawEvent {
	t.Helper()
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	return domain.RawEvent{
		Key:   []byte(rec.CitationID),
		Value: data,
		Topic: "raw-property-measurements",
	}
}
