package sqlstore

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/thermo-data-etl/internal/config"
	"github.com/couchcryptid/thermo-data-etl/internal/domain"
	"github.com/couchcryptid/thermo-data-etl/internal/observability"
	"github.com/couchcryptid/thermo-data-etl/internal/tempscale"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), config.SinkSQLite, ":memory:",
		observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func outputEvent(t *testing.T, m domain.MeasurementEvent) domain.OutputEvent {
	t.Helper()
	out, err := domain.SerializeMeasurementEvent(m)
	require.NoError(t, err)
	return out
}

func sampleEvent(id string) domain.MeasurementEvent {
	reported := 97.8
	year := 1934
	return domain.MeasurementEvent{
		ID:           id,
		CitationID:   "4711",
		DataSetID:    "88",
		Property:     "T",
		Reported:     domain.Reported{Value: &reported, Uncertainty: 0.02, Unit: "K", Text: "97.8"},
		Year:         &year,
		Temperature:  tempscale.NormalizedTemperature{Value: 97.818605, Uncertainty: 0.02, Unit: "K"},
		AppliedScale: "ITS-27",
		Outcome:      tempscale.OutcomeConverted,
		Precision:    2,
		Valid:        true,
		ProcessedAt:  time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC),
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mongo", "", observability.NewMetricsForTesting(), slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestStore_LoadBatch(t *testing.T) {
	s := openTestStore(t)

	missing := sampleEvent("t-missing")
	missing.Reported.Value = nil
	missing.Year = nil
	missing.Temperature = tempscale.NormalizedTemperature{Value: tempscale.MissingValue, Unit: "K"}
	missing.AppliedScale = ""
	missing.Outcome = tempscale.OutcomeMissing
	missing.Precision = 0
	missing.Valid = false
	missing.ValidationError = "missing value"

	err := s.LoadBatch(context.Background(), []domain.OutputEvent{
		outputEvent(t, sampleEvent("t-0001")),
		outputEvent(t, missing),
	})
	require.NoError(t, err)
	assert.InDelta(t, 2, testutil.ToFloat64(s.metrics.RowsWritten), 0)

	var got struct {
		Value        float64         `db:"normalized_value"`
		Scale        string          `db:"applied_scale"`
		Outcome      string          `db:"outcome"`
		Decimals     int             `db:"decimals"`
		Valid        bool            `db:"valid"`
		Reported     sql.NullFloat64 `db:"reported_value"`
		CitationYear sql.NullInt64   `db:"citation_year"`
	}
	const q = `SELECT normalized_value, applied_scale, outcome, decimals, valid, reported_value, citation_year
		FROM normalized_temperatures WHERE id = ?`

	require.NoError(t, s.db.GetContext(context.Background(), &got, q, "t-0001"))
	assert.InDelta(t, 97.818605, got.Value, 1e-9)
	assert.Equal(t, "ITS-27", got.Scale)
	assert.Equal(t, "converted", got.Outcome)
	assert.Equal(t, 2, got.Decimals)
	assert.True(t, got.Valid)
	assert.Equal(t, sql.NullFloat64{Float64: 97.8, Valid: true}, got.Reported)
	assert.Equal(t, sql.NullInt64{Int64: 1934, Valid: true}, got.CitationYear)

	require.NoError(t, s.db.GetContext(context.Background(), &got, q, "t-missing"))
	assert.InDelta(t, tempscale.MissingValue, got.Value, 0)
	assert.Equal(t, "missing", got.Outcome)
	assert.False(t, got.Valid)
	assert.False(t, got.Reported.Valid)
	assert.False(t, got.CitationYear.Valid)
}

func TestStore_LoadBatch_DuplicatesIgnored(t *testing.T) {
	s := openTestStore(t)
	ev := outputEvent(t, sampleEvent("t-0001"))

	require.NoError(t, s.LoadBatch(context.Background(), []domain.OutputEvent{ev}))
	require.NoError(t, s.LoadBatch(context.Background(), []domain.OutputEvent{ev, outputEvent(t, sampleEvent("t-0002"))}))

	var count int
	require.NoError(t, s.db.GetContext(context.Background(), &count, `SELECT COUNT(*) FROM normalized_temperatures`))
	assert.Equal(t, 2, count)
	assert.InDelta(t, 2, testutil.ToFloat64(s.metrics.RowsWritten), 0)
}

func TestStore_LoadBatch_InvalidPayloadRollsBack(t *testing.T) {
	s := openTestStore(t)

	err := s.LoadBatch(context.Background(), []domain.OutputEvent{
		outputEvent(t, sampleEvent("t-0001")),
		{Key: []byte("broken"), Value: []byte("{")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	var count int
	require.NoError(t, s.db.GetContext(context.Background(), &count, `SELECT COUNT(*) FROM normalized_temperatures`))
	assert.Equal(t, 0, count)
}

func TestStore_LoadBatch_Empty(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.LoadBatch(context.Background(), nil))
}

func TestOpen_SQLiteUsesQuestionBindvars(t *testing.T) {
	s := openTestStore(t)
	assert.Equal(t, "sqlite", s.db.DriverName())
	assert.Equal(t, sqlx.QUESTION, sqlx.BindType(s.db.DriverName()))
	assert.Equal(t, "SELECT ? , ?", s.db.Rebind("SELECT ? , ?"))
}

func TestOpen_SchemaIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	_, err := s.db.ExecContext(context.Background(), schemaSQLite)
	require.NoError(t, err)
}
