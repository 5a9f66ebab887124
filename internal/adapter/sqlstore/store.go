// Package sqlstore persists normalized measurements to SQLite or PostgreSQL.
// It implements pipeline.BatchLoader so either database can replace the Kafka
// sink topic.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/thermo-data-etl/internal/config"
	"github.com/couchcryptid/thermo-data-etl/internal/domain"
	"github.com/couchcryptid/thermo-data-etl/internal/observability"
	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // driver: sqlite
)

// Store writes normalized measurements in batches.
type Store struct {
	db      *sqlx.DB
	metrics *observability.Metrics
	logger  *slog.Logger
}

// Open connects to the database for the given sink driver (config.SinkSQLite
// or config.SinkPostgres) and ensures the schema exists.
func Open(ctx context.Context, driver, dsn string, metrics *observability.Metrics, logger *slog.Logger) (*Store, error) {
	var drvName, schema string
	switch driver {
	case config.SinkSQLite:
		drvName, schema = "sqlite", schemaSQLite
	case config.SinkPostgres:
		drvName, schema = "pgx", schemaPostgres
	default:
		return nil, fmt.Errorf("unsupported sql driver: %s", driver)
	}

	db, err := sqlx.Open(drvName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == config.SinkSQLite {
		// One writer; also keeps ":memory:" databases on a single connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	logger.Info("sql sink ready", "driver", driver)
	return &Store{db: db, metrics: metrics, logger: logger}, nil
}

// LoadBatch decodes each output event and inserts it in a single
// transaction. Events whose ID is already stored are ignored, so redelivered
// messages are harmless.
func (s *Store) LoadBatch(ctx context.Context, events []domain.OutputEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]measurementRow, len(events))
	for i, ev := range events {
		var m domain.MeasurementEvent
		if err := json.Unmarshal(ev.Value, &m); err != nil {
			return fmt.Errorf("decode event %s: %w", ev.Key, err)
		}
		rows[i] = newMeasurementRow(m, ev.Value)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareNamedContext(ctx, insertMeasurement)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	var written int64
	for _, row := range rows {
		res, err := stmt.ExecContext(ctx, row)
		if err != nil {
			return fmt.Errorf("insert %s: %w", row.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			written += n
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.metrics.RowsWritten.Add(float64(written))
	if dup := int64(len(rows)) - written; dup > 0 {
		s.logger.Debug("duplicate measurements ignored", "count", dup)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// measurementRow is the flattened column set of normalized_temperatures.
type measurementRow struct {
	ID                    string          `db:"id"`
	CitationID            string          `db:"citation_id"`
	DataSetID             string          `db:"data_set_id"`
	Property              string          `db:"property"`
	ReportedValue         sql.NullFloat64 `db:"reported_value"`
	ReportedUncertainty   float64         `db:"reported_uncertainty"`
	ReportedUnit          string          `db:"reported_unit"`
	CitationYear          sql.NullInt64   `db:"citation_year"`
	DeclaredScale         string          `db:"declared_scale"`
	NormalizedValue       float64         `db:"normalized_value"`
	NormalizedUncertainty float64         `db:"normalized_uncertainty"`
	NormalizedUnit        string          `db:"normalized_unit"`
	AppliedScale          string          `db:"applied_scale"`
	Outcome               string          `db:"outcome"`
	Decimals              int             `db:"decimals"`
	Valid                 bool            `db:"valid"`
	ValidationError       string          `db:"validation_error"`
	ProcessedAt           time.Time       `db:"processed_at"`
	Payload               string          `db:"payload"`
}

func newMeasurementRow(m domain.MeasurementEvent, payload []byte) measurementRow {
	row := measurementRow{
		ID:                    m.ID,
		CitationID:            m.CitationID,
		DataSetID:             m.DataSetID,
		Property:              m.Property,
		ReportedUncertainty:   m.Reported.Uncertainty,
		ReportedUnit:          m.Reported.Unit,
		DeclaredScale:         m.DeclaredScale,
		NormalizedValue:       m.Temperature.Value,
		NormalizedUncertainty: m.Temperature.Uncertainty,
		NormalizedUnit:        m.Temperature.Unit,
		AppliedScale:          m.AppliedScale,
		Outcome:               string(m.Outcome),
		Decimals:              m.Precision,
		Valid:                 m.Valid,
		ValidationError:       m.ValidationError,
		ProcessedAt:           m.ProcessedAt.UTC(),
		Payload:               string(payload),
	}
	if m.Reported.Value != nil {
		row.ReportedValue = sql.NullFloat64{Float64: *m.Reported.Value, Valid: true}
	}
	if m.Year != nil {
		row.CitationYear = sql.NullInt64{Int64: int64(*m.Year), Valid: true}
	}
	return row
}

const insertMeasurement = `
INSERT INTO normalized_temperatures (
  id, citation_id, data_set_id, property,
  reported_value, reported_uncertainty, reported_unit, citation_year, declared_scale,
  normalized_value, normalized_uncertainty, normalized_unit,
  applied_scale, outcome, decimals, valid, validation_error, processed_at, payload
) VALUES (
  :id, :citation_id, :data_set_id, :property,
  :reported_value, :reported_uncertainty, :reported_unit, :citation_year, :declared_scale,
  :normalized_value, :normalized_uncertainty, :normalized_unit,
  :applied_scale, :outcome, :decimals, :valid, :validation_error, :processed_at, :payload
)
ON CONFLICT (id) DO NOTHING`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS normalized_temperatures (
  id TEXT PRIMARY KEY,
  citation_id TEXT NOT NULL DEFAULT '',
  data_set_id TEXT NOT NULL DEFAULT '',
  property TEXT NOT NULL,
  reported_value REAL,
  reported_uncertainty REAL NOT NULL DEFAULT 0,
  reported_unit TEXT NOT NULL DEFAULT '',
  citation_year INTEGER,
  declared_scale TEXT NOT NULL DEFAULT '',
  normalized_value REAL NOT NULL,
  normalized_uncertainty REAL NOT NULL DEFAULT 0,
  normalized_unit TEXT NOT NULL DEFAULT '',
  applied_scale TEXT NOT NULL DEFAULT '',
  outcome TEXT NOT NULL,
  decimals INTEGER NOT NULL DEFAULT 0,
  valid INTEGER NOT NULL,
  validation_error TEXT NOT NULL DEFAULT '',
  processed_at TIMESTAMP NOT NULL,
  payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_normalized_temperatures_citation
  ON normalized_temperatures (citation_id);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS normalized_temperatures (
  id TEXT PRIMARY KEY,
  citation_id TEXT NOT NULL DEFAULT '',
  data_set_id TEXT NOT NULL DEFAULT '',
  property TEXT NOT NULL,
  reported_value DOUBLE PRECISION,
  reported_uncertainty DOUBLE PRECISION NOT NULL DEFAULT 0,
  reported_unit TEXT NOT NULL DEFAULT '',
  citation_year INTEGER,
  declared_scale TEXT NOT NULL DEFAULT '',
  normalized_value DOUBLE PRECISION NOT NULL,
  normalized_uncertainty DOUBLE PRECISION NOT NULL DEFAULT 0,
  normalized_unit TEXT NOT NULL DEFAULT '',
  applied_scale TEXT NOT NULL DEFAULT '',
  outcome TEXT NOT NULL,
  decimals INTEGER NOT NULL DEFAULT 0,
  valid BOOLEAN NOT NULL,
  validation_error TEXT NOT NULL DEFAULT '',
  processed_at TIMESTAMPTZ NOT NULL,
  payload JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_normalized_temperatures_citation
  ON normalized_temperatures (citation_id);
`
