// Command collect pulls temperature measurements from the metals and alloys
// property database, flattens them into raw records and either writes them
// as fixtures or publishes them to the source topic. The normalized fixture is
// produced with the actual domain package so it matches pipeline output.
//
// Usage:
//
//	go run ./cmd/collect \
//	  --compounds Cu,Ni --start-year 1927 --end-year 1989 --property TM \
//	  --raw-out data/mock/trc_tm_raw.json \
//	  --normalized-out data/mock/trc_tm_normalized.json
//
//	go run ./cmd/collect --response saved_search.json --property T --publish
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	kafkaadapter "github.com/couchcryptid/thermo-data-etl/internal/adapter/kafka"
	"github.com/couchcryptid/thermo-data-etl/internal/adapter/trc"
	"github.com/couchcryptid/thermo-data-etl/internal/config"
	"github.com/couchcryptid/thermo-data-etl/internal/domain"
	"github.com/couchcryptid/thermo-data-etl/internal/observability"
	"github.com/jonboulle/clockwork"
	flag "github.com/spf13/pflag"
)

// fixtureTime stamps ProcessedAt in the normalized fixture.
var fixtureTime = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

type options struct {
	compounds     []string
	excludeAll    bool
	startYear     int
	endYear       int
	property      string
	response      string
	rawOut        string
	normalizedOut string
	publish       bool
}

func main() {
	if err := run(); err != nil {
		slog.Error("collect failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resp, err := loadResponse(ctx, cfg, opts, logger)
	if err != nil {
		return err
	}

	records := trc.Flatten(resp, opts.property)
	logger.Info("flattened search response", "entries", len(resp.Data), "records", len(records), "property", opts.property)

	if opts.rawOut != "" {
		if err := writeJSON(opts.rawOut, records); err != nil {
			return fmt.Errorf("writing raw fixture: %w", err)
		}
		logger.Info("wrote raw fixture", "path", opts.rawOut)
	}

	normalized, err := normalizeRecords(records)
	if err != nil {
		return err
	}
	if opts.normalizedOut != "" {
		if err := writeJSON(opts.normalizedOut, normalized); err != nil {
			return fmt.Errorf("writing normalized fixture: %w", err)
		}
		logger.Info("wrote normalized fixture", "path", opts.normalizedOut)
	}

	if opts.publish {
		if err := publish(ctx, cfg, records, logger); err != nil {
			return err
		}
	}

	printStats(normalized)
	return nil
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("collect", flag.ContinueOnError)
	fs.StringSliceVar(&opts.compounds, "compounds", nil, "required compounds (comma separated)")
	fs.BoolVar(&opts.excludeAll, "exclude-all", true, "only systems made entirely of --compounds")
	fs.IntVar(&opts.startYear, "start-year", 0, "earliest publication year")
	fs.IntVar(&opts.endYear, "end-year", 0, "latest publication year")
	fs.StringVarP(&opts.property, "property", "p", "T", "temperature variable code to extract")
	fs.StringVar(&opts.response, "response", "", "read a saved search response instead of calling the API")
	fs.StringVar(&opts.rawOut, "raw-out", "", "output path for raw record fixture")
	fs.StringVar(&opts.normalizedOut, "normalized-out", "", "output path for normalized fixture")
	fs.BoolVar(&opts.publish, "publish", false, "publish raw records to the source topic")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if !domain.IsTemperatureProperty(opts.property) {
		return options{}, fmt.Errorf("--property %q is not a temperature variable", opts.property)
	}
	if opts.startYear != 0 && opts.endYear != 0 && opts.startYear > opts.endYear {
		return options{}, fmt.Errorf("--start-year %d is after --end-year %d", opts.startYear, opts.endYear)
	}
	if opts.rawOut == "" && opts.normalizedOut == "" && !opts.publish {
		fs.PrintDefaults()
		return options{}, errors.New("nothing to do: set --raw-out, --normalized-out or --publish")
	}
	return opts, nil
}

// searchRequest narrows by compounds when given and by property code
// otherwise.
func (o options) searchRequest() trc.SearchRequest {
	req := trc.SearchRequest{
		StartYear: o.startYear,
		EndYear:   o.endYear,
	}
	if len(o.compounds) > 0 {
		req.RequiredCompounds = o.compounds
		req.ExcludeAll = o.excludeAll
	} else {
		req.PropertySearchCode = o.property
	}
	return req
}

func loadResponse(ctx context.Context, cfg *config.Config, opts options, logger *slog.Logger) (*trc.SearchResponse, error) {
	if opts.response != "" {
		data, err := os.ReadFile(opts.response)
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		var resp trc.SearchResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, fmt.Errorf("decode response %s: %w", opts.response, err)
		}
		return &resp, nil
	}

	if cfg.TRCAuthKey == "" {
		return nil, errors.New("TRC_AUTH_KEY is required unless --response is set")
	}
	client := trc.NewClient(cfg.TRCBaseURL, cfg.TRCAuthKey, cfg.TRCTimeout, observability.NewMetrics(), logger)
	resp, err := client.Search(ctx, opts.searchRequest())
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return resp, nil
}

// normalizeRecords runs each record through the ETL domain transform with a
// frozen clock.
func normalizeRecords(records []domain.RawMeasurementRecord) ([]domain.MeasurementEvent, error) {
	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	events := make([]domain.MeasurementEvent, 0, len(records))
	for _, rec := range records {
		value, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshal record: %w", err)
		}
		parsed, err := domain.ParseRawEvent(domain.RawEvent{Value: value, Timestamp: fixtureTime})
		if err != nil {
			return nil, fmt.Errorf("record %s/%s: %w", rec.CitationID, rec.DataSetID, err)
		}
		events = append(events, domain.EnrichMeasurementEvent(parsed))
	}
	return events, nil
}

// toOutputEvents keys each raw record by citation so a citation's records
// share a partition.
func toOutputEvents(records []domain.RawMeasurementRecord) ([]domain.OutputEvent, error) {
	out := make([]domain.OutputEvent, 0, len(records))
	for _, rec := range records {
		value, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshal record: %w", err)
		}
		out = append(out, domain.OutputEvent{
			Key:   []byte(rec.CitationID),
			Value: value,
			Headers: map[string]string{
				"property": rec.Property,
				"source":   "trc",
			},
		})
	}
	return out, nil
}

func publish(ctx context.Context, cfg *config.Config, records []domain.RawMeasurementRecord, logger *slog.Logger) error {
	events, err := toOutputEvents(records)
	if err != nil {
		return err
	}

	w := kafkaadapter.NewTopicWriter(cfg.KafkaBrokers, cfg.KafkaSourceTopic, logger)
	defer w.Close()

	for start := 0; start < len(events); start += cfg.BatchSize {
		end := min(start+cfg.BatchSize, len(events))
		if err := w.LoadBatch(ctx, events[start:end]); err != nil {
			return fmt.Errorf("publish records %d-%d: %w", start, end, err)
		}
	}
	logger.Info("published raw records", "topic", cfg.KafkaSourceTopic, "count", len(events))
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// statsResult holds aggregated counts for printStats reporting.
type statsResult struct {
	outcomes map[string]int
	scales   map[string]int
	valid    int
}

func collectStats(events []domain.MeasurementEvent) statsResult {
	s := statsResult{
		outcomes: map[string]int{},
		scales:   map[string]int{},
	}
	for i := range events {
		e := &events[i]
		s.outcomes[string(e.Outcome)]++
		if e.AppliedScale != "" {
			s.scales[e.AppliedScale]++
		}
		if e.Valid {
			s.valid++
		}
	}
	return s
}

func printStats(events []domain.MeasurementEvent) {
	stats := collectStats(events)

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d (valid=%d)\n", len(events), stats.valid)
	fmt.Printf("By outcome: %s\n", formatCounts(stats.outcomes))
	fmt.Printf("By scale: %s\n", formatCounts(stats.scales))
}

func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}
