// Command validate performs integrity checks between a raw measurement
// fixture and its normalized counterpart (as written by cmd/collect). It
// verifies record counts, field presence, normalization correctness and
// output schema consistency.
//
// Usage:
//
//	go run ./cmd/validate \
//	  --raw-json data/mock/trc_tm_raw.json \
//	  --normalized-json data/mock/trc_tm_normalized.json
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/couchcryptid/thermo-data-etl/internal/domain"
	"github.com/couchcryptid/thermo-data-etl/internal/tempscale"
	flag "github.com/spf13/pflag"
)

// tolerance for recomputed normalized values.
const tolerance = 1e-9

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	rawJSON := flag.String("raw-json", "", "path to raw measurement fixture")
	normalizedJSON := flag.String("normalized-json", "", "path to normalized measurement fixture")
	flag.Parse()

	if *rawJSON == "" || *normalizedJSON == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*rawJSON, *normalizedJSON); code != 0 {
		os.Exit(code)
	}
}

func run(rawPath, normalizedPath string) int {
	fmt.Println("=== Measurement Fixture Validation ===")
	fmt.Println()

	records, err := loadJSON[domain.RawMeasurementRecord](rawPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load raw JSON: %v\n", err)
		return 1
	}
	events, err := loadJSON[domain.MeasurementEvent](normalizedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load normalized JSON: %v\n", err)
		return 1
	}

	parsed := parseRecords(records)
	phases := []*phase{
		validateRawIntegrity(records),
		validateParity(parsed, events),
		validateNormalization(parsed, events),
		validateSchema(events),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d raw, %d temperature, %d normalized\n", len(records), len(parsed), len(events))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// parseRecords runs the raw records through the ETL parser, keeping only
// temperature records, keyed by event ID.
func parseRecords(records []domain.RawMeasurementRecord) map[string]domain.MeasurementEvent {
	out := make(map[string]domain.MeasurementEvent, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			continue
		}
		ev, err := domain.ParseRawEvent(domain.RawEvent{Value: data})
		if err != nil {
			continue
		}
		out[ev.ID] = ev
	}
	return out
}

// ── Phase 1: raw fixture ──

func validateRawIntegrity(records []domain.RawMeasurementRecord) *phase {
	p := &phase{name: "Phase 1: Raw fixture integrity"}
	fmt.Println("Phase 1: Raw fixture integrity")

	if len(records) == 0 {
		p.errorf("raw fixture is empty")
		return p
	}

	seen := map[string]int{}
	for i, rec := range records {
		if rec.Property == "" {
			p.errorf("record %d: empty property", i)
		}
		if rec.Units == "" && rec.Value != "" {
			p.errorf("record %d (%s/%s): value without units", i, rec.CitationID, rec.DataSetID)
		}
		key := rec.CitationID + "/" + rec.DataSetID + "/" + rec.Property + "/" + rec.Value + "/" + rec.Units
		if prev, ok := seen[key]; ok {
			p.errorf("record %d duplicates record %d (%s)", i, prev, key)
		}
		seen[key] = i
	}

	fmt.Printf("  %d records, %d distinct\n", len(records), len(seen))
	return p
}

// ── Phase 2: parity ──

func validateParity(parsed map[string]domain.MeasurementEvent, events []domain.MeasurementEvent) *phase {
	p := &phase{name: "Phase 2: Raw/normalized parity"}
	fmt.Println("Phase 2: Raw/normalized parity")

	if len(parsed) != len(events) {
		p.errorf("count mismatch: %d temperature records, %d normalized events", len(parsed), len(events))
	}

	ids := make(map[string]bool, len(events))
	for _, e := range events {
		if ids[e.ID] {
			p.errorf("duplicate normalized id %s", e.ID)
		}
		ids[e.ID] = true
		if _, ok := parsed[e.ID]; !ok {
			p.errorf("normalized event %s has no raw record", e.ID)
		}
	}
	for id := range parsed {
		if !ids[id] {
			p.errorf("raw record %s was not normalized", id)
		}
	}

	fmt.Printf("  %d ids matched\n", len(ids))
	return p
}

// ── Phase 3: normalization ──

func validateNormalization(parsed map[string]domain.MeasurementEvent, events []domain.MeasurementEvent) *phase {
	p := &phase{name: "Phase 3: Normalization correctness"}
	fmt.Println("Phase 3: Normalization correctness")

	var checked int
	for _, e := range events {
		raw, ok := parsed[e.ID]
		if !ok {
			continue
		}
		want := domain.EnrichMeasurementEvent(raw)
		checked++

		if !closeEnough(want.Temperature.Value, e.Temperature.Value) {
			p.errorf("%s: value %v, recomputed %v", e.ID, e.Temperature.Value, want.Temperature.Value)
		}
		if want.Outcome != e.Outcome {
			p.errorf("%s: outcome %q, recomputed %q", e.ID, e.Outcome, want.Outcome)
		}
		if want.AppliedScale != e.AppliedScale {
			p.errorf("%s: scale %q, recomputed %q", e.ID, e.AppliedScale, want.AppliedScale)
		}
		if want.Precision != e.Precision {
			p.errorf("%s: precision %d, recomputed %d", e.ID, e.Precision, want.Precision)
		}
		if want.Valid != e.Valid {
			p.errorf("%s: valid %t, recomputed %t", e.ID, e.Valid, want.Valid)
		}
	}

	fmt.Printf("  %d events recomputed\n", checked)
	return p
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

// ── Phase 4: schema ──

var knownOutcomes = map[tempscale.Outcome]bool{
	tempscale.OutcomeMissing:         true,
	tempscale.OutcomeUnsupportedUnit: true,
	tempscale.OutcomeAlreadyITS90:    true,
	tempscale.OutcomeNoScale:         true,
	tempscale.OutcomeConverted:       true,
	tempscale.OutcomeOutOfRange:      true,
}

func validateSchema(events []domain.MeasurementEvent) *phase {
	p := &phase{name: "Phase 4: Schema consistency"}
	fmt.Println("Phase 4: Schema consistency")

	for _, e := range events {
		if err := checkEvent(e); err != nil {
			p.errorf("%s: %v", e.ID, err)
		}
	}
	return p
}

func checkEvent(e domain.MeasurementEvent) error {
	switch {
	case e.ID == "":
		return errors.New("missing id")
	case !knownOutcomes[e.Outcome]:
		return fmt.Errorf("unknown outcome %q", e.Outcome)
	case (e.Outcome == tempscale.OutcomeConverted) != (e.AppliedScale != ""):
		return fmt.Errorf("outcome %q with applied scale %q", e.Outcome, e.AppliedScale)
	case e.Valid && e.ValidationError != "":
		return errors.New("valid event carries a validation error")
	case !e.Valid && e.ValidationError == "":
		return errors.New("invalid event without a validation error")
	case e.Valid && e.Temperature.Unit != "K":
		return fmt.Errorf("valid event in unit %q", e.Temperature.Unit)
	case e.ProcessedAt.IsZero():
		return errors.New("missing processed_at")
	}
	return nil
}
