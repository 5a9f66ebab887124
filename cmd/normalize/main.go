// Command normalize converts a JSON array of reported temperatures to ITS-90
// kelvin without Kafka. Each element has the same shape as a POST
// /v1/normalize body; results are written in input order.
//
// Usage:
//
//	go run ./cmd/normalize --in measurements.json --out normalized.json --round
//	cat measurements.json | go run ./cmd/normalize > normalized.json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/thermo-data-etl/internal/domain"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("normalize failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	in := flag.String("in", "-", "input JSON array (- for stdin)")
	out := flag.String("out", "-", "output path (- for stdout)")
	workers := flag.IntP("workers", "w", runtime.NumCPU(), "concurrent normalizers")
	round := flag.Bool("round", false, "round values to the reported precision")
	flag.Parse()

	logger := sharedobs.NewLogger(
		sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inputs, err := readInputs(*in)
	if err != nil {
		return err
	}

	results, err := normalizeAll(ctx, inputs, *workers, *round)
	if err != nil {
		return err
	}

	if err := writeOutputs(*out, results); err != nil {
		return err
	}

	var invalid int
	for i := range results {
		if !results[i].Valid {
			invalid++
		}
	}
	logger.Info("normalized measurements", "count", len(results), "invalid", invalid, "workers", *workers)
	return nil
}

func readInputs(path string) ([]domain.TemperatureInput, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var inputs []domain.TemperatureInput
	if err := json.NewDecoder(r).Decode(&inputs); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return inputs, nil
}

// normalizeAll fans the inputs out over at most workers goroutines. Each
// result lands at its input's index.
func normalizeAll(ctx context.Context, inputs []domain.TemperatureInput, workers int, round bool) ([]domain.TemperatureOutput, error) {
	results := make([]domain.TemperatureOutput, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = domain.NormalizeInput(inputs[i], round)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeOutputs(path string, results []domain.TemperatureOutput) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
