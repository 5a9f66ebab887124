package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	httpadapter "github.com/couchcryptid/thermo-data-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/thermo-data-etl/internal/adapter/kafka"
	"github.com/couchcryptid/thermo-data-etl/internal/adapter/sqlstore"
	"github.com/couchcryptid/thermo-data-etl/internal/adapter/trc"
	"github.com/couchcryptid/thermo-data-etl/internal/config"
	"github.com/couchcryptid/thermo-data-etl/internal/domain"
	"github.com/couchcryptid/thermo-data-etl/internal/observability"
	"github.com/couchcryptid/thermo-data-etl/internal/pipeline"
)

type closingLoader interface {
	pipeline.BatchLoader
	io.Closer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Citation lookups are feature-flagged via TRC_ENABLED / TRC_AUTH_KEY.
	var resolver domain.CitationResolver
	if cfg.TRCEnabled {
		client := trc.NewClient(cfg.TRCBaseURL, cfg.TRCAuthKey, cfg.TRCTimeout, metrics, logger)
		resolver = trc.NewCachedResolver(client, cfg.TRCCacheSize, metrics)
		metrics.CitationEnabled.Set(1)
		logger.Info("citation lookup enabled", "cache_size", cfg.TRCCacheSize, "timeout", cfg.TRCTimeout)
	} else {
		logger.Info("citation lookup disabled")
	}

	sink, err := openSink(ctx, cfg, metrics, logger)
	if err != nil {
		logger.Error("failed to open sink", "driver", cfg.SinkDriver, "error", err)
		os.Exit(1)
	}

	reader := kafkaadapter.NewReader(cfg, logger)
	transformer := pipeline.NewTransformer(resolver, metrics, logger)

	p := pipeline.New(reader, transformer, sink, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, metrics, cfg.CORSOrigins, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := sink.Close(); err != nil {
		logger.Error("sink close error", "driver", cfg.SinkDriver, "error", err)
	}

	logger.Info("shutdown complete")
}

// openSink returns the Kafka writer or an SQL store depending on SINK_DRIVER.
func openSink(ctx context.Context, cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) (closingLoader, error) {
	switch cfg.SinkDriver {
	case config.SinkSQLite, config.SinkPostgres:
		store, err := sqlstore.Open(ctx, cfg.SinkDriver, cfg.SinkDSN, metrics, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return kafkaadapter.NewWriter(cfg, logger), nil
	}
}
