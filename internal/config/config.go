package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Sink drivers.
const (
	SinkKafka    = "kafka"
	SinkSQLite   = "sqlite"
	SinkPostgres = "postgres"
)

const defaultSQLiteDSN = "file:thermo.db?_pragma=busy_timeout(5000)"

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration
	CORSOrigins      []string

	BatchSize          int
	BatchFlushInterval time.Duration

	// Property database (citation lookup) configuration.
	TRCBaseURL   string
	TRCAuthKey   string
	TRCEnabled   bool
	TRCTimeout   time.Duration
	TRCCacheSize int

	// Sink selection. Kafka writes to KafkaSinkTopic; sqlite and postgres
	// write to SinkDSN.
	SinkDriver string
	SinkDSN    string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	trcTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("TRC_TIMEOUT", "5s"))
	if err != nil || trcTimeout <= 0 {
		return nil, errors.New("invalid TRC_TIMEOUT")
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	trcAuthKey := os.Getenv("TRC_AUTH_KEY")
	trcEnabled := trcAuthKey != ""
	if v := os.Getenv("TRC_ENABLED"); v != "" {
		trcEnabled = v == "true"
	}

	sinkDriver := strings.ToLower(sharedcfg.EnvOrDefault("SINK_DRIVER", SinkKafka))
	sinkDSN := os.Getenv("SINK_DSN")
	if sinkDSN == "" && sinkDriver == SinkSQLite {
		sinkDSN = defaultSQLiteDSN
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "raw-property-measurements"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "normalized-temperatures"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "thermo-data-etl"),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		CORSOrigins:        splitList(sharedcfg.EnvOrDefault("CORS_ORIGINS", "*")),
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		TRCBaseURL:   strings.TrimRight(sharedcfg.EnvOrDefault("TRC_BASE_URL", "https://trc.nist.gov/MetalsAlloyAPI"), "/"),
		TRCAuthKey:   trcAuthKey,
		TRCEnabled:   trcEnabled,
		TRCTimeout:   trcTimeout,
		TRCCacheSize: parseTRCCacheSize(),

		SinkDriver: sinkDriver,
		SinkDSN:    sinkDSN,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" && cfg.SinkDriver == SinkKafka {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	if cfg.TRCEnabled && cfg.TRCAuthKey == "" {
		return nil, errors.New("TRC_ENABLED is true but TRC_AUTH_KEY is not set")
	}
	switch cfg.SinkDriver {
	case SinkKafka, SinkSQLite:
	case SinkPostgres:
		if cfg.SinkDSN == "" {
			return nil, errors.New("SINK_DSN is required for the postgres sink")
		}
	default:
		return nil, fmt.Errorf("unknown SINK_DRIVER %q", cfg.SinkDriver)
	}

	return cfg, nil
}

func parseTRCCacheSize() int {
	if s := os.Getenv("TRC_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
