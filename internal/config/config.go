// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - New builds a Config with defaults; Load layers a YAML file and env on top.
//   - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"runtime"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// TableSource selects the reference table: builtin, file, sqlite or postgres.
	TableSource string `koanf:"table_source"`

	// TablePath is the YAML/JSON file read when TableSource is "file".
	TablePath string `koanf:"table_path"`

	// TableDSN is the database DSN for the sqlite and postgres sources.
	TableDSN string `koanf:"table_dsn"`

	// CacheSize bounds the match cache; zero or less disables eviction.
	CacheSize int `koanf:"cache_size"`

	// MaxNearest caps the count accepted by /nearest.
	MaxNearest int `koanf:"max_nearest"`

	// QueueSize bounds the analysis job queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of analysis workers.
	WorkerCount int `koanf:"worker_count"`

	// MaxUploadBytes caps image uploads.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// AnalysisMaxDimension downscales decoded images whose longest side exceeds it.
	AnalysisMaxDimension int `koanf:"analysis_max_dimension"`

	// MaxImagePixels rejects images whose declared width*height exceeds it.
	MaxImagePixels int64 `koanf:"max_image_pixels"`

	// MetricsNamespace prefixes every exported metric name.
	MetricsNamespace string `koanf:"metrics_namespace"`

	// MetricsSubsystem is inserted between the namespace and the metric name.
	MetricsSubsystem string `koanf:"metrics_subsystem"`

	// MetricsBuckets overrides the latency histogram buckets (milliseconds).
	MetricsBuckets []float64 `koanf:"metrics_buckets"`

	// MetricsLabels are constant labels attached to every metric.
	MetricsLabels map[string]string `koanf:"metrics_labels"`

	// JobRetention is how long finished analysis jobs are kept.
	JobRetention time.Duration `koanf:"job_retention"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":9080",
		TableSource:          "builtin",
		CacheSize:            50_000,
		MaxNearest:           50,
		QueueSize:            1_024,
		WorkerCount:          runtime.NumCPU(),
		MaxUploadBytes:       20 << 20,
		AnalysisMaxDimension: 2_048,
		MaxImagePixels:       40_000_000,
		MetricsNamespace:     "swatch",
		JobRetention:         15 * time.Minute,
	}
}
