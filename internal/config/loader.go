package config

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "SWATCH_"
	envFileKey = "SWATCH_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SWATCH_CONFIG is set
//  3. env (prefix SWATCH_)
func Load(_ context.Context) (*Config, error) {
	cfg := New()
	k := koanf.New(".")

	if path := os.Getenv(envFileKey); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// SWATCH_QUEUE_SIZE -> queue_size; flat keys keep their underscores.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.QueueSize <= 0:
		return fmt.Errorf("%w: queue_size must be positive, got %d", ErrInvalidConfig, c.QueueSize)
	case c.WorkerCount <= 0:
		return fmt.Errorf("%w: worker_count must be positive, got %d", ErrInvalidConfig, c.WorkerCount)
	case c.MaxNearest <= 0:
		return fmt.Errorf("%w: max_nearest must be positive, got %d", ErrInvalidConfig, c.MaxNearest)
	case c.MaxUploadBytes <= 0:
		return fmt.Errorf("%w: max_upload_bytes must be positive, got %d", ErrInvalidConfig, c.MaxUploadBytes)
	case c.AnalysisMaxDimension < 0:
		return fmt.Errorf("%w: analysis_max_dimension must not be negative", ErrInvalidConfig)
	case c.MaxImagePixels <= 0:
		return fmt.Errorf("%w: max_image_pixels must be positive, got %d", ErrInvalidConfig, c.MaxImagePixels)
	case c.JobRetention <= 0:
		return fmt.Errorf("%w: job_retention must be positive", ErrInvalidConfig)
	}

	if !metricNamePattern.MatchString(c.MetricsNamespace) {
		return fmt.Errorf("%w: metrics_namespace %q", ErrInvalidConfig, c.MetricsNamespace)
	}
	if c.MetricsSubsystem != "" && !metricNamePattern.MatchString(c.MetricsSubsystem) {
		return fmt.Errorf("%w: metrics_subsystem %q", ErrInvalidConfig, c.MetricsSubsystem)
	}
	for i := 1; i < len(c.MetricsBuckets); i++ {
		if c.MetricsBuckets[i] <= c.MetricsBuckets[i-1] {
			return fmt.Errorf("%w: metrics_buckets must be strictly increasing", ErrInvalidConfig)
		}
	}
	for name := range c.MetricsLabels {
		if !metricNamePattern.MatchString(name) {
			return fmt.Errorf("%w: metrics_labels name %q", ErrInvalidConfig, name)
		}
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}

	switch c.TableSource {
	case "builtin":
	case "file":
		if c.TablePath == "" {
			return fmt.Errorf("%w: table_path is required for the file source", ErrInvalidConfig)
		}
	case "sqlite", "postgres":
		if c.TableDSN == "" {
			return fmt.Errorf("%w: table_dsn is required for the %s source", ErrInvalidConfig, c.TableSource)
		}
	default:
		return fmt.Errorf("%w: table_source %q", ErrInvalidConfig, c.TableSource)
	}
	return nil
}
