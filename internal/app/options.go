package service

import (
	"time"

	"github.com/okian/swatch/internal/domain/pantone"
	"github.com/okian/swatch/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTable replaces the built-in reference table. source is reported by GetStats.
func WithTable(colors []pantone.Color, source string) Option {
	return func(s *Service) {
		if colors != nil {
			s.table = colors
			s.tableSource = source
		}
	}
}

// WithCacheSize bounds the match cache; zero or less disables eviction.
func WithCacheSize(size int) Option {
	return func(s *Service) {
		s.cacheSize = size
	}
}

// WithMaxNearest caps the count accepted by Nearest.
func WithMaxNearest(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxNearest = n
		}
	}
}

// WithWorkerCount sets the number of analysis workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum number of queued analysis jobs.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithMaxDimension downscales decoded images whose longest side exceeds n.
func WithMaxDimension(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxDimension = n
		}
	}
}

// WithMaxImagePixels rejects images whose declared pixel count exceeds n.
func WithMaxImagePixels(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxPixels = n
		}
	}
}

// WithJobRetention sets how long finished analysis jobs are kept.
func WithJobRetention(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.jobRetention = d
		}
	}
}

// WithIDGenerator replaces the job id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
