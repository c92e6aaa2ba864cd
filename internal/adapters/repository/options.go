package repository

import "time"

// Option applies a configuration option to the MemoryJobStore.
type Option func(*MemoryJobStore)

// WithRetention sets how long finished jobs are kept by the background pruner.
func WithRetention(d time.Duration) Option {
	return func(s *MemoryJobStore) {
		if d > 0 {
			s.retention = d
		}
	}
}

// WithPruneInterval sets how often the background pruner runs.
func WithPruneInterval(d time.Duration) Option {
	return func(s *MemoryJobStore) {
		if d > 0 {
			s.pruneInterval = d
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryJobStore) {
		if now != nil {
			s.now = now
		}
	}
}
