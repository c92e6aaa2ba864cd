package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/swatch/internal/domain/model"
	"github.com/okian/swatch/internal/domain/pantone"
	"github.com/okian/swatch/pkg/metrics"
)

const (
	defaultRetention     = 15 * time.Minute
	defaultPruneInterval = 30 * time.Second
)

// MemoryJobStore is an in-memory JobStore with a background pruner.
type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[string]model.JobRecord

	retention     time.Duration
	pruneInterval time.Duration
	now           func() time.Time

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopChan chan struct{}
}

var _ JobStore = (*MemoryJobStore)(nil)

// NewMemoryJobStore creates a store and starts its pruner, which runs until
// ctx is done or Close is called.
func NewMemoryJobStore(ctx context.Context, opts ...Option) *MemoryJobStore {
	s := &MemoryJobStore{
		jobs:          make(map[string]model.JobRecord),
		retention:     defaultRetention,
		pruneInterval: defaultPruneInterval,
		now:           time.Now,
		stopChan:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	metrics.UpdateAnalysisJobsStored(0)
	s.startPruner(ctx)
	return s
}

func (s *MemoryJobStore) startPruner(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.pruneInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.Prune(ctx, s.now().Add(-s.retention))
			}
		}
	}()
}

// Close stops the pruner.
func (s *MemoryJobStore) Close() error {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
	return nil
}

// Create registers a pending job.
func (s *MemoryJobStore) Create(_ context.Context, job model.AnalysisJob) error { //nolint:gocritic // hugeParam: mirrors queue payload
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[job.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateJob, job.ID)
	}
	submitted := job.SubmittedAt
	if submitted.IsZero() {
		submitted = s.now()
	}
	s.jobs[job.ID] = model.JobRecord{
		ID:          job.ID,
		Status:      model.JobPending,
		Width:       job.Width,
		Height:      job.Height,
		Format:      job.Format,
		SubmittedAt: submitted,
	}
	metrics.UpdateAnalysisJobsStored(len(s.jobs))
	return nil
}

// Complete stores the analysis result of a pending job.
func (s *MemoryJobStore) Complete(_ context.Context, id string, colors []pantone.MatchResult, stats pantone.AnalyzeStats) error {
	return s.finish(id, func(r *model.JobRecord) {
		r.Status = model.JobDone
		if colors == nil {
			colors = []pantone.MatchResult{}
		}
		r.Colors = colors
		r.Stats = &stats
	})
}

// Fail marks a pending job as failed.
func (s *MemoryJobStore) Fail(_ context.Context, id string, cause error) error {
	return s.finish(id, func(r *model.JobRecord) {
		r.Status = model.JobFailed
		if cause != nil {
			r.Error = cause.Error()
		}
	})
}

func (s *MemoryJobStore) finish(id string, apply func(*model.JobRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.jobs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rec.Finished() {
		return fmt.Errorf("%w: %s", ErrJobFinished, id)
	}
	apply(&rec)
	rec.FinishedAt = s.now()
	s.jobs[id] = rec
	metrics.RecordAnalysisJob(string(rec.Status))
	return nil
}

// Get returns a job record.
func (s *MemoryJobStore) Get(_ context.Context, id string) (model.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.jobs[id]
	if !ok {
		return model.JobRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, nil
}

// Count returns the number of stored jobs.
func (s *MemoryJobStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// Prune removes finished jobs that finished before olderThan. Pending jobs stay.
func (s *MemoryJobStore) Prune(_ context.Context, olderThan time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, rec := range s.jobs {
		if rec.Finished() && rec.FinishedAt.Before(olderThan) {
			delete(s.jobs, id)
			removed++
		}
	}
	metrics.UpdateAnalysisJobsStored(len(s.jobs))
	return removed
}
