// Package repository stores analysis job state between submission and retrieval.
package repository

import (
	"context"
	"time"

	"github.com/okian/swatch/internal/domain/model"
	"github.com/okian/swatch/internal/domain/pantone"
)

// JobStore provides read/write access to analysis job records.
type JobStore interface {
	// Create registers a pending job. Returns ErrDuplicateJob if the id exists.
	Create(ctx context.Context, job model.AnalysisJob) error

	// Complete stores the analysis result of a job.
	Complete(ctx context.Context, id string, colors []pantone.MatchResult, stats pantone.AnalyzeStats) error

	// Fail marks a job as failed with the given cause.
	Fail(ctx context.Context, id string, cause error) error

	// Get returns a job record. Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (model.JobRecord, error)

	// Count returns the number of stored jobs.
	Count(ctx context.Context) int

	// Prune removes finished jobs older than the cutoff and returns how many went.
	Prune(ctx context.Context, olderThan time.Time) int
}
