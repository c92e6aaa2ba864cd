// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/okian/swatch/internal/domain/pantone"
)

// JobStatus is the lifecycle state of an analysis job.
type JobStatus string

// Job states.
const (
	JobPending JobStatus = "pending"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// AnalysisJob is a decoded image waiting for dominant color analysis.
type AnalysisJob struct {
	ID          string    // job id returned to the submitter
	Pixels      []byte    // RGBA, row-major, 4 bytes per pixel
	Width       int       // pixels
	Height      int       // pixels
	Format      string    // decoder name, e.g. "png"
	SubmittedAt time.Time // enqueue time
}

// JobRecord is the stored state of an analysis job.
type JobRecord struct {
	ID          string                `json:"id"`
	Status      JobStatus             `json:"status"`
	Width       int                   `json:"width"`
	Height      int                   `json:"height"`
	Format      string                `json:"format,omitempty"`
	Colors      []pantone.MatchResult `json:"colors,omitzero"`
	Stats       *pantone.AnalyzeStats `json:"stats,omitempty"`
	Error       string                `json:"error,omitempty"`
	SubmittedAt time.Time             `json:"submittedAt"`
	FinishedAt  time.Time             `json:"finishedAt,omitzero"`
}

// Finished reports whether the job reached a final state.
func (r JobRecord) Finished() bool {
	return r.Status == JobDone || r.Status == JobFailed
}
