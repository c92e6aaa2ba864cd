// Package types contains response shapes shared by the API and the CLI.
package types

import (
	"github.com/okian/swatch/internal/domain/color"
	"github.com/okian/swatch/internal/domain/pantone"
)

// DistanceResult is the distance between two hex colors.
type DistanceResult struct {
	A        string          `json:"a"`
	B        string          `json:"b"`
	Distance float64         `json:"distance"`
	Quality  pantone.Quality `json:"matchQuality"`
}

// HSLResult pairs a normalized hex with its HSL form.
type HSLResult struct {
	Hex string    `json:"hex"`
	RGB color.RGB `json:"rgb"`
	HSL color.HSL `json:"hsl"`
}

// AnalysisResult is the outcome of a synchronous image analysis.
type AnalysisResult struct {
	Width  int                   `json:"width"`
	Height int                   `json:"height"`
	Format string                `json:"format,omitempty"`
	Colors []pantone.MatchResult `json:"colors"`
	Stats  pantone.AnalyzeStats  `json:"stats"`
}

// Stats summarizes service state for /stats.
type Stats struct {
	TableSize   int    `json:"tableSize"`
	TableSource string `json:"tableSource"`
	CacheSize   int64  `json:"cacheSize"`
	QueueLength int    `json:"queueLength"`
	WorkerCount int    `json:"workerCount"`
	JobsStored  int    `json:"jobsStored"`
	Uptime      string `json:"uptime"`
}
