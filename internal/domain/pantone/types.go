package pantone

import "github.com/okian/swatch/internal/domain/color"

// Color is an immutable reference entry.
type Color struct {
	Code string `json:"code" koanf:"code"`
	Hex  string `json:"hex" koanf:"hex"`
	Name string `json:"name" koanf:"name"`
}

// Quality classifies how close a match is.
type Quality string

// Match quality levels, best first.
const (
	QualityExact       Quality = "exact"
	QualityGood        Quality = "good"
	QualityApproximate Quality = "approximate"
	QualityPoor        Quality = "poor"
)

// Distance thresholds (exclusive upper bounds) for each quality level.
const (
	exactThreshold       = 10
	goodThreshold        = 30
	approximateThreshold = 60
)

// QualityFor maps a distance to its quality level.
func QualityFor(distance float64) Quality {
	switch {
	case distance < exactThreshold:
		return QualityExact
	case distance < goodThreshold:
		return QualityGood
	case distance < approximateThreshold:
		return QualityApproximate
	default:
		return QualityPoor
	}
}

// MatchResult is the outcome of matching one query color.
type MatchResult struct {
	Pantone  Color     `json:"pantone"`
	Distance float64   `json:"distance"`
	Quality  Quality   `json:"matchQuality"`
	RGB      color.RGB `json:"rgb"`
	Hex      string    `json:"hex"`
}

// SearchResult carries search matches and the normalized query used.
type SearchResult struct {
	Matches []Color `json:"matches"`
	Query   string  `json:"query"`
}
