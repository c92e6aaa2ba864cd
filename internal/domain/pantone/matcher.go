// Package pantone implements nearest-match lookup of colors against a fixed
// Pantone reference table using Euclidean RGB distance.
//
// A Matcher is immutable after New and safe for concurrent use.
package pantone

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/okian/swatch/internal/domain/color"
)

// DefaultNearestCount is the number of results FindNearest callers get when
// they do not ask for a specific count.
const DefaultNearestCount = 5

// Matcher resolves colors to their closest reference entries.
type Matcher struct {
	table []Color
	rgbs  []color.RGB

	// construction-time only
	source []Color
	custom bool
}

// New builds a Matcher over the built-in table or the one given via WithTable.
// It fails with ErrEmptyReferenceTable for an empty table and with
// ErrInvalidColorFormat if any entry carries a malformed hex value.
func New(opts ...Option) (*Matcher, error) {
	m := &Matcher{}
	for _, opt := range opts {
		opt(m)
	}
	if !m.custom {
		m.source = defaultTable
	}
	if len(m.source) == 0 {
		return nil, ErrEmptyReferenceTable
	}

	m.table = make([]Color, len(m.source))
	m.rgbs = make([]color.RGB, len(m.source))
	for i, c := range m.source {
		rgb, err := color.HexToRGB(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("reference entry %d (%s): %w", i, c.Code, err)
		}
		c.Hex = color.RGBToHex(rgb)
		m.table[i] = c
		m.rgbs[i] = rgb
	}
	m.source = nil
	return m, nil
}

// Len returns the number of reference entries.
func (m *Matcher) Len() int { return len(m.table) }

// Table returns a copy of the reference table in scan order.
func (m *Matcher) Table() []Color {
	return slices.Clone(m.table)
}

// FindClosest returns the reference entry nearest to hex. On equal
// distances the entry that appears first in the table wins.
func (m *Matcher) FindClosest(hex string) (MatchResult, error) {
	rgb, err := color.HexToRGB(hex)
	if err != nil {
		return MatchResult{}, err
	}
	return m.closest(rgb), nil
}

// RGBToPantone matches an RGB triple. Out-of-range channels are clamped.
func (m *Matcher) RGBToPantone(rgb color.RGB) MatchResult {
	// Round-trip through hex so the result carries clamped channels.
	decoded, _ := color.HexToRGB(color.RGBToHex(rgb))
	return m.closest(decoded)
}

// FindNearest returns up to count entries ordered by ascending distance.
// Entries at equal distance keep table order.
func (m *Matcher) FindNearest(hex string, count int) ([]MatchResult, error) {
	rgb, err := color.HexToRGB(hex)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return []MatchResult{}, nil
	}

	normalized := color.RGBToHex(rgb)
	results := make([]MatchResult, len(m.table))
	for i, c := range m.table {
		d := color.Distance(rgb, m.rgbs[i])
		results[i] = MatchResult{
			Pantone:  c,
			Distance: d,
			Quality:  QualityFor(d),
			RGB:      rgb,
			Hex:      normalized,
		}
	}
	slices.SortStableFunc(results, func(a, b MatchResult) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	if count < len(results) {
		results = results[:count]
	}
	return results, nil
}

// Complementary matches the photographic complement of hex.
func (m *Matcher) Complementary(hex string) (MatchResult, error) {
	rgb, err := color.HexToRGB(hex)
	if err != nil {
		return MatchResult{}, err
	}
	return m.RGBToPantone(color.Complement(rgb)), nil
}

func (m *Matcher) closest(rgb color.RGB) MatchResult {
	best := 0
	bestDist := math.Inf(1)
	for i, ref := range m.rgbs {
		if d := color.Distance(rgb, ref); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return MatchResult{
		Pantone:  m.table[best],
		Distance: bestDist,
		Quality:  QualityFor(bestDist),
		RGB:      rgb,
		Hex:      color.RGBToHex(rgb),
	}
}
