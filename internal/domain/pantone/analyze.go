package pantone

import (
	"cmp"
	"slices"

	"github.com/okian/swatch/internal/domain/color"
)

// Image analysis parameters.
const (
	targetSamples  = 10000
	alphaThreshold = 128
	quantizeStep   = 32
	maxDominant    = 10
	bytesPerPixel  = 4
)

// bucket counts samples that quantized to the same color.
type bucket struct {
	rgb   color.RGB
	count int
}

// AnalyzeImageColors extracts up to ten dominant colors from a row-major
// RGBA buffer and matches each one. Large images are subsampled to roughly
// ten thousand pixels; pixels with alpha below 128 are ignored.
//
// width and height only bound the scan. If pixels is shorter than
// width*height*4 the scan stops at the end of the buffer.
//
// Buckets with equal counts keep the order in which they were first seen.
func (m *Matcher) AnalyzeImageColors(pixels []byte, width, height int) []MatchResult {
	return m.analyze(pixels, width, height, nil)
}

// AnalyzeStats reports how many pixels an analysis sampled and kept.
type AnalyzeStats struct {
	Sampled int `json:"sampled"`
	Opaque  int `json:"opaque"`
	Buckets int `json:"buckets"`
	Stride  int `json:"stride"`
}

// AnalyzeImageColorsWithStats is AnalyzeImageColors plus sampling counters.
func (m *Matcher) AnalyzeImageColorsWithStats(pixels []byte, width, height int) ([]MatchResult, AnalyzeStats) {
	var st AnalyzeStats
	res := m.analyze(pixels, width, height, &st)
	return res, st
}

// SampleStride returns the pixel step used for an image of the given size.
func SampleStride(width, height int) int {
	return max(1, (width*height)/targetSamples)
}

func (m *Matcher) analyze(pixels []byte, width, height int, st *AnalyzeStats) []MatchResult {
	total := width * height
	if total <= 0 {
		return []MatchResult{}
	}
	stride := SampleStride(width, height)

	index := make(map[color.RGB]int)
	var buckets []bucket
	sampled, opaque := 0, 0
	for p := 0; p < total; p += stride {
		off := p * bytesPerPixel
		if off+bytesPerPixel > len(pixels) {
			break
		}
		sampled++
		if pixels[off+3] < alphaThreshold {
			continue
		}
		opaque++
		key := color.RGB{
			R: color.Quantize(int(pixels[off]), quantizeStep),
			G: color.Quantize(int(pixels[off+1]), quantizeStep),
			B: color.Quantize(int(pixels[off+2]), quantizeStep),
		}
		if i, ok := index[key]; ok {
			buckets[i].count++
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, bucket{rgb: key, count: 1})
	}

	if st != nil {
		*st = AnalyzeStats{Sampled: sampled, Opaque: opaque, Buckets: len(buckets), Stride: stride}
	}

	slices.SortStableFunc(buckets, func(a, b bucket) int {
		return cmp.Compare(b.count, a.count)
	})
	if len(buckets) > maxDominant {
		buckets = buckets[:maxDominant]
	}

	out := make([]MatchResult, len(buckets))
	for i, b := range buckets {
		out[i] = m.RGBToPantone(b.rgb)
	}
	return out
}
