// Package color holds the RGB/HSL value types and the pure conversions
// used by the matcher: hex decoding and encoding, Euclidean distance and
// the photographic complement.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Channel bounds and distance limits.
const (
	minChannel = 0
	maxChannel = 255

	// MaxDistance is the largest possible Euclidean distance in RGB space.
	MaxDistance = 441.6729559300637 // sqrt(3 * 255^2)
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// RGB is a color in 8-bit RGB space.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL is a color in hue/saturation/lightness space. H is in degrees
// [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// HexToRGB decodes a "#RRGGBB" or "RRGGBB" string (any case).
func HexToRGB(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
		}
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex encodes rgb as "#RRGGBB". Channels are clamped to [0, 255].
func RGBToHex(rgb RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clamp(rgb.R), clamp(rgb.G), clamp(rgb.B))
}

// RGBFromFloat rounds and clamps fractional channel values.
func RGBFromFloat(r, g, b float64) RGB {
	return RGB{R: roundClamp(r), G: roundClamp(g), B: roundClamp(b)}
}

// NormalizeHex decodes and re-encodes hex, yielding the canonical
// uppercase "#RRGGBB" form.
func NormalizeHex(hex string) (string, error) {
	rgb, err := HexToRGB(strings.TrimSpace(hex))
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb), nil
}

// RGBToHSL converts rgb to HSL with integer-rounded components.
// Achromatic colors report hue and saturation 0.
func RGBToHSL(rgb RGB) HSL {
	c := colorful.Color{
		R: float64(clamp(rgb.R)) / maxChannel,
		G: float64(clamp(rgb.G)) / maxChannel,
		B: float64(clamp(rgb.B)) / maxChannel,
	}
	_, s, l := c.Hsl()
	hue := int(math.Round(hueOf(c) * 360))
	if hue >= 360 {
		hue -= 360
	}
	return HSL{H: hue, S: int(math.Round(s * 100)), L: int(math.Round(l * 100))}
}

// hueOf returns the hue of c as a fraction of a full turn, using the
// six-sector formula keyed on the largest channel. Rounding at .5 ties
// depends on this exact operation order.
func hueOf(c colorful.Color) float64 {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	if hi == lo {
		return 0
	}
	d := hi - lo
	var h float64
	switch hi {
	case c.R:
		h = (c.G - c.B) / d
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	return h / 6
}

// Distance returns the Euclidean distance between a and b in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// HexDistance decodes both strings and returns their RGB distance.
func HexDistance(hex1, hex2 string) (float64, error) {
	a, err := HexToRGB(hex1)
	if err != nil {
		return 0, err
	}
	b, err := HexToRGB(hex2)
	if err != nil {
		return 0, err
	}
	return Distance(a, b), nil
}

// Complement returns the photographic complement (255-r, 255-g, 255-b).
// This is channel inversion, not a hue rotation.
func Complement(rgb RGB) RGB {
	return RGB{R: maxChannel - rgb.R, G: maxChannel - rgb.G, B: maxChannel - rgb.B}
}

// Quantize rounds v to the nearest multiple of step. The result may
// exceed 255 (e.g. 250 -> 256 for step 32); encoding clamps it.
func Quantize(v, step int) int {
	if step <= 1 {
		return v
	}
	return int(math.Round(float64(v)/float64(step))) * step
}

func clamp(v int) int {
	if v < minChannel {
		return minChannel
	}
	if v > maxChannel {
		return maxChannel
	}
	return v
}

func roundClamp(v float64) int {
	if math.IsNaN(v) {
		return minChannel
	}
	return clamp(int(math.Round(math.Max(minChannel-1, math.Min(maxChannel+1, v)))))
}
