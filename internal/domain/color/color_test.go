package color_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/swatch/internal/domain/color"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHexToRGB(t *testing.T) {
	Convey("Given hex strings", t, func() {
		Convey("When the string has a leading hash", func() {
			rgb, err := color.HexToRGB("#C8102E")

			Convey("Then it decodes each channel", func() {
				So(err, ShouldBeNil)
				So(rgb, ShouldResemble, color.RGB{R: 200, G: 16, B: 46})
			})
		})

		Convey("When the string has no hash and mixed case", func() {
			rgb, err := color.HexToRGB("c8102E")

			Convey("Then it decodes the same color", func() {
				So(err, ShouldBeNil)
				So(rgb, ShouldResemble, color.RGB{R: 200, G: 16, B: 46})
			})
		})

		Convey("When the string is malformed", func() {
			for _, in := range []string{"", "#", "#FFF", "#GGGGGG", "#1234567", "12345", "##123456", " #123456"} {
				_, err := color.HexToRGB(in)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, color.ErrInvalidColorFormat), ShouldBeTrue)
			}
		})
	})
}

func TestRGBToHex(t *testing.T) {
	Convey("Given RGB triples", t, func() {
		Convey("When channels are in range", func() {
			So(color.RGBToHex(color.RGB{R: 200, G: 16, B: 46}), ShouldEqual, "#C8102E")
			So(color.RGBToHex(color.RGB{}), ShouldEqual, "#000000")
			So(color.RGBToHex(color.RGB{R: 255, G: 255, B: 255}), ShouldEqual, "#FFFFFF")
		})

		Convey("When channels are out of range", func() {
			hex := color.RGBToHex(color.RGB{R: 256, G: -3, B: 300})

			Convey("Then they are clamped", func() {
				So(hex, ShouldEqual, "#FF00FF")
				So(len(hex), ShouldEqual, 7)
			})
		})

		Convey("When channels are fractional", func() {
			rgb := color.RGBFromFloat(12.4, 12.5, 254.9)

			Convey("Then they are rounded before encoding", func() {
				So(rgb, ShouldResemble, color.RGB{R: 12, G: 13, B: 255})
				So(color.RGBToHex(color.RGBFromFloat(-10, 1e9, math.NaN())), ShouldEqual, "#00FF00")
			})
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Given every value on a coarse RGB grid", t, func() {
		ok := true
		for r := 0; r <= 255; r += 5 {
			for g := 0; g <= 255; g += 17 {
				for b := 0; b <= 255; b += 3 {
					in := color.RGB{R: r, G: g, B: b}
					out, err := color.HexToRGB(color.RGBToHex(in))
					if err != nil || out != in {
						ok = false
					}
				}
			}
		}

		Convey("Then hex encoding round-trips", func() {
			So(ok, ShouldBeTrue)
		})
	})
}

func TestRGBToHSL(t *testing.T) {
	Convey("Given reference colors", t, func() {
		cases := []struct {
			rgb  color.RGB
			want color.HSL
		}{
			{color.RGB{R: 255}, color.HSL{H: 0, S: 100, L: 50}},
			{color.RGB{G: 255}, color.HSL{H: 120, S: 100, L: 50}},
			{color.RGB{B: 255}, color.HSL{H: 240, S: 100, L: 50}},
			{color.RGB{R: 255, G: 255}, color.HSL{H: 60, S: 100, L: 50}},
			{color.RGB{R: 255, B: 255}, color.HSL{H: 300, S: 100, L: 50}},
			{color.RGB{R: 200, G: 16, B: 46}, color.HSL{H: 350, S: 85, L: 42}},
			{color.RGB{R: 0, G: 39, B: 120}, color.HSL{H: 220, S: 100, L: 24}},
			{color.RGB{R: 255, G: 0, B: 128}, color.HSL{H: 330, S: 100, L: 50}},
		}
		for _, tc := range cases {
			So(color.RGBToHSL(tc.rgb), ShouldResemble, tc.want)
		}

		Convey("When the color is achromatic", func() {
			So(color.RGBToHSL(color.RGB{}), ShouldResemble, color.HSL{})
			So(color.RGBToHSL(color.RGB{R: 128, G: 128, B: 128}), ShouldResemble, color.HSL{H: 0, S: 0, L: 50})
			So(color.RGBToHSL(color.RGB{R: 255, G: 255, B: 255}), ShouldResemble, color.HSL{H: 0, S: 0, L: 100})
		})
	})
}

func TestDistance(t *testing.T) {
	Convey("Given pairs of colors", t, func() {
		Convey("Then distance is Euclidean", func() {
			So(color.Distance(color.RGB{}, color.RGB{R: 3, G: 4}), ShouldEqual, 5.0)
			So(color.Distance(color.RGB{}, color.RGB{R: 255, G: 255, B: 255}), ShouldAlmostEqual, color.MaxDistance, 1e-9)
		})

		Convey("Then it is symmetric and zero on identity", func() {
			pairs := [][2]string{{"#C8102E", "#0033A0"}, {"#000000", "#FFFFFF"}, {"#123456", "#654321"}}
			for _, p := range pairs {
				ab, err := color.HexDistance(p[0], p[1])
				So(err, ShouldBeNil)
				ba, err := color.HexDistance(p[1], p[0])
				So(err, ShouldBeNil)
				So(ab, ShouldEqual, ba)

				self, err := color.HexDistance(p[0], p[0])
				So(err, ShouldBeNil)
				So(self, ShouldEqual, 0.0)
			}
			d, err := color.HexDistance("#abcdef", "ABCDEF")
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 0.0)
		})

		Convey("When either hex is malformed", func() {
			_, err := color.HexDistance("#ZZZZZZ", "#000000")
			So(errors.Is(err, color.ErrInvalidColorFormat), ShouldBeTrue)
			_, err = color.HexDistance("#000000", "nope")
			So(errors.Is(err, color.ErrInvalidColorFormat), ShouldBeTrue)
		})
	})
}

func TestComplementAndQuantize(t *testing.T) {
	Convey("Given channel helpers", t, func() {
		So(color.Complement(color.RGB{R: 255, G: 255, B: 255}), ShouldResemble, color.RGB{})
		So(color.Complement(color.RGB{R: 200, G: 16, B: 46}), ShouldResemble, color.RGB{R: 55, G: 239, B: 209})

		So(color.Quantize(0, 32), ShouldEqual, 0)
		So(color.Quantize(15, 32), ShouldEqual, 0)
		So(color.Quantize(16, 32), ShouldEqual, 32)
		So(color.Quantize(200, 32), ShouldEqual, 192)
		So(color.Quantize(250, 32), ShouldEqual, 256)
		So(color.Quantize(7, 1), ShouldEqual, 7)
	})
}

func TestNormalizeHex(t *testing.T) {
	Convey("Given hex input in various shapes", t, func() {
		h, err := color.NormalizeHex("  c8102e ")
		So(err, ShouldBeNil)
		So(h, ShouldEqual, "#C8102E")

		_, err = color.NormalizeHex("c8102")
		So(errors.Is(err, color.ErrInvalidColorFormat), ShouldBeTrue)
	})
}
