package pantone_test

import (
	"testing"

	"github.com/okian/swatch/internal/domain/color"
	"github.com/okian/swatch/internal/domain/pantone"
	. "github.com/smartystreets/goconvey/convey"
)

// solid returns a w*h RGBA buffer filled with one color.
func solid(w, h int, r, g, b, a byte) []byte {
	buf := make([]byte, w*h*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i], buf[i+1], buf[i+2], buf[i+3] = r, g, b, a
	}
	return buf
}

func TestAnalyzeImageColors(t *testing.T) {
	Convey("Given the default matcher", t, func() {
		m := mustMatcher(t)

		Convey("When the image is fully transparent", func() {
			res := m.AnalyzeImageColors(solid(20, 20, 200, 16, 46, 0), 20, 20)

			Convey("Then nothing is reported", func() {
				So(res, ShouldBeEmpty)
			})
		})

		Convey("When the image is a single opaque color", func() {
			res, st := m.AnalyzeImageColorsWithStats(solid(10, 10, 200, 16, 46, 255), 10, 10)

			Convey("Then one quantized bucket is matched", func() {
				So(len(res), ShouldEqual, 1)
				So(res[0].RGB, ShouldResemble, color.RGB{R: 192, G: 32, B: 32})
				So(res[0].Hex, ShouldEqual, "#C02020")
				So(st.Sampled, ShouldEqual, 100)
				So(st.Opaque, ShouldEqual, 100)
				So(st.Stride, ShouldEqual, 1)
			})
		})

		Convey("When alpha sits on the threshold", func() {
			buf := append(solid(1, 1, 0, 0, 0, 127), solid(1, 1, 255, 255, 255, 128)...)
			res := m.AnalyzeImageColors(buf, 2, 1)

			Convey("Then only alpha >= 128 counts", func() {
				So(len(res), ShouldEqual, 1)
				So(res[0].RGB, ShouldResemble, color.RGB{R: 255, G: 255, B: 255})
			})
		})

		Convey("When the image has many distinct colors", func() {
			w, h := 64, 64
			buf := make([]byte, w*h*4)
			for i := 0; i < w*h; i++ {
				buf[i*4] = byte(i * 7)
				buf[i*4+1] = byte(i * 13)
				buf[i*4+2] = byte(i * 29)
				buf[i*4+3] = 255
			}
			res := m.AnalyzeImageColors(buf, w, h)

			Convey("Then at most ten colors are returned", func() {
				So(len(res), ShouldBeLessThanOrEqualTo, 10)
				So(len(res), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When colors have different frequencies", func() {
			// 6 red, 3 blue, 1 green pixels.
			var buf []byte
			buf = append(buf, solid(6, 1, 255, 0, 0, 255)...)
			buf = append(buf, solid(3, 1, 0, 0, 255, 255)...)
			buf = append(buf, solid(1, 1, 0, 255, 0, 255)...)
			res := m.AnalyzeImageColors(buf, 10, 1)

			Convey("Then buckets are ordered by count", func() {
				So(len(res), ShouldEqual, 3)
				So(res[0].Hex, ShouldEqual, "#FF0000")
				So(res[1].Hex, ShouldEqual, "#0000FF")
				So(res[2].Hex, ShouldEqual, "#00FF00")
			})
		})

		Convey("When two buckets tie", func() {
			var buf []byte
			buf = append(buf, solid(1, 1, 0, 0, 255, 255)...)
			buf = append(buf, solid(1, 1, 255, 0, 0, 255)...)
			res := m.AnalyzeImageColors(buf, 2, 1)

			Convey("Then first-seen order is kept", func() {
				So(res[0].Hex, ShouldEqual, "#0000FF")
				So(res[1].Hex, ShouldEqual, "#FF0000")
			})
		})

		Convey("When the image is large", func() {
			w, h := 400, 300
			_, st := m.AnalyzeImageColorsWithStats(solid(w, h, 10, 10, 10, 255), w, h)

			Convey("Then sampling is bounded to about ten thousand pixels", func() {
				So(st.Stride, ShouldEqual, 12)
				So(st.Sampled, ShouldEqual, 10000)
				So(pantone.SampleStride(w, h), ShouldEqual, 12)
			})
		})

		Convey("When the buffer is shorter than declared", func() {
			buf := solid(2, 2, 255, 255, 255, 255)

			Convey("Then the scan stops at the buffer end", func() {
				var res []pantone.MatchResult
				So(func() { res = m.AnalyzeImageColors(buf, 100, 100) }, ShouldNotPanic)
				So(len(res), ShouldEqual, 1)
			})
		})

		Convey("When dimensions are degenerate", func() {
			So(m.AnalyzeImageColors(nil, 0, 0), ShouldBeEmpty)
			So(m.AnalyzeImageColors(solid(1, 1, 1, 1, 1, 255), -1, 5), ShouldBeEmpty)
		})
	})
}
