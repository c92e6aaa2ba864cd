package imaging_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/okian/swatch/internal/imaging"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/image/bmp"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 200, G: 16, B: 46, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{A: 0})
			}
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	Convey("Given encoded images", t, func() {
		Convey("When the image is a PNG", func() {
			var buf bytes.Buffer
			So(png.Encode(&buf, checker(4, 3)), ShouldBeNil)
			px, err := imaging.Decode(&buf)

			Convey("Then pixels are flattened row-major", func() {
				So(err, ShouldBeNil)
				So(px.Format, ShouldEqual, "png")
				So(px.Width, ShouldEqual, 4)
				So(px.Height, ShouldEqual, 3)
				So(len(px.Data), ShouldEqual, 4*3*4)
				So(px.Data[0:4], ShouldResemble, []byte{200, 16, 46, 255})
				So(px.Data[7], ShouldEqual, byte(0))
			})
		})

		Convey("When the image is a BMP", func() {
			var buf bytes.Buffer
			img := image.NewRGBA(image.Rect(0, 0, 2, 2))
			img.Set(1, 1, color.RGBA{R: 1, G: 2, B: 3, A: 255})
			So(bmp.Encode(&buf, img), ShouldBeNil)
			px, err := imaging.Decode(&buf)

			So(err, ShouldBeNil)
			So(px.Format, ShouldEqual, "bmp")
			So(px.Data[12:16], ShouldResemble, []byte{1, 2, 3, 255})
		})

		Convey("When the bytes are not an image", func() {
			_, err := imaging.Decode(bytes.NewReader([]byte("definitely not an image")))
			So(errors.Is(err, imaging.ErrUnsupportedImage), ShouldBeTrue)
		})

		Convey("When the image exceeds the maximum dimension", func() {
			var buf bytes.Buffer
			So(png.Encode(&buf, checker(200, 100)), ShouldBeNil)
			px, err := imaging.Decode(&buf, imaging.WithMaxDimension(50))

			Convey("Then it is downscaled keeping the aspect ratio", func() {
				So(err, ShouldBeNil)
				So(px.Width, ShouldEqual, 50)
				So(px.Height, ShouldEqual, 25)
				So(len(px.Data), ShouldEqual, 50*25*4)
			})
		})

		Convey("When the image is within the maximum dimension", func() {
			var buf bytes.Buffer
			So(png.Encode(&buf, checker(20, 10)), ShouldBeNil)
			px, err := imaging.Decode(&buf, imaging.WithMaxDimension(50))
			So(err, ShouldBeNil)
			So(px.Width, ShouldEqual, 20)
		})
	})
}

func TestFromImage(t *testing.T) {
	Convey("Given a sub-image with a non-zero origin", t, func() {
		src := checker(6, 6)
		sub := src.SubImage(image.Rect(1, 1, 3, 3))
		px := imaging.FromImage(sub)

		Convey("Then the buffer starts at the sub-image origin", func() {
			So(px.Width, ShouldEqual, 2)
			So(px.Height, ShouldEqual, 2)
			// (1,1) is opaque red in the checker pattern.
			So(px.Data[0:4], ShouldResemble, []byte{200, 16, 46, 255})
			So(px.Data[7], ShouldEqual, byte(0))
		})
	})
}

func TestDecodeTruncated(t *testing.T) {
	Convey("Given a PNG cut short", t, func() {
		var buf bytes.Buffer
		So(png.Encode(&buf, checker(8, 8)), ShouldBeNil)
		data := buf.Bytes()[:buf.Len()/2]

		_, err := imaging.Decode(bytes.NewReader(data))

		Convey("Then the error is a decode failure, not a format miss", func() {
			So(errors.Is(err, imaging.ErrDecodeImage), ShouldBeTrue)
			So(errors.Is(err, imaging.ErrUnsupportedImage), ShouldBeFalse)
		})
	})
}

// withDeclaredSize rewrites the IHDR dimensions of an encoded PNG and
// recomputes the chunk checksum, leaving the pixel data untouched.
func withDeclaredSize(encoded []byte, w, h uint32) []byte {
	out := bytes.Clone(encoded)
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestDecodePixelLimit(t *testing.T) {
	Convey("Given a small PNG that declares 20000x20000 pixels", t, func() {
		var buf bytes.Buffer
		So(png.Encode(&buf, checker(2, 2)), ShouldBeNil)
		huge := withDeclaredSize(buf.Bytes(), 20_000, 20_000)

		Convey("When decoded with the default limit", func() {
			_, err := imaging.Decode(bytes.NewReader(huge), imaging.WithMaxDimension(2048))

			Convey("Then it is rejected before decoding", func() {
				So(errors.Is(err, imaging.ErrDecodeImage), ShouldBeTrue)
				So(errors.Is(err, imaging.ErrTooManyPixels), ShouldBeTrue)
			})
		})
	})

	Convey("Given a 20x10 PNG", t, func() {
		var buf bytes.Buffer
		So(png.Encode(&buf, checker(20, 10)), ShouldBeNil)

		Convey("When the limit is below its pixel count", func() {
			_, err := imaging.Decode(bytes.NewReader(buf.Bytes()), imaging.WithMaxPixels(199))
			So(errors.Is(err, imaging.ErrTooManyPixels), ShouldBeTrue)
		})

		Convey("When the limit equals its pixel count", func() {
			px, err := imaging.Decode(bytes.NewReader(buf.Bytes()), imaging.WithMaxPixels(200))
			So(err, ShouldBeNil)
			So(px.Width, ShouldEqual, 20)
		})
	})
}
