// Package imaging turns uploaded artwork into the flat RGBA buffers the
// matcher analyzes.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Pixels is a row-major, non-premultiplied RGBA buffer.
type Pixels struct {
	Data   []byte
	Width  int
	Height int
	Format string
}

// DefaultMaxPixels bounds the decoded size of an image (40 megapixels).
const DefaultMaxPixels int64 = 40_000_000

type decoder struct {
	maxDimension int
	maxPixels    int64
}

// Decode reads an image in any registered format and flattens it. The
// header is checked against the pixel limit before the image is decoded;
// callers are expected to cap r.
func Decode(r io.Reader, opts ...Option) (Pixels, error) {
	d := &decoder{maxPixels: DefaultMaxPixels}
	for _, opt := range opts {
		opt(d)
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return Pixels{}, fmt.Errorf("%w: %w", ErrDecodeImage, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return Pixels{}, decodeError(err)
	}
	if n := int64(cfg.Width) * int64(cfg.Height); n > d.maxPixels {
		return Pixels{}, fmt.Errorf("%w: %w: %dx%d", ErrDecodeImage, ErrTooManyPixels, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return Pixels{}, decodeError(err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Pixels{}, ErrEmptyImage
	}
	if d.maxDimension > 0 && (b.Dx() > d.maxDimension || b.Dy() > d.maxDimension) {
		img = resize(img, d.maxDimension)
	}

	px := FromImage(img)
	px.Format = format
	return px, nil
}

func decodeError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	return fmt.Errorf("%w: %w", ErrDecodeImage, err)
}

// FromImage copies img into a tightly packed NRGBA buffer.
func FromImage(img image.Image) Pixels {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	rowBytes := w * 4
	data := make([]byte, rowBytes*h)
	for y := 0; y < h; y++ {
		copy(data[y*rowBytes:(y+1)*rowBytes], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+rowBytes])
	}
	return Pixels{Data: data, Width: w, Height: h}
}

func resize(img image.Image, maxDim int) image.Image {
	g := gift.New(gift.ResizeToFit(maxDim, maxDim, gift.LinearResampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
