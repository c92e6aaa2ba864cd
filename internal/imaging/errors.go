package imaging

import "errors"

// Sentinel kinds for image decoding errors.
var (
	ErrUnsupportedImage = errors.New("unsupported image")
	ErrDecodeImage      = errors.New("cannot decode image")
	ErrEmptyImage       = errors.New("empty image")
	ErrTooManyPixels    = errors.New("image exceeds pixel limit")
)
