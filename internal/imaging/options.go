package imaging

// Option applies a configuration option to Decode.
type Option func(*decoder)

// WithMaxDimension downscales images whose width or height exceeds n
// pixels, keeping the aspect ratio. Zero disables resizing.
func WithMaxDimension(n int) Option {
	return func(d *decoder) {
		if n > 0 {
			d.maxDimension = n
		}
	}
}

// WithMaxPixels rejects images whose declared width*height exceeds n
// before any pixel data is decoded. Non-positive values keep the default.
func WithMaxPixels(n int64) Option {
	return func(d *decoder) {
		if n > 0 {
			d.maxPixels = n
		}
	}
}
