package color

import "errors"

// Sentinel kinds for color conversion errors.
var (
	ErrInvalidColorFormat = errors.New("invalid color format")
)
