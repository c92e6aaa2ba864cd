package pantone

import (
	"errors"

	"github.com/okian/swatch/internal/domain/color"
)

// Sentinel kinds for matcher errors.
var (
	// ErrInvalidColorFormat is returned for hex strings that are not #?RRGGBB.
	ErrInvalidColorFormat = color.ErrInvalidColorFormat
	// ErrEmptyReferenceTable is returned when a matcher is built without entries.
	ErrEmptyReferenceTable = errors.New("empty reference table")
)
