package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrUnknownSource = errors.New("unknown table source")
	ErrLoadTable     = errors.New("load reference table failed")
)
