package loader

import "errors"

// Sentinel errors for the loader package.
var (
	// ErrTooFewFields is returned when an edge row has fewer than two
	// comma-separated fields.
	ErrTooFewFields = errors.New("loader: edge row has fewer than two fields")

	// ErrLabelDimensionMismatch is returned when a label row's field
	// count does not match the requested dimension.
	ErrLabelDimensionMismatch = errors.New("loader: label row dimension mismatch")
)
