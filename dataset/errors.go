package dataset

import "errors"

// Sentinel errors for the dataset package.
var (
	// ErrUnknownDataset is returned when a dataset id has no catalogue entry.
	ErrUnknownDataset = errors.New("dataset: unknown dataset id")

	// ErrUnknownLabelType is returned when a label-type id has no catalogue entry.
	ErrUnknownLabelType = errors.New("dataset: unknown label type id")
)
