package episodic

import "errors"

// Sentinel errors for the pipeline stages. Callers match these with
// errors.Is; every stage wraps them with context about what failed.
var (
	// ErrFetch indicates the remote dataset could not be retrieved.
	ErrFetch = errors.New("dataset unreachable")

	// ErrMalformedDataset indicates the dataset was retrieved but could not
	// be parsed into line records.
	ErrMalformedDataset = errors.New("malformed dataset")

	// ErrEmptyDataset indicates no usable line records survived loading.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrMisaligned indicates a later stage no longer points back at the
	// aggregation group it came from, which would silently corrupt the merge.
	ErrMisaligned = errors.New("stage results misaligned")
)
