package recipe

import "errors"

// Domain-specific errors for the recipe package.
var (
	ErrMissingColumns = errors.New("dataset is missing required columns")
	ErrEmptyDataset   = errors.New("dataset has no data rows")
)
