package plan

import (
	"errors"
	"strings"
)

// Domain-specific errors for the plan package.
var (
	ErrInvalidWeight = errors.New("weight_kg must be greater than 0 and at most 250")
	ErrEmptyFile     = errors.New("uploaded file has no workout rows")
	ErrPlanNotFound  = errors.New("plan not found")
)

// MissingColumnsError lists the required columns the upload lacked, by exact
// canonical name, so the client sees them all at once.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}
