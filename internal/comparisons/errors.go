package comparisons

import "errors"

var (
	// ErrNotFound is returned when a comparison does not exist or belongs
	// to a different user.
	ErrNotFound = errors.New("comparison not found")

	// ErrInvalidModelResponse marks model output that failed JSON parsing
	// or schema validation. It never reaches API callers; the orchestrator
	// converts it into a fallback result.
	ErrInvalidModelResponse = errors.New("invalid model response")
)
