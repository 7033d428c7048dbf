// Package llm defines the client contract for the generative-AI backends
// used by the comparison and resume-parsing services. Providers return the
// model's raw JSON payload; callers own parsing and validation.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrUnavailable indicates a transport or authentication failure talking to
// the model provider. Callers treat it as a signal to degrade, not retry.
var ErrUnavailable = errors.New("model unavailable")

// CompareInput carries the two documents for a match request.
type CompareInput struct {
	ResumeText string
	JobText    string
}

// Client is implemented by each model provider.
type Client interface {
	// CompareResume scores ResumeText against JobText and returns the raw
	// JSON report emitted by the model.
	CompareResume(ctx context.Context, in CompareInput) (json.RawMessage, error)
	// ParseResume extracts structured resume data from free-form text and
	// returns the raw JSON emitted by the model.
	ParseResume(ctx context.Context, resumeText string) (json.RawMessage, error)
}
