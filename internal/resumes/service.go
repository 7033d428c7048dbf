package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobfit-backend/internal/llm"
	"jobfit-backend/internal/shared/metrics"
	"jobfit-backend/internal/shared/telemetry"
)

var (
	// ErrNotFound is returned when a resume does not exist or belongs to a
	// different user.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidParsedData marks unusable model output from the parser.
	// Unlike the comparison flow there is no fallback parser; this one
	// surfaces to the caller.
	ErrInvalidParsedData = errors.New("invalid parsed resume data")
)

// Service runs the parse pipeline (model → grounding filter → normalizer)
// and owns builder-document CRUD.
type Service struct {
	repo   Repository
	client llm.Client

	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, client llm.Client) *Service {
	return &Service{
		repo:   repo,
		client: client,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// ParseResume extracts structured data from free-form resume text. Entries
// the model invented are filtered against the source text before the result
// is normalized.
func (s *Service) ParseResume(ctx context.Context, resumeText string) (ParsedResumeData, error) {
	metrics.IncResumeParse()
	if s.client == nil {
		metrics.IncResumeParseFailed()
		return ParsedResumeData{}, fmt.Errorf("no model configured: %w", llm.ErrUnavailable)
	}
	raw, err := s.client.ParseResume(ctx, resumeText)
	if err != nil {
		metrics.IncResumeParseFailed()
		return ParsedResumeData{}, fmt.Errorf("parse resume: %w", err)
	}

	var parsed ParsedResumeData
	if err := json.Unmarshal(raw, &parsed); err != nil {
		metrics.IncResumeParseFailed()
		telemetry.Error("resume.invalid_model_response", map[string]any{
			"error": err.Error(),
			"raw":   telemetry.Truncate(string(raw), 2000),
		})
		return ParsedResumeData{}, fmt.Errorf("%v: %w", err, ErrInvalidParsedData)
	}

	validated := FilterUngrounded(parsed, resumeText)
	return Normalize(validated), nil
}

// Create stores a new builder document. The data is normalized on the way in
// so stored documents always satisfy the array/dedup/date invariants.
func (s *Service) Create(ctx context.Context, userID, title string, data ParsedResumeData) (*Resume, error) {
	now := s.now().UTC()
	resume := &Resume{
		ID:        s.newID(),
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		Data:      Normalize(data),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if resume.Title == "" {
		resume.Title = "Untitled resume"
	}
	if err := s.repo.Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("persist resume: %w", err)
	}
	return resume, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Resume, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id, title string, data ParsedResumeData) (*Resume, error) {
	resume, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		resume.Title = trimmed
	}
	resume.Data = Normalize(data)
	resume.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, resume); err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}
	return resume, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// Preview renders a resume's text content to HTML for the builder.
func (s *Service) Preview(ctx context.Context, userID, id string) (string, error) {
	resume, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return "", err
	}
	return renderResumeHTML(resume), nil
}

func renderResumeHTML(resume *Resume) string {
	var b strings.Builder
	if resume.Data.Summary != "" {
		b.WriteString(RenderHTML(resume.Data.Summary))
		b.WriteString("\n")
	}
	for _, exp := range resume.Data.Experiences {
		if exp.ResponsibilitiesText != "" {
			b.WriteString(RenderHTML(exp.ResponsibilitiesText))
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}
