package comparisons

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobfit-backend/internal/extract"
	"jobfit-backend/internal/llm"
	"jobfit-backend/internal/shared/metrics"
	"jobfit-backend/internal/shared/storage/object"
	"jobfit-backend/internal/shared/telemetry"
)

// CompareRequest carries one compare invocation. ResumeText takes precedence
// over FileKey; FileKey points at a previously uploaded document in the
// object store.
type CompareRequest struct {
	ResumeText string
	FileKey    string
	JobText    string
	RateLimit  RateLimitState
}

// Service orchestrates comparisons: resolve the resume text, try the model
// once, and degrade to the keyword fallback on any failure.
type Service struct {
	repo     Repository
	client   llm.Client
	store    object.Store
	provider string
	model    string

	extractText func(filename, contentType string, data []byte) (string, error)
	now         func() time.Time
	newID       func() string
}

func NewService(repo Repository, client llm.Client, store object.Store, provider, model string) *Service {
	return &Service{
		repo:        repo,
		client:      client,
		store:       store,
		provider:    provider,
		model:       model,
		extractText: extract.Text,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Compare runs one comparison and persists the outcome. It never returns a
// model error: model failures surface as a fallback-sourced result.
func (s *Service) Compare(ctx context.Context, userID string, req CompareRequest) (*Comparison, *Result, error) {
	resumeText, err := s.resolveResumeText(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	metrics.IncComparisonStarted()
	start := s.now()
	result := s.analyze(ctx, resumeText, req.JobText, req.RateLimit)
	metrics.ObserveComparisonDurationMs(float64(s.now().Sub(start) / time.Millisecond))
	if result.Source == SourceAI {
		metrics.IncComparisonAI()
	} else {
		metrics.IncComparisonFallback()
	}

	raw, err := json.Marshal(result.Report)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal report: %w", err)
	}
	cmp := &Comparison{
		ID:             s.newID(),
		UserID:         userID,
		JobDescription: req.JobText,
		ResumeChars:    len(resumeText),
		Source:         result.Source,
		MatchScore:     result.MatchScore,
		Result:         raw,
		Provider:       s.provider,
		Model:          s.model,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Create(ctx, cmp); err != nil {
		return nil, nil, fmt.Errorf("persist comparison: %w", err)
	}
	return cmp, &result, nil
}

// Get returns one comparison scoped to its owner.
func (s *Service) Get(ctx context.Context, userID, id string) (*Comparison, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// List returns the user's most recent comparisons, newest first.
func (s *Service) List(ctx context.Context, userID string, limit int) ([]Comparison, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *Service) analyze(ctx context.Context, resumeText, jobText string, limit RateLimitState) Result {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return ScoreFallback(resumeText, jobText)
	}
	if limit.Active(s.now()) {
		telemetry.Info("comparison.rate_limited", map[string]any{
			"reset_at": limit.ResetAt.UTC().Format(time.RFC3339),
		})
		return ScoreFallback(resumeText, jobText)
	}
	if s.client == nil {
		return ScoreFallback(resumeText, jobText)
	}

	raw, err := s.client.CompareResume(ctx, llm.CompareInput{
		ResumeText: resumeText,
		JobText:    jobText,
	})
	if err != nil {
		telemetry.Warn("comparison.model_unavailable", map[string]any{
			"provider": s.provider,
			"model":    s.model,
			"error":    err.Error(),
		})
		return ScoreFallback(resumeText, jobText)
	}

	report, err := ParseReport(raw)
	if err != nil {
		telemetry.Error("comparison.invalid_model_response", map[string]any{
			"provider": s.provider,
			"model":    s.model,
			"error":    err.Error(),
			"raw":      telemetry.Truncate(string(raw), 2000),
		})
		return ScoreFallback(resumeText, jobText)
	}
	return Result{MatchScore: report.MatchScore, Source: SourceAI, Report: report}
}

func (s *Service) resolveResumeText(ctx context.Context, req CompareRequest) (string, error) {
	if strings.TrimSpace(req.ResumeText) != "" {
		return req.ResumeText, nil
	}
	key := strings.TrimSpace(req.FileKey)
	if key == "" {
		return "", nil
	}
	if s.store == nil {
		return "", fmt.Errorf("object store not configured")
	}
	body, contentType, err := s.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("load resume object %s: %w", key, err)
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read resume object %s: %w", key, err)
	}
	text, err := s.extractText(key, contentType, data)
	if err != nil {
		return "", fmt.Errorf("extract resume text %s: %w", key, err)
	}
	return text, nil
}
