package comparisons

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobfit-backend/internal/shared/server/middleware"
	"jobfit-backend/internal/shared/server/respond"
	"jobfit-backend/internal/shared/storage/object"
)

// Handler exposes the comparison API.
type Handler struct {
	svc       *Service
	aiLimiter *middleware.RateLimiter
	aiRule    middleware.RateLimitRule
	now       func() time.Time
}

// NewHandler constructs a Handler. aiLimiter bounds model spend per user;
// when the budget is exhausted requests still succeed, served by the
// fallback scorer instead of the model.
func NewHandler(svc *Service, aiLimiter *middleware.RateLimiter, aiRule middleware.RateLimitRule) *Handler {
	return &Handler{
		svc:       svc,
		aiLimiter: aiLimiter,
		aiRule:    aiRule,
		now:       time.Now,
	}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/comparisons", h.create)
	rg.GET("/comparisons", h.list)
	rg.GET("/comparisons/:id", h.get)
}

type compareRequestBody struct {
	ResumeText string `json:"resume_text"`
	FileKey    string `json:"file_key"`
	JobText    string `json:"job_description_text"`
}

type compareResponseBody struct {
	ID         string    `json:"id"`
	MatchScore int       `json:"match_score"`
	Source     string    `json:"source"`
	Analysis   Report    `json:"analysis"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *Handler) create(c *gin.Context) {
	var body compareRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body must be valid JSON", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)

	cmp, result, err := h.svc.Compare(c.Request.Context(), userID, CompareRequest{
		ResumeText: body.ResumeText,
		FileKey:    body.FileKey,
		JobText:    body.JobText,
		RateLimit:  h.rateLimitState(userID),
	})
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "file_not_found", "no uploaded file matches file_key", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "comparison failed", nil)
		return
	}

	c.Set("comparisonId", cmp.ID)
	c.Set("resultSource", result.Source)
	respond.JSON(c, http.StatusCreated, compareResponseBody{
		ID:         cmp.ID,
		MatchScore: result.MatchScore,
		Source:     result.Source,
		Analysis:   result.Report,
		CreatedAt:  cmp.CreatedAt,
	})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := strings.TrimSpace(c.Param("id"))
	cmp, err := h.svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "comparison not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load comparison", nil)
		return
	}
	c.Set("comparisonId", cmp.ID)
	respond.OK(c, cmp)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit := 20
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	items, err := h.svc.List(c.Request.Context(), userID, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list comparisons", nil)
		return
	}
	if items == nil {
		items = []Comparison{}
	}
	respond.OK(c, gin.H{"comparisons": items})
}

// rateLimitState converts the shared token bucket into the explicit budget
// input the orchestrator takes.
func (h *Handler) rateLimitState(userID string) RateLimitState {
	if h.aiLimiter == nil || h.aiRule.Rate <= 0 {
		return RateLimitState{}
	}
	allowed, retryAfter := h.aiLimiter.Allow("ai|"+userID, h.aiRule)
	if allowed {
		return RateLimitState{}
	}
	return RateLimitState{
		RateLimited: true,
		ResetAt:     h.now().Add(retryAfter),
	}
}
