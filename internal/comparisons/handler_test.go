package comparisons

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobfit-backend/internal/shared/server/middleware"
)

func newTestRouter(t *testing.T, client *stubLLM) (*gin.Engine, *MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, repo := newTestService(client, nil)
	handler := NewHandler(svc, nil, middleware.RateLimitRule{})

	router := gin.New()
	router.Use(middleware.Identity())
	group := router.Group("/api/v1")
	handler.Register(group)
	return router, repo
}

func TestCreateComparisonEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{raw: json.RawMessage(validReportJSON)})

	body := `{"resume_text": "go engineer", "job_description_text": "go engineer wanted"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var resp compareResponseBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Source != SourceAI {
		t.Fatalf("source = %q, want %q", resp.Source, SourceAI)
	}
	if resp.MatchScore != 82 {
		t.Fatalf("match_score = %d, want 82", resp.MatchScore)
	}
	if resp.ID == "" {
		t.Fatal("expected a comparison id")
	}
}

func TestCreateComparisonFallbackOnModelOutage(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{err: assertableErr("model down")})

	body := `{"resume_text": "python developer", "job_description_text": "python role"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 even during outage, body %s", rec.Code, rec.Body.String())
	}
	var resp compareResponseBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Source != SourceFallback {
		t.Fatalf("source = %q, want %q", resp.Source, SourceFallback)
	}
}

func TestCreateComparisonRejectsBadJSON(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetComparisonScopedToUser(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{raw: json.RawMessage(validReportJSON)})

	body := `{"resume_text": "go engineer", "job_description_text": "go engineer wanted"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var created compareResponseBody
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	get := httptest.NewRequest(http.MethodGet, "/api/v1/comparisons/"+created.ID, nil)
	get.Header.Set("X-User-Id", "user-1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, get)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	other := httptest.NewRequest(http.MethodGet, "/api/v1/comparisons/"+created.ID, nil)
	other.Header.Set("X-User-Id", "user-2")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, other)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for another user", rec.Code)
	}
}

func TestListComparisonsEmpty(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/comparisons", nil)
	req.Header.Set("X-User-Id", "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"comparisons":[]`) {
		t.Fatalf("expected empty list, got %s", rec.Body.String())
	}
}

type assertableErr string

func (e assertableErr) Error() string { return string(e) }
