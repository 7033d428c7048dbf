package resumes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobfit-backend/internal/llm"
	"jobfit-backend/internal/shared/server/middleware"
)

func newTestRouter(t *testing.T, client llm.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService(client)

	router := gin.New()
	router.Use(middleware.Identity())
	group := router.Group("/api/v1")
	NewHandler(svc).Register(group)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestParseEndpoint(t *testing.T) {
	modelOutput := `{"summary": "Engineer", "experiences": [], "education": [], "contact_details": {}, "skills": ["Go"]}`
	router := newTestRouter(t, &stubLLM{raw: json.RawMessage(modelOutput)})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/resumes/parse", `{"resume_text": "Engineer with Go"}`, "user-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"skills":["Go"]`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestParseEndpointRequiresText(t *testing.T) {
	router := newTestRouter(t, &stubLLM{})
	rec := doJSON(t, router, http.MethodPost, "/api/v1/resumes/parse", `{"resume_text": "  "}`, "user-1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestParseEndpointModelOutage(t *testing.T) {
	router := newTestRouter(t, &stubLLM{err: llm.ErrUnavailable})
	rec := doJSON(t, router, http.MethodPost, "/api/v1/resumes/parse", `{"resume_text": "Engineer"}`, "user-1")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestResumeCRUDFlow(t *testing.T) {
	router := newTestRouter(t, &stubLLM{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/resumes",
		`{"title": "Backend CV", "data": {"summary": "Go engineer", "skills": ["Go", "go"]}}`, "user-1")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created Resume
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if len(created.Data.Skills) != 1 {
		t.Fatalf("skills not deduped: %+v", created.Data.Skills)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/resumes/"+created.ID, "", "user-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/resumes/"+created.ID, "", "user-2")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cross-user get status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPut, "/api/v1/resumes/"+created.ID,
		`{"title": "Renamed", "data": {}}`, "user-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"title":"Renamed"`) {
		t.Fatalf("unexpected update body: %s", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/resumes/"+created.ID, "", "user-1")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/resumes/"+created.ID, "", "user-1")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestPreviewEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubLLM{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/resumes",
		`{"title": "CV", "data": {"summary": "**Go** engineer"}}`, "user-1")
	var created Resume
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/resumes/"+created.ID+"/preview", "", "user-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("preview status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<strong>Go</strong>") {
		t.Fatalf("unexpected preview body: %s", rec.Body.String())
	}
}
