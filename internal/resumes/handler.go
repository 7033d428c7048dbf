package resumes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobfit-backend/internal/llm"
	"jobfit-backend/internal/shared/server/middleware"
	"jobfit-backend/internal/shared/server/respond"
)

// Handler exposes the resume parse and builder API.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/resumes/parse", h.parse)
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.GET("/resumes/:id/preview", h.preview)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
}

type parseRequestBody struct {
	ResumeText string `json:"resume_text"`
}

func (h *Handler) parse(c *gin.Context) {
	var body parseRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body must be valid JSON", nil)
		return
	}
	if strings.TrimSpace(body.ResumeText) == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "resume_text is required", nil)
		return
	}

	parsed, err := h.svc.ParseResume(c.Request.Context(), body.ResumeText)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "model_unavailable", "the parsing model is unavailable", nil)
		case errors.Is(err, ErrInvalidParsedData):
			respond.Error(c, http.StatusBadGateway, "invalid_model_response", "the parsing model returned unusable output", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "resume parsing failed", nil)
		}
		return
	}
	respond.OK(c, gin.H{"data": parsed})
}

type resumeRequestBody struct {
	Title string           `json:"title"`
	Data  ParsedResumeData `json:"data"`
}

func (h *Handler) create(c *gin.Context) {
	var body resumeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body must be valid JSON", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	resume, err := h.svc.Create(c.Request.Context(), userID, body.Title, body.Data)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to create resume", nil)
		return
	}
	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusCreated, resume)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resume, err := h.svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.Set("resumeId", resume.ID)
	respond.OK(c, resume)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	items, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list resumes", nil)
		return
	}
	if items == nil {
		items = []Resume{}
	}
	respond.OK(c, gin.H{"resumes": items})
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	html, err := h.svc.Preview(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) update(c *gin.Context) {
	var body resumeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body must be valid JSON", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	resume, err := h.svc.Update(c.Request.Context(), userID, c.Param("id"), body.Title, body.Data)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.Set("resumeId", resume.ID)
	respond.OK(c, resume)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal", "resume operation failed", nil)
}
