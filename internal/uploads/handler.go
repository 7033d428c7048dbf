// Package uploads accepts resume file uploads and stores them in the object
// store. The returned file_key can be passed to the comparison API.
package uploads

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobfit-backend/internal/shared/server/middleware"
	"jobfit-backend/internal/shared/server/respond"
	"jobfit-backend/internal/shared/storage/object"
	"jobfit-backend/internal/shared/util"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
	".md":   true,
}

type Handler struct {
	store object.Store
	newID func() string
}

func NewHandler(store object.Store) *Handler {
	return &Handler{store: store, newID: uuid.NewString}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/files", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	if h.store == nil {
		respond.Error(c, http.StatusServiceUnavailable, "storage_unavailable", "file storage is not configured", nil)
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "multipart field 'file' is required", nil)
		return
	}
	if file.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the 10 MiB limit", nil)
		return
	}

	safeName, err := util.SanitizeFileName(file.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_file_name", "file name is not acceptable", nil)
		return
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(safeName))] {
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_file_type", "only pdf, docx, txt, and md files are accepted", nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to read upload", nil)
		return
	}
	defer src.Close()

	userID := middleware.UserIDFromContext(c)
	key := fmt.Sprintf("uploads/%s/%s-%s", util.HashUserKey(userID)[:16], h.newID(), safeName)
	contentType := file.Header.Get("Content-Type")

	if err := h.store.Put(c.Request.Context(), key, contentType, src); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to store upload", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"file_key":     key,
		"file_name":    safeName,
		"size":         file.Size,
		"content_type": contentType,
	})
}
