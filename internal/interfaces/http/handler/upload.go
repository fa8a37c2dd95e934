package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	sessionapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/session"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/shared"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/api"
)

// UploadAPI is the backend surface the upload handler depends on
type UploadAPI interface {
	UploadImage(ctx context.Context, filename string, r io.Reader) (*api.UploadResult, error)
}

// UploadHandler forwards image uploads to the commerce backend
type UploadHandler struct {
	BaseHandler
	uploads  UploadAPI
	sessions *sessionapp.Store
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploads UploadAPI, sessions *sessionapp.Store) *UploadHandler {
	return &UploadHandler{uploads: uploads, sessions: sessions}
}

// RegisterRoutes registers the upload routes
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.UploadImage)
}

// UploadImage forwards a multipart image upload. Requires a signed-in
// session since the backend rejects anonymous uploads.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		h.HandleError(c, shared.ErrNotAuthenticated)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file field")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Unreadable file")
		return
	}
	defer file.Close()

	result, err := h.uploads.UploadImage(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}
