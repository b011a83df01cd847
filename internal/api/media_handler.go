package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack-backend-go/internal/core"
	"healthtrack-backend-go/internal/models"
)

// MediaHandler handles the medical documents and photos endpoints.
// Both collections share the same request/response shape, so the
// handlers delegate through small closures over the service.
type MediaHandler struct {
	media core.MediaService
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(ms core.MediaService) *MediaHandler {
	return &MediaHandler{media: ms}
}

// SaveDocument handles POST /api/v1/documents.
func (h *MediaHandler) SaveDocument(c *gin.Context) {
	h.save(c, h.media.SaveDocument)
}

// ListDocuments handles GET /api/v1/documents?limit=.
func (h *MediaHandler) ListDocuments(c *gin.Context) {
	h.list(c, h.media.ListDocuments)
}

// DeleteDocument handles DELETE /api/v1/documents/:id.
func (h *MediaHandler) DeleteDocument(c *gin.Context) {
	h.remove(c, h.media.DeleteDocument)
}

// SavePhoto handles POST /api/v1/photos.
func (h *MediaHandler) SavePhoto(c *gin.Context) {
	h.save(c, h.media.SavePhoto)
}

// ListPhotos handles GET /api/v1/photos?limit=.
func (h *MediaHandler) ListPhotos(c *gin.Context) {
	h.list(c, h.media.ListPhotos)
}

// DeletePhoto handles DELETE /api/v1/photos/:id.
func (h *MediaHandler) DeletePhoto(c *gin.Context) {
	h.remove(c, h.media.DeletePhoto)
}

func (h *MediaHandler) save(c *gin.Context, fn func(ctx context.Context, ownerID string, req models.SaveMediaRequest) (*models.MediaItem, error)) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req models.SaveMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	item, err := fn(c.Request.Context(), identity.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MediaHandler) list(c *gin.Context, fn func(ctx context.Context, ownerID string, limit int) ([]*models.MediaItem, error)) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	items, err := fn(c.Request.Context(), identity.ID, intQuery(c, "limit", 100))
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []*models.MediaItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *MediaHandler) remove(c *gin.Context, fn func(ctx context.Context, ownerID, id string) error) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), identity.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
