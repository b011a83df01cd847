package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack-backend-go/internal/core"
	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/middleware"
	"healthtrack-backend-go/internal/models"
)

// ErrorResponse is the standard error payload for every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// mustIdentity pulls the authenticated identity out of the context;
// a missing identity means the route was wired without AuthMiddleware.
func mustIdentity(c *gin.Context) (*models.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return nil, false
	}
	return identity, true
}

// respondError maps the service error taxonomy to HTTP statuses:
// validation 400, not-found 404, permission 403, remote outage 502,
// everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrProfileNotFound), errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, db.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "permission denied"})
	case errors.Is(err, db.ErrRemoteUnavailable):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "backend unavailable, please retry"})
	case errors.Is(err, core.ErrBlobDeleteFailed):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Details: err.Error()})
	}
}
