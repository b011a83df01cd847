package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthtrack-backend-go/internal/models"
)

// identityContextKey is where the resolved identity lives in the gin
// context.
const identityContextKey = "identity"

// ErrorResponse mirrors the API error shape; defined here as well to
// avoid an import cycle with internal/api.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware resolves the request identity. In live mode it
// verifies Firebase ID tokens; in synthetic mode it injects the fixed
// demo identity, matching the original app's unauthenticated demo
// session.
type AuthMiddleware struct {
	authClient *auth.Client
	demo       *models.Identity
	logger     *zap.Logger
}

// NewAuthMiddleware creates the live-mode middleware.
func NewAuthMiddleware(authClient *auth.Client, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{authClient: authClient, logger: logger}
}

// NewDemoAuthMiddleware creates the synthetic-mode middleware: every
// request runs as the given identity, no token required.
func NewDemoAuthMiddleware(demo *models.Identity, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{demo: demo, logger: logger}
}

// Resolve is the gin handler that authenticates the request and stores
// the identity for downstream handlers.
func (m *AuthMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.demo != nil {
			c.Set(identityContextKey, m.demo)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}

		token, err := m.authClient.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			m.logger.Warn("rejected ID token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		identity := &models.Identity{ID: token.UID}
		if email, ok := token.Claims["email"].(string); ok {
			identity.Email = email
		}
		if name, ok := token.Claims["name"].(string); ok {
			identity.DisplayName = name
		}
		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity resolved by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (*models.Identity, bool) {
	v, ok := c.Get(identityContextKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*models.Identity)
	return identity, ok
}
