package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack-backend-go/internal/core"
	"healthtrack-backend-go/internal/models"
)

// UserHandler handles profile, goal and export endpoints.
type UserHandler struct {
	users  core.UserService
	goals  core.GoalService
	export core.ExportService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(us core.UserService, gs core.GoalService, es core.ExportService) *UserHandler {
	return &UserHandler{users: us, goals: gs, export: es}
}

// Initialize handles POST /api/v1/users/initialize. First sign-in
// creates the profile from the token claims; later calls return the
// stored profile unchanged.
func (h *UserHandler) Initialize(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	profile, created, err := h.users.EnsureProfile(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, profile)
}

// GetProfile handles GET /api/v1/users/me.
func (h *UserHandler) GetProfile(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	profile, err := h.users.GetProfile(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/users/me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	profile, err := h.users.UpdateProfile(c.Request.Context(), identity.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveGoal handles POST /api/v1/goals.
func (h *UserHandler) SaveGoal(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req models.SaveGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	goal, err := h.goals.SaveGoal(c.Request.Context(), identity.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// ListGoals handles GET /api/v1/goals.
func (h *UserHandler) ListGoals(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	goals, err := h.goals.ListGoals(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if goals == nil {
		goals = []*models.HealthGoal{}
	}
	c.JSON(http.StatusOK, goals)
}

// ExportAllData handles GET /api/v1/export. The payload is served as
// an attachment so the browser offers a download.
func (h *UserHandler) ExportAllData(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	doc, err := h.export.ExportAllData(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="health-data-export.json"`)
	c.JSON(http.StatusOK, doc)
}
