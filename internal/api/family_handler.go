package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack-backend-go/internal/core"
	"healthtrack-backend-go/internal/models"
)

// FamilyHandler handles the family member endpoints.
type FamilyHandler struct {
	family core.FamilyService
}

// NewFamilyHandler creates a FamilyHandler.
func NewFamilyHandler(fs core.FamilyService) *FamilyHandler {
	return &FamilyHandler{family: fs}
}

// ListMembers handles GET /api/v1/family.
func (h *FamilyHandler) ListMembers(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	members, err := h.family.ListMembers(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if members == nil {
		members = []*models.FamilyLink{}
	}
	c.JSON(http.StatusOK, members)
}

// Invite handles POST /api/v1/family/invitations.
func (h *FamilyHandler) Invite(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req models.InviteFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	link, err := h.family.Invite(c.Request.Context(), identity.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}
