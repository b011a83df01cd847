package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"healthtrack-backend-go/internal/core"
	"healthtrack-backend-go/internal/models"
)

// VitalHandler handles the vitals and dashboard endpoints.
type VitalHandler struct {
	vitals core.VitalService
}

// NewVitalHandler creates a VitalHandler.
func NewVitalHandler(vs core.VitalService) *VitalHandler {
	return &VitalHandler{vitals: vs}
}

// RecordVital handles POST /api/v1/vitals.
func (h *VitalHandler) RecordVital(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req models.RecordVitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	reading, err := h.vitals.RecordVital(c.Request.Context(), identity.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reading)
}

// ListVitals handles GET /api/v1/vitals?type=&limit=&days=.
func (h *VitalHandler) ListVitals(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	kind := models.VitalKind(c.Query("type"))
	limit := intQuery(c, "limit", 100)
	days := intQuery(c, "days", 30)

	vitals, err := h.vitals.ListVitals(c.Request.Context(), identity.ID, kind, limit, days)
	if err != nil {
		respondError(c, err)
		return
	}
	if vitals == nil {
		vitals = []*models.VitalReading{}
	}
	c.JSON(http.StatusOK, vitals)
}

// LatestVital handles GET /api/v1/vitals/latest/:type. A missing
// reading answers 200 with a null body: "no data" is not a failure.
func (h *VitalHandler) LatestVital(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	reading, err := h.vitals.LatestVital(c.Request.Context(), identity.ID, models.VitalKind(c.Param("type")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reading)
}

// Statistics handles GET /api/v1/vitals/stats/:type?days=.
func (h *VitalHandler) Statistics(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	days := intQuery(c, "days", 30)
	stats, err := h.vitals.ComputeStatistics(c.Request.Context(), identity.ID, models.VitalKind(c.Param("type")), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DeleteVital handles DELETE /api/v1/vitals/:id.
func (h *VitalHandler) DeleteVital(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := h.vitals.DeleteVital(c.Request.Context(), identity.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Dashboard handles GET /api/v1/dashboard.
func (h *VitalHandler) Dashboard(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	summary, err := h.vitals.DashboardSummary(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	recents, err := h.vitals.RecentVitals(c.Request.Context(), identity.ID, 5)
	if err != nil {
		respondError(c, err)
		return
	}
	if summary == nil {
		summary = []*models.VitalSummary{}
	}
	if recents == nil {
		recents = []*models.RecentVital{}
	}
	c.JSON(http.StatusOK, gin.H{"latestVitals": summary, "recentVitals": recents})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
