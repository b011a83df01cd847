package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack-backend-go/internal/core"
	"healthtrack-backend-go/internal/models"
)

// ReportHandler handles blood report endpoints plus the shared
// file-upload endpoint.
type ReportHandler struct {
	reports core.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(rs core.ReportService) *ReportHandler {
	return &ReportHandler{reports: rs}
}

// SaveReport handles POST /api/v1/reports.
func (h *ReportHandler) SaveReport(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req models.SaveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	report, err := h.reports.SaveReport(c.Request.Context(), identity.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListReports handles GET /api/v1/reports?limit=.
func (h *ReportHandler) ListReports(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	reports, err := h.reports.ListReports(c.Request.Context(), identity.ID, intQuery(c, "limit", 50))
	if err != nil {
		respondError(c, err)
		return
	}
	if reports == nil {
		reports = []*models.Report{}
	}
	c.JSON(http.StatusOK, reports)
}

// DeleteReport handles DELETE /api/v1/reports/:id.
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := h.reports.DeleteReport(c.Request.Context(), identity.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Upload handles POST /api/v1/uploads (multipart, field "file").
func (h *ReportHandler) Upload(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required", Details: err.Error()})
		return
	}
	result, err := h.reports.Upload(c.Request.Context(), identity.ID, header)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
