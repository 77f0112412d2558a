package handler

import (
	"context"
	"net/http"

	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

type ReportServiceInterface interface {
	Dashboard(ctx context.Context) (models.Dashboard, error)
	Reports(ctx context.Context) (models.Reports, error)
}

type ReportHandler struct {
	service ReportServiceInterface
}

func NewReportHandler(service ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// DashboardHandler handles GET /admin/dashboard
func (h *ReportHandler) DashboardHandler(c *gin.Context) {
	dashboard, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "DashboardHandler", "error building dashboard", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, dashboard, "dashboard retrieved successfully")
	helpers.LogSuccess("DashboardHandler", "dashboard retrieved successfully", map[string]any{
		"pending_listings": dashboard.PendingListings,
		"total_users":      dashboard.TotalUsers,
	})
}

// ReportsHandler handles GET /admin/reports
func (h *ReportHandler) ReportsHandler(c *gin.Context) {
	reports, err := h.service.Reports(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ReportsHandler", "error building reports", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, reports, "reports retrieved successfully")
	helpers.LogSuccess("ReportsHandler", "reports retrieved successfully", map[string]any{
		"top_sellers": len(reports.TopSellers),
	})
}
