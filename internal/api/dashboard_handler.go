package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fittrack/fittrack/internal/fitness"
	"github.com/fittrack/fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	exportService    service.ExportService
}

func NewDashboardHandler(dashboardService service.DashboardService, exportService service.ExportService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, exportService: exportService}
}

// Dashboard godoc
// @Summary Get my dashboard
// @Description Progress summary as of today. days limits the chart range; 0 charts everything.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param days query int false "Chart range in days" default(30)
// @Success 200 {object} fitness.Summary
// @Failure 400 {object} gin.H "Invalid days"
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	days := fitness.DefaultChartDays
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 0 {
			abortWithError(c, http.StatusBadRequest, "days must be a non-negative integer")
			return
		}
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), userID, days)
	if err != nil {
		handleServiceError(c, err, "Failed to build dashboard.")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Export godoc
// @Summary Export all my data
// @Description Writes a JSON snapshot to object storage and returns a temporary download URL.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 201 {object} service.ExportResult
// @Failure 503 {object} gin.H "Export storage not configured"
// @Router /export [post]
func (h *DashboardHandler) Export(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	res, err := h.exportService.Export(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrExportUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		handleServiceError(c, err, "Failed to export data.")
		return
	}
	c.JSON(http.StatusCreated, res)
}
