package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/dto"
	"github.com/quillbooks/pocket_ledger/internal/middleware"
)

// reportingHandler handles HTTP requests for summary reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/wealth", h.getWealthSummary)
		reports.GET("/income-expense", h.getIncomeExpenseSummary)
	}
}

func (h *reportingHandler) getWealthSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseTimeParam(c, "asOf", time.Now().UTC(), true)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date"})
		return
	}

	summary, err := h.reportingService.GetWealthSummary(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to compute wealth summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute wealth summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWealthSummaryResponse(summary))
}

func (h *reportingHandler) getIncomeExpenseSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := time.Now().UTC()
	from, ok := parseTimeParam(c, "from", now.AddDate(0, -1, 0), false)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
		return
	}
	to, ok := parseTimeParam(c, "to", now, true)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return
	}

	summary, err := h.reportingService.GetIncomeExpenseSummary(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to compute income/expense summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute income/expense summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeExpenseSummaryResponse(summary))
}
