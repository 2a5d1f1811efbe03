package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"spendcheck/internal/export"
	"spendcheck/internal/services"
)

// SummaryHandler handles dashboard summary and export requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary handles the dashboard refresh
// @Summary     Get spending summary
// @Description Get today's total, the active range's expenses and total, and the evaluated
// @Description budget status for the current month. Crossing a month boundary since the last
// @Description call rolls the session over to the new month.
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       range query string false "View range: day, week, or month (default last selected)"
// @Success     200 {object} services.Summary "Spending summary"
// @Failure     400 {object} ErrorResponse "Invalid range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetSummary(userID, c.Query("range"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportCategories handles the category rollup CSV export
// @Summary     Export category totals
// @Description Download the current month's per-category totals as CSV, largest first,
// @Description with a trailing grand-total row
// @Tags        summary
// @Accept      json
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV body"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/export [get]
func (h *SummaryHandler) ExportCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	monthKey, rows, err := h.summaryService.CategoryRollup(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="spending-%s.csv"`, monthKey))
	c.Status(http.StatusOK)

	if err := export.CategoryCSV(c.Writer, rows); err != nil {
		respondWithError(c, err)
		return
	}
}
