package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finboard/internal/services"
)

// SummaryHandler serves the dashboard summary.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// SummaryQuery selects the summary period and account.
type SummaryQuery struct {
	From      string `form:"from" binding:"omitempty,calendar_date"`
	To        string `form:"to" binding:"omitempty,calendar_date"`
	AccountID string `form:"accountId" binding:"omitempty,uuid"`
}

// GetSummary returns totals, changes, top categories and the daily series
// @Summary     Dashboard summary
// @Description Income, expenses and remaining for the period with change against the previous period of equal length
// @Tags        summary
// @Produce     json
// @Security    SessionCookie
// @Param       from      query string false "Start date (yyyy-MM-dd), default 30 days ago"
// @Param       to        query string false "End date (yyyy-MM-dd), default today"
// @Param       accountId query string false "Only this account"
// @Success     200 {object} summary.Summary
// @Failure     400 {object} ErrorResponse "Invalid date or range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	query := services.SummaryQuery{From: q.From, To: q.To}
	if q.AccountID != "" {
		query.AccountID = &q.AccountID
	}

	result, err := h.summaryService.GetSummary(c.Request.Context(), userID, query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}
