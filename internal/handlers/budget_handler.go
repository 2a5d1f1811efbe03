package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendcheck/internal/errors"
	"spendcheck/internal/services"
)

// BudgetHandler handles monthly limit requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudgetRequest represents the request payload for setting a monthly limit
type SetBudgetRequest struct {
	LimitCents int64 `json:"limit_cents" binding:"required,gt=0"`
}

// BudgetResponse represents a monthly limit in the response
type BudgetResponse struct {
	MonthKey   string `json:"month_key"`
	LimitCents int64  `json:"limit_cents"`
}

// SetBudget handles setting or replacing a month's spending limit
// @Summary     Set monthly limit
// @Description Set the spending limit for a month, replacing any previous value
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       monthKey path string           true "Month (YYYY-MM)"
// @Param       request  body SetBudgetRequest true "Limit in cents"
// @Success     200 {object} BudgetResponse "Limit saved"
// @Failure     400 {object} ErrorResponse "Invalid month or limit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /budgets/{monthKey} [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	monthKey := c.Param("monthKey")
	if err := h.budgetService.SetLimit(userID, monthKey, req.LimitCents); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"budget": gin.H{
			"month_key":   monthKey,
			"limit_cents": req.LimitCents,
		},
	})
}

// GetBudget handles the retrieval of a month's spending limit
// @Summary     Get monthly limit
// @Description Get the spending limit for a month. A month with no limit returns zero.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       monthKey path string true "Month (YYYY-MM)"
// @Success     200 {object} BudgetResponse "Limit for the month"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /budgets/{monthKey} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	monthKey := c.Param("monthKey")
	limitCents, err := h.budgetService.GetLimit(userID, monthKey)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"budget": gin.H{
			"month_key":   monthKey,
			"limit_cents": limitCents,
		},
	})
}
