package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendcheck/internal/errors"
	"spendcheck/internal/pagination"
	"spendcheck/internal/services"
)

// ExpenseHandler handles expense-logging requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for logging an expense
type CreateExpenseRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Category    string `json:"category" binding:"max=100"`
	Note        string `json:"note" binding:"max=500"`
	Date        string `json:"date" binding:"omitempty,date_key"`
}

// ExpenseResponse represents a logged expense plus the feedback quip
type ExpenseResponse struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount_cents"`
	Category    string `json:"category"`
	Note        string `json:"note"`
	Date        string `json:"date"`
	Quip        string `json:"quip"`
}

// CreateExpense handles logging a new expense
// @Summary     Log an expense
// @Description Log a dated, categorized expense. An omitted date defaults to today.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse "Expense logged"
// @Failure     400 {object} ErrorResponse "Invalid amount or date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, quip, err := h.expenseService.AddExpense(userID, req.AmountCents, req.Category, req.Note, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"expense": expense,
		"quip":    quip,
	})
}

// ListExpenses handles the retrieval of the user's expenses
// @Summary     List expenses
// @Description Get a paginated list of the user's expenses, newest first, with an optional inclusive date window
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       from      query string false "Window start (YYYY-MM-DD, requires to)"
// @Param       to        query string false "Window end (YYYY-MM-DD, requires from)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.expenseService.ListExpenses(userID, page, c.Query("from"), c.Query("to"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteExpense handles the deletion of an expense
// @Summary     Delete expense
// @Description Delete an expense by ID. Deleting an unknown ID succeeds silently.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// ResetMonth handles bulk deletion of a month's expenses
// @Summary     Reset a month
// @Description Delete every expense logged in the given month
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       monthKey path string true "Month (YYYY-MM)"
// @Success     200 {object} MessageResponse "Month reset"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /months/{monthKey}/expenses [delete]
func (h *ExpenseHandler) ResetMonth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.ResetMonth(userID, c.Param("monthKey")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Month reset successfully"})
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
