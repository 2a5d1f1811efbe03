package services

import (
	"spendcheck/internal/budget"
	"spendcheck/internal/models"
	"spendcheck/internal/pagination"
	"spendcheck/internal/period"
	"spendcheck/internal/report"
)

// UserServicer defines the contract for user-related business logic. It is
// the identity collaborator: the accounting services below only ever see
// the opaque user ID it hands out.
type UserServicer interface {
	CreateUser(email, password string, tone models.FeedbackTone) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateFeedbackTone(id string, tone models.FeedbackTone) (*models.User, error)
}

// ExpenseServicer defines the contract for expense logging. AddExpense
// returns the stored record plus the feedback quip to show the user.
type ExpenseServicer interface {
	AddExpense(userID string, amountCents int64, category, note, date string) (*models.Expense, string, error)
	ListExpenses(userID string, page pagination.PageRequest, from, to string) (*pagination.PageResponse[models.Expense], error)
	DeleteExpense(userID, id string) error
	ResetMonth(userID, monthKey string) error
}

// BudgetServicer defines the contract for monthly limit management.
type BudgetServicer interface {
	SetLimit(userID, monthKey string, limitCents int64) error
	GetLimit(userID, monthKey string) (int64, error)
}

// Summary is the view model one refresh cycle produces: today's total, the
// active range's total and ordered expense list, and the evaluated budget
// status for the active month.
type Summary struct {
	MonthKey        string           `json:"month_key"`
	Range           period.RangeType `json:"range"`
	RangeStart      string           `json:"range_start"`
	RangeEnd        string           `json:"range_end"`
	TodayTotalCents int64            `json:"today_total_cents"`
	RangeTotalCents int64            `json:"range_total_cents"`
	Expenses        []models.Expense `json:"expenses"`
	Budget          budget.Status    `json:"budget"`
	RolledOver      bool             `json:"rolled_over"`
}

// SummaryServicer defines the contract for the refresh cycle and exports.
type SummaryServicer interface {
	GetSummary(userID, rangeType string) (*Summary, error)
	CategoryRollup(userID string) (string, []report.CategoryTotal, error)
}
