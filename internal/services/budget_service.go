package services

import (
	apperrors "spendcheck/internal/errors"
	"spendcheck/internal/period"
	"spendcheck/internal/store"
)

// budgetService manages monthly spending limits.
type budgetService struct {
	budgets store.BudgetStore
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(budgets store.BudgetStore) BudgetServicer {
	return &budgetService{budgets: budgets}
}

// SetLimit creates or overwrites the limit for a month. The limit must be
// positive; a month with no budget is represented by never setting one,
// not by a zero limit.
func (s *budgetService) SetLimit(userID, monthKey string, limitCents int64) error {
	if !period.ValidMonthKey(monthKey) {
		return apperrors.ErrInvalidMonthKey
	}
	if limitCents <= 0 {
		return apperrors.ErrInvalidLimit
	}
	return s.budgets.Set(userID, monthKey, limitCents)
}

// GetLimit returns the month's limit in cents, or 0 when unset.
func (s *budgetService) GetLimit(userID, monthKey string) (int64, error) {
	if !period.ValidMonthKey(monthKey) {
		return 0, apperrors.ErrInvalidMonthKey
	}
	return s.budgets.Get(userID, monthKey)
}
