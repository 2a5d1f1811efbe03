package services

import (
	"sort"
	"time"

	apperrors "spendcheck/internal/errors"
	"spendcheck/internal/feedback"
	"spendcheck/internal/models"
	"spendcheck/internal/pagination"
	"spendcheck/internal/period"
	"spendcheck/internal/store"
)

// expenseService handles expense logging against the expense store.
type expenseService struct {
	expenses store.ExpenseStore
	users    UserServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(expenses store.ExpenseStore, users UserServicer) ExpenseServicer {
	return &expenseService{expenses: expenses, users: users}
}

// AddExpense validates and persists a new expense, then picks the feedback
// quip for the user's tone. Validation happens before any store call, so a
// rejected add never mutates anything. An empty date defaults to today.
func (s *expenseService) AddExpense(userID string, amountCents int64, category, note, date string) (*models.Expense, string, error) {
	if amountCents <= 0 {
		return nil, "", apperrors.ErrInvalidAmount
	}
	if date == "" {
		date = period.DateKey(time.Now())
	} else if !period.ValidDateKey(date) {
		return nil, "", apperrors.ErrInvalidDateKey
	}

	expense := &models.Expense{
		AmountCents: amountCents,
		Category:    category,
		Note:        note,
		Date:        date,
	}
	if err := s.expenses.Add(userID, expense); err != nil {
		return nil, "", err
	}

	tone := models.ToneBalanced
	if user, err := s.users.GetUserByID(userID); err == nil {
		tone = user.FeedbackTone
	}
	return expense, feedback.Quip(tone), nil
}

// ListExpenses returns a page of the user's expenses, newest date first.
// When from/to are given the window is inclusive on both bounds.
func (s *expenseService) ListExpenses(userID string, page pagination.PageRequest, from, to string) (*pagination.PageResponse[models.Expense], error) {
	if (from == "") != (to == "") {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from and to must be provided together")
	}

	var (
		expenses []models.Expense
		err      error
	)
	if from != "" {
		if !period.ValidDateKey(from) || !period.ValidDateKey(to) {
			return nil, apperrors.ErrInvalidDateKey
		}
		expenses, err = s.expenses.ListRange(userID, from, to)
	} else {
		expenses, err = s.expenses.List(userID)
		if err == nil {
			sort.SliceStable(expenses, func(i, j int) bool {
				return expenses[i].Date > expenses[j].Date
			})
		}
	}
	if err != nil {
		return nil, err
	}

	result := pagination.Paginate(expenses, page)
	return &result, nil
}

// DeleteExpense removes an expense by id. Deleting an id that does not
// exist (or was already deleted) succeeds silently.
func (s *expenseService) DeleteExpense(userID, id string) error {
	return s.expenses.Remove(userID, id)
}

// ResetMonth bulk-deletes every expense logged in the given month.
func (s *expenseService) ResetMonth(userID, monthKey string) error {
	if !period.ValidMonthKey(monthKey) {
		return apperrors.ErrInvalidMonthKey
	}
	return s.expenses.RemoveByMonthPrefix(userID, monthKey)
}
