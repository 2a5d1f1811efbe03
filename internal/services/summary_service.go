package services

import (
	"sync"
	"time"

	"spendcheck/internal/budget"
	apperrors "spendcheck/internal/errors"
	"spendcheck/internal/logger"
	"spendcheck/internal/models"
	"spendcheck/internal/period"
	"spendcheck/internal/report"
	"spendcheck/internal/session"
	"spendcheck/internal/store"
)

// summaryService runs the refresh cycle: rollover check, aggregation over
// the active window, and budget evaluation. Session state (active range,
// active month) lives in process per user; concurrent sessions for the
// same user are last-writer-wins.
type summaryService struct {
	expenses store.ExpenseStore
	budgets  store.BudgetStore

	mu       sync.Mutex
	sessions map[string]*session.Session
	now      func() time.Time
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(expenses store.ExpenseStore, budgets store.BudgetStore) SummaryServicer {
	return &summaryService{
		expenses: expenses,
		budgets:  budgets,
		sessions: make(map[string]*session.Session),
		now:      time.Now,
	}
}

// refreshSession fetches (or creates) the user's session, applies the
// month rollover if wall-clock time crossed a boundary, and optionally
// switches the display range.
func (s *summaryService) refreshSession(userID, rangeType string, now time.Time) (*session.Session, bool, error) {
	if rangeType != "" && !period.ValidRangeType(rangeType) {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "range must be day, week, or month")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = session.New(now)
		s.sessions[userID] = sess
	}

	rolled := sess.Refresh(now)
	if rangeType != "" {
		sess.SetRange(period.RangeType(rangeType))
	}
	return sess, rolled, nil
}

// GetSummary produces the view model for one refresh. Store read failures
// degrade to an empty data set rather than failing the refresh; the
// in-memory session state is never corrupted by a failed read.
func (s *summaryService) GetSummary(userID, rangeType string) (*Summary, error) {
	now := s.now()
	sess, rolled, err := s.refreshSession(userID, rangeType, now)
	if err != nil {
		return nil, err
	}

	expenses := s.listDegraded(userID)

	todayKey := period.DateKey(now)
	todayTotal := report.Sum(report.InRange(expenses, todayKey, todayKey))

	rangeStart, rangeEnd := period.RangeBounds(sess.Range, now)
	rangeExpenses := report.InRange(expenses, rangeStart, rangeEnd)

	monthStart, monthEnd, err := period.MonthBounds(sess.MonthKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	monthTotal := report.Sum(report.InRange(expenses, monthStart, monthEnd))

	limit, err := s.budgets.Get(userID, sess.MonthKey)
	if err != nil {
		logger.Get().Warnw("budget read failed, treating month as unset",
			"user_id", userID, "month_key", sess.MonthKey, "error", err)
		limit = 0
	}

	return &Summary{
		MonthKey:        sess.MonthKey,
		Range:           sess.Range,
		RangeStart:      rangeStart,
		RangeEnd:        rangeEnd,
		TodayTotalCents: todayTotal,
		RangeTotalCents: report.Sum(rangeExpenses),
		Expenses:        rangeExpenses,
		Budget:          budget.Evaluate(monthTotal, limit),
		RolledOver:      rolled,
	}, nil
}

// CategoryRollup returns the active month's per-category totals for export.
// Like GetSummary, it counts as a refresh and applies the rollover first.
func (s *summaryService) CategoryRollup(userID string) (string, []report.CategoryTotal, error) {
	now := s.now()
	sess, _, err := s.refreshSession(userID, "", now)
	if err != nil {
		return "", nil, err
	}

	monthStart, monthEnd, err := period.MonthBounds(sess.MonthKey)
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expenses := s.listDegraded(userID)
	monthExpenses := report.InRange(expenses, monthStart, monthEnd)
	return sess.MonthKey, report.CategoryTotals(monthExpenses), nil
}

// listDegraded reads all of the user's expenses, degrading to an empty set
// on store failure so the app stays usable in a "no data" view.
func (s *summaryService) listDegraded(userID string) []models.Expense {
	expenses, err := s.expenses.List(userID)
	if err != nil {
		logger.Get().Warnw("expense read failed, degrading to empty view",
			"user_id", userID, "error", err)
		return nil
	}
	return expenses
}
