// Package store defines the persistence contracts the accounting core is
// written against. Adapters (gormstore for production, memory for the
// reference implementation) are interchangeable as long as they preserve
// the YYYY-MM-DD / YYYY-MM string key formats verbatim.
package store

import "spendcheck/internal/models"

// ExpenseStore persists expense records, scoped by user ID.
type ExpenseStore interface {
	// Add persists a new expense. The adapter assigns ID and CreatedAt if
	// they are not already set. Duplicates (same category/date/amount) are
	// valid and never rejected.
	Add(userID string, expense *models.Expense) error

	// List returns all of the user's expenses, in no particular order.
	List(userID string) ([]models.Expense, error)

	// ListRange returns the user's expenses with startKey <= date <= endKey,
	// sorted descending by date. Both bounds are inclusive.
	ListRange(userID, startKey, endKey string) ([]models.Expense, error)

	// Remove deletes an expense by id. Removing a nonexistent id is a
	// silent no-op, which makes retries from the UI idempotent.
	Remove(userID, id string) error

	// RemoveByMonthPrefix bulk-deletes every expense whose date starts with
	// monthKey. Irreversible.
	RemoveByMonthPrefix(userID, monthKey string) error
}

// BudgetStore persists monthly limits keyed by YYYY-MM month key.
type BudgetStore interface {
	// Get returns the limit in cents for the month, or 0 when unset.
	Get(userID, monthKey string) (int64, error)

	// Set creates or overwrites the month's limit. Callers validate the
	// limit first; adapters are the last line of defense and must reject
	// limitCents <= 0.
	Set(userID, monthKey string, limitCents int64) error
}
