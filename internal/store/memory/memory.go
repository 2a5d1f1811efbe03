// Package memory is the in-memory reference implementation of the store
// interfaces. It backs unit tests and doubles as executable documentation
// of the adapter contract: string date keys, idempotent deletes, and
// per-user scoping.
package memory

import (
	"strings"
	"sync"
	"time"

	apperrors "spendcheck/internal/errors"
	"spendcheck/internal/models"
	"spendcheck/internal/store"
	"spendcheck/internal/uuid"
)

// ExpenseStore is a map-backed store.ExpenseStore.
type ExpenseStore struct {
	mu       sync.RWMutex
	expenses map[string][]models.Expense // userID -> records
}

// NewExpenseStore creates an empty in-memory expense store.
func NewExpenseStore() *ExpenseStore {
	return &ExpenseStore{expenses: make(map[string][]models.Expense)}
}

// Add appends a copy of the expense, assigning ID and CreatedAt when unset.
func (s *ExpenseStore) Add(userID string, expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expense.ID == "" {
		expense.ID = uuid.New()
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now()
	}
	expense.UserID = userID

	s.expenses[userID] = append(s.expenses[userID], *expense)
	return nil
}

// List returns all of the user's expenses in insertion order.
func (s *ExpenseStore) List(userID string) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Expense, len(s.expenses[userID]))
	copy(out, s.expenses[userID])
	return out, nil
}

// ListRange returns expenses within the inclusive key range, newest date first.
func (s *ExpenseStore) ListRange(userID, startKey, endKey string) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Expense
	for _, e := range s.expenses[userID] {
		if e.Date >= startKey && e.Date <= endKey {
			out = append(out, e)
		}
	}
	// Insertion-stable descending sort by date key.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Date > out[j-1].Date; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

// Remove deletes by id; a missing id is a no-op.
func (s *ExpenseStore) Remove(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.expenses[userID]
	for i, e := range records {
		if e.ID == id {
			s.expenses[userID] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return nil
}

// RemoveByMonthPrefix deletes every expense dated within the given month.
func (s *ExpenseStore) RemoveByMonthPrefix(userID, monthKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.expenses[userID][:0]
	for _, e := range s.expenses[userID] {
		if !strings.HasPrefix(e.Date, monthKey+"-") {
			kept = append(kept, e)
		}
	}
	s.expenses[userID] = kept
	return nil
}

// BudgetStore is a map-backed store.BudgetStore.
type BudgetStore struct {
	mu     sync.RWMutex
	limits map[string]map[string]int64 // userID -> monthKey -> cents
}

// NewBudgetStore creates an empty in-memory budget store.
func NewBudgetStore() *BudgetStore {
	return &BudgetStore{limits: make(map[string]map[string]int64)}
}

// Get returns the month's limit, or 0 when unset.
func (s *BudgetStore) Get(userID, monthKey string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.limits[userID][monthKey], nil
}

// Set creates or overwrites the month's limit.
func (s *BudgetStore) Set(userID, monthKey string, limitCents int64) error {
	if limitCents <= 0 {
		return apperrors.ErrInvalidLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limits[userID] == nil {
		s.limits[userID] = make(map[string]int64)
	}
	s.limits[userID][monthKey] = limitCents
	return nil
}

var (
	_ store.ExpenseStore = (*ExpenseStore)(nil)
	_ store.BudgetStore  = (*BudgetStore)(nil)
)
