// Package gormstore implements the store interfaces on top of GORM.
// Production runs it against PostgreSQL; tests run the same code against
// in-memory SQLite.
package gormstore

import (
	apperrors "spendcheck/internal/errors"
	"spendcheck/internal/models"
	"spendcheck/internal/store"

	"gorm.io/gorm"
)

type expenseStore struct {
	db *gorm.DB
}

// NewExpenseStore creates an ExpenseStore backed by the given database.
func NewExpenseStore(db *gorm.DB) store.ExpenseStore {
	return &expenseStore{db: db}
}

func (s *expenseStore) Add(userID string, expense *models.Expense) error {
	expense.UserID = userID
	if err := s.db.Create(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *expenseStore) List(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return expenses, nil
}

func (s *expenseStore) ListRange(userID, startKey, endKey string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startKey, endKey).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return expenses, nil
}

func (s *expenseStore) Remove(userID, id string) error {
	// Zero rows affected means the id didn't exist; that is not an error.
	result := s.db.Where("user_id = ? AND id = ?", userID, id).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, result.Error)
	}
	return nil
}

func (s *expenseStore) RemoveByMonthPrefix(userID, monthKey string) error {
	result := s.db.
		Where("user_id = ? AND date LIKE ?", userID, monthKey+"-%").
		Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, result.Error)
	}
	return nil
}
