package gormstore

import (
	"errors"

	apperrors "spendcheck/internal/errors"
	"spendcheck/internal/models"
	"spendcheck/internal/store"

	"gorm.io/gorm"
)

type budgetStore struct {
	db *gorm.DB
}

// NewBudgetStore creates a BudgetStore backed by the given database.
func NewBudgetStore(db *gorm.DB) store.BudgetStore {
	return &budgetStore{db: db}
}

func (s *budgetStore) Get(userID, monthKey string) (int64, error) {
	var budget models.Budget
	err := s.db.Where("user_id = ? AND month_key = ?", userID, monthKey).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return budget.LimitCents, nil
}

func (s *budgetStore) Set(userID, monthKey string, limitCents int64) error {
	if limitCents <= 0 {
		return apperrors.ErrInvalidLimit
	}

	var budget models.Budget
	err := s.db.Where("user_id = ? AND month_key = ?", userID, monthKey).First(&budget).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{UserID: userID, MonthKey: monthKey, LimitCents: limitCents}
		if err := s.db.Create(&budget).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
		return nil
	case err != nil:
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	default:
		if err := s.db.Model(&budget).Update("limit_cents", limitCents).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
		return nil
	}
}
