package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"spendcheck/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithTone(t, db, models.ToneBalanced)
}

// CreateTestUserWithTone creates a user with the given feedback tone.
func CreateTestUserWithTone(t *testing.T, db *gorm.DB, tone models.FeedbackTone) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        fmt.Sprintf("user%d@test.com", nextID()),
		Password:     string(hash),
		FeedbackTone: tone,
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense on the given date key (in cents).
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, date string, cents int64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		AmountCents: cents,
		Category:    fmt.Sprintf("Test Category %d", nextID()),
		Date:        date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a monthly limit for the given month key (in cents).
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, monthKey string, limitCents int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:     userID,
		MonthKey:   monthKey,
		LimitCents: limitCents,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
