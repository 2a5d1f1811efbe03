package models

// FeedbackTone controls how sharply the app comments on a user's spending.
type FeedbackTone string

const (
	ToneNice     FeedbackTone = "nice"
	ToneBalanced FeedbackTone = "balanced"
	ToneSavage   FeedbackTone = "savage"
)

// User represents an account holder. Every expense and budget row is scoped
// to exactly one user; the accounting core only ever sees the opaque ID.
type User struct {
	Base
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	Password     string       `gorm:"not null" json:"-"`
	FeedbackTone FeedbackTone `gorm:"default:balanced" json:"feedback_tone"`
	IsActive     bool         `gorm:"default:true" json:"is_active"`

	Expenses []Expense `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Budgets  []Budget  `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
}
