package models

// Expense is a single dated, categorized spend record. Rows are never
// mutated after creation; the only lifecycle transition is deletion by id.
//
// Date is stored as a zero-padded YYYY-MM-DD string. The fixed width makes
// lexicographic order equal calendar order, so range queries and month
// prefix matches are plain string comparisons. Adapters must preserve the
// format verbatim.
type Expense struct {
	Base
	UserID      string `gorm:"type:uuid;index;not null" json:"user_id"`
	AmountCents int64  `gorm:"not null" json:"amount_cents"`
	Category    string `json:"category"`
	Note        string `json:"note"`
	Date        string `gorm:"size:10;index;not null" json:"date"`
}
