package models

// Budget is a monthly spending limit. One active limit per user per month
// key; months are independent of each other, so an unset month simply has
// no row (and no inherited limit). LimitCents is always positive once a
// row exists; "no budget" is the absence of the row, not a zero value.
type Budget struct {
	Base
	UserID     string `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_month" json:"user_id"`
	MonthKey   string `gorm:"size:7;not null;uniqueIndex:idx_budgets_user_month" json:"month_key"`
	LimitCents int64  `gorm:"not null" json:"limit_cents"`
}
