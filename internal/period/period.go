// Package period computes calendar period boundaries and keys.
//
// All functions are pure: callers pass the reference instant explicitly,
// which keeps anything built on top of them testable without a real clock.
// Date keys are fixed-width zero-padded strings (YYYY-MM-DD), so inclusive
// range comparisons elsewhere in the codebase are plain string comparisons.
package period

import "time"

const (
	dateKeyLayout  = "2006-01-02"
	monthKeyLayout = "2006-01"
)

// RangeType selects which date window a view covers.
type RangeType string

const (
	RangeDay   RangeType = "day"
	RangeWeek  RangeType = "week"
	RangeMonth RangeType = "month"
)

// DateKey formats an instant as a YYYY-MM-DD key in its location.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// MonthKey formats an instant as a YYYY-MM key in its location.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// WeekStart returns the Monday of the ISO week containing t, at midnight
// in t's location.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return time.Date(t.Year(), t.Month(), t.Day()-(weekday-1), 0, 0, 0, 0, t.Location())
}

// MonthBounds returns the first and last calendar day of the month
// identified by monthKey, as date keys. Month lengths and leap years are
// handled by time.AddDate.
func MonthBounds(monthKey string) (string, string, error) {
	first, err := time.ParseInLocation(monthKeyLayout, monthKey, time.Local)
	if err != nil {
		return "", "", err
	}
	last := first.AddDate(0, 1, -1)
	return DateKey(first), DateKey(last), nil
}

// RangeBounds returns the inclusive date-key bounds of the window of the
// given type containing now. An unknown range type falls back to the
// single day containing now.
func RangeBounds(r RangeType, now time.Time) (string, string) {
	switch r {
	case RangeWeek:
		start := WeekStart(now)
		return DateKey(start), DateKey(start.AddDate(0, 0, 6))
	case RangeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateKey(start), DateKey(start.AddDate(0, 1, -1))
	default:
		key := DateKey(now)
		return key, key
	}
}

// ValidDateKey reports whether s is a well-formed YYYY-MM-DD date key.
func ValidDateKey(s string) bool {
	_, err := time.Parse(dateKeyLayout, s)
	return err == nil && len(s) == len(dateKeyLayout)
}

// ValidMonthKey reports whether s is a well-formed YYYY-MM month key.
func ValidMonthKey(s string) bool {
	_, err := time.Parse(monthKeyLayout, s)
	return err == nil && len(s) == len(monthKeyLayout)
}

// ValidRangeType reports whether s names a supported range type.
func ValidRangeType(s string) bool {
	switch RangeType(s) {
	case RangeDay, RangeWeek, RangeMonth:
		return true
	}
	return false
}
