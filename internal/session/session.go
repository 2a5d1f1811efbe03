// Package session holds the per-user, session-local view state: the active
// display range and the active accounting month. Nothing here is persisted.
package session

import (
	"time"

	"spendcheck/internal/period"
)

// Session is the single-state machine of the accounting view: always
// Active(monthKey). The only transition is the month rollover, which fires
// when a refresh observes that wall-clock time has crossed a month
// boundary. There are no timers; time passing is only noticed on refresh.
type Session struct {
	Range    period.RangeType
	MonthKey string
}

// New creates a session anchored at the month containing now, showing the
// day range.
func New(now time.Time) *Session {
	return &Session{
		Range:    period.RangeDay,
		MonthKey: period.MonthKey(now),
	}
}

// Refresh recomputes the active month from now and reports whether it
// changed. Prior months' data stays addressable by its own keys; nothing
// migrates on rollover.
func (s *Session) Refresh(now time.Time) bool {
	current := period.MonthKey(now)
	if current == s.MonthKey {
		return false
	}
	s.MonthKey = current
	return true
}

// SetRange switches the displayed date window. Invalid values keep the
// current range.
func (s *Session) SetRange(r period.RangeType) {
	if period.ValidRangeType(string(r)) {
		s.Range = r
	}
}
