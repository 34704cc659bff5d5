package attendance

import (
	"time"
)

type EventKind string

const (
	EventCheckIn  EventKind = "CHECK_IN"
	EventCheckOut EventKind = "CHECK_OUT"
)

// StaleOpenHorizon is how long an unmatched check-in is still considered a
// plausibly running session. Past it the user is no longer reported as in
// the office, but the open session still counts toward worked minutes.
const StaleOpenHorizon = 14 * time.Hour

// Event is a single attendance punch. IsLate is computed against the work
// schedule at punch time and stored with the event; events are immutable
// after creation.
type Event struct {
	ID        string
	UserID    string
	Timestamp time.Time
	Kind      EventKind
	IsLate    bool
	CreatedAt time.Time
}

// WorkSession pairs a check-in with the next check-out of the same user.
// It is derived per call, never persisted. End is nil while the session is
// still open; DurationMinutes is nil exactly when End is.
type WorkSession struct {
	UserID          string
	Start           time.Time
	End             *time.Time
	DurationMinutes *int
	Anomalous       bool // duration clamped to zero due to clock skew
	Stale           bool // open past StaleOpenHorizon
}

// IsOpen reports whether the session has no check-out yet.
func (s WorkSession) IsOpen() bool {
	return s.End == nil
}

// Window is a half-open time range [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

type AnomalyKind string

const (
	AnomalyDoubleCheckIn    AnomalyKind = "double_check_in"
	AnomalyOrphanCheckOut   AnomalyKind = "orphan_check_out"
	AnomalyClockSkew        AnomalyKind = "clock_skew"
	AnomalyStaleOpenSession AnomalyKind = "stale_open_session"
)

// Anomaly records a malformed punch that reconstruction recovered from.
// Anomalies never abort a computation; callers log them.
type Anomaly struct {
	Kind   AnomalyKind
	UserID string
	At     time.Time
	Detail string
}

// Summary is the aggregate over a window: minutes bucketed per day
// (keys are YYYY-MM-DD, UTC), late arrivals, and who is currently in office.
type Summary struct {
	DailyMinutes  map[string]int
	TotalMinutes  int
	LateCount     int
	LateUserIDs   []string
	ActiveUserIDs []string
}
