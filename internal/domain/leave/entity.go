package leave

import (
	"time"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// Request is a staff member's request for time off. StartDate and EndDate
// are inclusive calendar dates (midnight UTC).
type Request struct {
	ID              string
	UserID          string
	StartDate       time.Time
	EndDate         time.Time
	Status          RequestStatus
	Reason          string
	RejectionReason *string
	DecidedBy       *string
	DecidedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Days returns the inclusive day count of the request: both endpoints count
// as leave days, so a single-day request is 1 day.
func (r Request) Days() int {
	return InclusiveDayCount(r.StartDate, r.EndDate)
}

// InclusiveDayCount counts calendar days between two dates, both inclusive.
// Inputs are normalized to midnight UTC before differencing so that stray
// time-of-day components cannot skew the count.
func InclusiveDayCount(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// LedgerEntry is one signed mutation of a user's leave-day balance, keyed
// by the request that caused it. The user's stored balance is a
// materialized view of entitlement plus the sum of these deltas; replaying
// the ledger must reproduce it.
type LedgerEntry struct {
	ID        string
	RequestID string
	UserID    string
	DeltaDays int
	CreatedAt time.Time
}

// TransitionResult reports the outcome of a status transition.
type TransitionResult struct {
	Request        Request
	DeltaDays      int
	UpdatedBalance int
}
