package attendance

import (
	"time"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordEventRequest struct {
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"` // RFC 3339
	Kind      string `json:"kind"`      // CHECK_IN, CHECK_OUT
	IsLate    bool   `json:"is_late"`
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Kind != string(EventCheckIn) && r.Kind != string(EventCheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: CHECK_IN, CHECK_OUT",
		})
	}

	if _, err := time.Parse(time.RFC3339, r.Timestamp); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC 3339 instant",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryFilter struct {
	UserID    string `json:"user_id,omitempty"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, inclusive
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if f.StartDate != "" && !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(f.EndDate)
	if f.EndDate != "" && !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Window converts the filter to a half-open window. Missing dates default
// to the current month.
func (f *SummaryFilter) Window(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	if f.StartDate != "" {
		if parsed, ok := validator.IsValidDate(f.StartDate); ok {
			start = parsed
		}
	}
	if f.EndDate != "" {
		if parsed, ok := validator.IsValidDate(f.EndDate); ok {
			end = parsed.AddDate(0, 0, 1) // inclusive end date
		}
	}

	return Window{From: start, To: end}
}

type EventResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`
	Kind      string `json:"kind"`
	IsLate    bool   `json:"is_late"`
}

type SessionResponse struct {
	Start           string  `json:"start"`
	End             *string `json:"end,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Open            bool    `json:"open"`
	Anomalous       bool    `json:"anomalous,omitempty"`
	Stale           bool    `json:"stale,omitempty"`
}

type AnomalyResponse struct {
	Kind   string `json:"kind"`
	At     string `json:"at"`
	Detail string `json:"detail"`
}

type UserSummaryResponse struct {
	UserID       string            `json:"user_id"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	WorkHours    string            `json:"work_hours"` // "Xh Ym"
	TotalMinutes int               `json:"total_minutes"`
	DailyMinutes map[string]int    `json:"daily_minutes"`
	LateCount    int               `json:"late_count"`
	Active       bool              `json:"active"`
	Sessions     []SessionResponse `json:"sessions"`
	Warnings     []AnomalyResponse `json:"warnings,omitempty"`
}

type CompanySummaryResponse struct {
	StartDate     string            `json:"start_date"`
	EndDate       string            `json:"end_date"`
	TotalMinutes  int               `json:"total_minutes"`
	DailyMinutes  map[string]int    `json:"daily_minutes"`
	LateCount     int               `json:"late_count"`
	LateUserCount int               `json:"late_user_count"`
	ActiveUserIDs []string          `json:"active_user_ids"`
	Warnings      []AnomalyResponse `json:"warnings,omitempty"`
}
