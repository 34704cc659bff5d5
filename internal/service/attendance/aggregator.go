package attendance

import (
	"sort"
	"time"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
)

// Aggregate folds reconstructed sessions and the raw events into summary
// metrics for a window. Pure function of its inputs; empty input yields a
// zero summary.
//
// A completed session credits all of its minutes to the day of its end
// (whole-to-end-day, no proportional split across midnight). An open
// session is credited up to min(now, window end), on the day of that
// boundary, stale or not.
func Aggregate(sessions []attendance.WorkSession, events []attendance.Event, window attendance.Window, now time.Time) attendance.Summary {
	summary := attendance.Summary{
		DailyMinutes: make(map[string]int),
	}

	for _, s := range sessions {
		if !s.IsOpen() {
			day := s.End.UTC().Format("2006-01-02")
			summary.DailyMinutes[day] += *s.DurationMinutes
			summary.TotalMinutes += *s.DurationMinutes
			continue
		}

		edge := now
		if window.To.Before(edge) {
			edge = window.To
		}
		minutes := int(edge.Sub(s.Start).Minutes())
		if minutes < 0 {
			minutes = 0
		}
		day := edge.UTC().Format("2006-01-02")
		summary.DailyMinutes[day] += minutes
		summary.TotalMinutes += minutes
	}

	lateSeen := make(map[string]bool)
	for _, ev := range events {
		if ev.Kind != attendance.EventCheckIn || !ev.IsLate || !window.Contains(ev.Timestamp) {
			continue
		}
		summary.LateCount++
		if !lateSeen[ev.UserID] {
			lateSeen[ev.UserID] = true
			summary.LateUserIDs = append(summary.LateUserIDs, ev.UserID)
		}
	}
	sort.Strings(summary.LateUserIDs)

	latest := make(map[string]attendance.WorkSession)
	for _, s := range sessions {
		if cur, ok := latest[s.UserID]; !ok || s.Start.After(cur.Start) {
			latest[s.UserID] = s
		}
	}
	for userID, s := range latest {
		if s.IsOpen() && !s.Stale {
			summary.ActiveUserIDs = append(summary.ActiveUserIDs, userID)
		}
	}
	sort.Strings(summary.ActiveUserIDs)

	return summary
}

// IsCurrentlyActive reports whether the user's most recent session is an
// open one within the plausibility horizon. There is no independent
// "shift end" signal, so the horizon stands in for one.
func IsCurrentlyActive(sessions []attendance.WorkSession, now time.Time) bool {
	var latest *attendance.WorkSession
	for i := range sessions {
		if latest == nil || sessions[i].Start.After(latest.Start) {
			latest = &sessions[i]
		}
	}
	if latest == nil || !latest.IsOpen() {
		return false
	}
	return now.Sub(latest.Start) <= attendance.StaleOpenHorizon
}
