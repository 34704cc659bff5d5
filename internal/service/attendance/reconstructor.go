package attendance

import (
	"fmt"
	"time"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
)

// ReconstructSessions turns one user's ordered punch stream into work
// sessions. It is the only place that interprets raw event ordering;
// dashboards, payroll, and the active-user query all go through it.
//
// Attendance data is noisy (forgotten check-outs, double taps), so the
// function is total: malformed input degrades to anomalies, never errors.
// Pairing rules:
//   - a CHECK_IN while another is open discards the earlier one (the most
//     recent check-in is authoritative)
//   - a CHECK_OUT with no open check-in is dropped
//   - a CHECK_OUT before its check-in clamps the duration to zero and
//     marks the session anomalous
//
// A trailing open check-in is always emitted as an open session; when it
// started more than StaleOpenHorizon before now it is marked stale, which
// excludes it from "currently active" but not from worked-minute totals.
func ReconstructSessions(events []attendance.Event, window attendance.Window, now time.Time) ([]attendance.WorkSession, []attendance.Anomaly) {
	var (
		sessions  []attendance.WorkSession
		anomalies []attendance.Anomaly
		open      *attendance.Event
	)

	for i := range events {
		ev := events[i]
		if !window.Contains(ev.Timestamp) {
			continue
		}

		switch ev.Kind {
		case attendance.EventCheckIn:
			if open != nil {
				anomalies = append(anomalies, attendance.Anomaly{
					Kind:   attendance.AnomalyDoubleCheckIn,
					UserID: ev.UserID,
					At:     ev.Timestamp,
					Detail: fmt.Sprintf("check-in at %s replaces unmatched check-in from %s",
						ev.Timestamp.Format(time.RFC3339), open.Timestamp.Format(time.RFC3339)),
				})
			}
			open = &events[i]

		case attendance.EventCheckOut:
			if open == nil {
				anomalies = append(anomalies, attendance.Anomaly{
					Kind:   attendance.AnomalyOrphanCheckOut,
					UserID: ev.UserID,
					At:     ev.Timestamp,
					Detail: "check-out without a preceding check-in discarded",
				})
				continue
			}

			end := ev.Timestamp
			minutes := int(end.Sub(open.Timestamp).Minutes())
			anomalous := false
			if minutes < 0 {
				anomalies = append(anomalies, attendance.Anomaly{
					Kind:   attendance.AnomalyClockSkew,
					UserID: ev.UserID,
					At:     ev.Timestamp,
					Detail: fmt.Sprintf("check-out at %s precedes check-in at %s, duration clamped to 0",
						end.Format(time.RFC3339), open.Timestamp.Format(time.RFC3339)),
				})
				minutes = 0
				anomalous = true
			}

			sessions = append(sessions, attendance.WorkSession{
				UserID:          open.UserID,
				Start:           open.Timestamp,
				End:             &end,
				DurationMinutes: &minutes,
				Anomalous:       anomalous,
			})
			open = nil
		}
	}

	if open != nil {
		session := attendance.WorkSession{
			UserID: open.UserID,
			Start:  open.Timestamp,
		}
		if now.Sub(open.Timestamp) > attendance.StaleOpenHorizon {
			session.Stale = true
			anomalies = append(anomalies, attendance.Anomaly{
				Kind:   attendance.AnomalyStaleOpenSession,
				UserID: open.UserID,
				At:     open.Timestamp,
				Detail: fmt.Sprintf("open check-in from %s exceeds the %s horizon",
					open.Timestamp.Format(time.RFC3339), attendance.StaleOpenHorizon),
			})
		}
		sessions = append(sessions, session)
	}

	return sessions, anomalies
}
