package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.EventRepository
}

func NewAttendanceService(eventRepo attendance.EventRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		EventRepository: eventRepo,
	}
}

// formatWorkHours formats minutes to "Xh Ym" format
func formatWorkHours(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// RecordEvent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecordEvent(ctx context.Context, req attendance.RecordEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	timestamp, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	created, err := a.EventRepository.Create(ctx, attendance.Event{
		UserID:    req.UserID,
		Timestamp: timestamp.UTC(),
		Kind:      attendance.EventKind(req.Kind),
		IsLate:    req.IsLate,
	})
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return mapEventToResponse(created), nil
}

// GetUserSummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetUserSummary(ctx context.Context, userID string, filter attendance.SummaryFilter) (attendance.UserSummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.UserSummaryResponse{}, err
	}

	now := time.Now().UTC()
	window := filter.Window(now)

	events, err := a.EventRepository.FindByUser(ctx, userID, window)
	if err != nil {
		return attendance.UserSummaryResponse{}, fmt.Errorf("failed to find attendance events: %w", err)
	}

	sessions, anomalies := ReconstructSessions(events, window, now)
	summary := Aggregate(sessions, events, window, now)

	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, mapSessionToResponse(s))
	}

	return attendance.UserSummaryResponse{
		UserID:       userID,
		StartDate:    window.From.Format("2006-01-02"),
		EndDate:      window.To.AddDate(0, 0, -1).Format("2006-01-02"),
		WorkHours:    formatWorkHours(summary.TotalMinutes),
		TotalMinutes: summary.TotalMinutes,
		DailyMinutes: summary.DailyMinutes,
		LateCount:    summary.LateCount,
		Active:       IsCurrentlyActive(sessions, now),
		Sessions:     responses,
		Warnings:     mapAnomaliesToResponse(anomalies),
	}, nil
}

// GetCompanySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetCompanySummary(ctx context.Context, filter attendance.SummaryFilter) (attendance.CompanySummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.CompanySummaryResponse{}, err
	}

	now := time.Now().UTC()
	window := filter.Window(now)

	events, err := a.EventRepository.FindInWindow(ctx, window)
	if err != nil {
		return attendance.CompanySummaryResponse{}, fmt.Errorf("failed to find attendance events: %w", err)
	}

	sessions, anomalies := reconstructPerUser(events, window, now)
	summary := Aggregate(sessions, events, window, now)

	return attendance.CompanySummaryResponse{
		StartDate:     window.From.Format("2006-01-02"),
		EndDate:       window.To.AddDate(0, 0, -1).Format("2006-01-02"),
		TotalMinutes:  summary.TotalMinutes,
		DailyMinutes:  summary.DailyMinutes,
		LateCount:     summary.LateCount,
		LateUserCount: len(summary.LateUserIDs),
		ActiveUserIDs: summary.ActiveUserIDs,
		Warnings:      mapAnomaliesToResponse(anomalies),
	}, nil
}

// GetActiveUserIDs implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetActiveUserIDs(ctx context.Context) ([]string, error) {
	now := time.Now().UTC()
	// Look back twice the horizon so every session that could still count
	// as active is reconstructed from its check-in.
	window := attendance.Window{From: now.Add(-2 * attendance.StaleOpenHorizon), To: now.Add(time.Minute)}

	events, err := a.EventRepository.FindInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to find attendance events: %w", err)
	}

	sessions, _ := reconstructPerUser(events, window, now)
	summary := Aggregate(sessions, nil, window, now)
	return summary.ActiveUserIDs, nil
}

// reconstructPerUser splits a multi-user event stream (ordered by user,
// then timestamp) and reconstructs each user independently.
func reconstructPerUser(events []attendance.Event, window attendance.Window, now time.Time) ([]attendance.WorkSession, []attendance.Anomaly) {
	var (
		sessions  []attendance.WorkSession
		anomalies []attendance.Anomaly
	)

	start := 0
	for i := 1; i <= len(events); i++ {
		if i < len(events) && events[i].UserID == events[start].UserID {
			continue
		}
		s, a := ReconstructSessions(events[start:i], window, now)
		sessions = append(sessions, s...)
		anomalies = append(anomalies, a...)
		start = i
	}

	return sessions, anomalies
}

func mapEventToResponse(ev attendance.Event) attendance.EventResponse {
	return attendance.EventResponse{
		ID:        ev.ID,
		UserID:    ev.UserID,
		Timestamp: ev.Timestamp.Format(time.RFC3339),
		Kind:      string(ev.Kind),
		IsLate:    ev.IsLate,
	}
}

func mapSessionToResponse(s attendance.WorkSession) attendance.SessionResponse {
	resp := attendance.SessionResponse{
		Start:     s.Start.Format(time.RFC3339),
		Open:      s.IsOpen(),
		Anomalous: s.Anomalous,
		Stale:     s.Stale,
	}
	if s.End != nil {
		end := s.End.Format(time.RFC3339)
		resp.End = &end
	}
	if s.DurationMinutes != nil {
		minutes := *s.DurationMinutes
		resp.DurationMinutes = &minutes
	}
	return resp
}

func mapAnomaliesToResponse(anomalies []attendance.Anomaly) []attendance.AnomalyResponse {
	if len(anomalies) == 0 {
		return nil
	}
	responses := make([]attendance.AnomalyResponse, 0, len(anomalies))
	for _, a := range anomalies {
		responses = append(responses, attendance.AnomalyResponse{
			Kind:   string(a.Kind),
			At:     a.At.Format(time.RFC3339),
			Detail: a.Detail,
		})
	}
	return responses
}
