package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	active     []string
	monthLate  int
	todayLate  int
	minutes    int
	summaryErr error
}

func (s *stubAttendanceService) RecordEvent(context.Context, attendance.RecordEventRequest) (attendance.EventResponse, error) {
	panic("not used")
}

func (s *stubAttendanceService) GetUserSummary(context.Context, string, attendance.SummaryFilter) (attendance.UserSummaryResponse, error) {
	panic("not used")
}

func (s *stubAttendanceService) GetCompanySummary(_ context.Context, filter attendance.SummaryFilter) (attendance.CompanySummaryResponse, error) {
	if s.summaryErr != nil {
		return attendance.CompanySummaryResponse{}, s.summaryErr
	}
	if filter.StartDate != "" {
		return attendance.CompanySummaryResponse{LateCount: s.todayLate}, nil
	}
	return attendance.CompanySummaryResponse{LateCount: s.monthLate, TotalMinutes: s.minutes}, nil
}

func (s *stubAttendanceService) GetActiveUserIDs(context.Context) ([]string, error) {
	return s.active, nil
}

type stubUserRepo struct {
	users []user.User
}

func (s *stubUserRepo) GetByID(context.Context, string) (user.User, error)    { panic("not used") }
func (s *stubUserRepo) GetByEmail(context.Context, string) (user.User, error) { panic("not used") }
func (s *stubUserRepo) Create(context.Context, user.User) (user.User, error)  { panic("not used") }
func (s *stubUserRepo) List(context.Context) ([]user.User, error)             { return s.users, nil }
func (s *stubUserRepo) AdjustLeaveBalance(context.Context, string, int) (int, error) {
	panic("not used")
}
func (s *stubUserRepo) SetLeaveBalance(context.Context, string, int) error { panic("not used") }

func TestGetDashboard(t *testing.T) {
	service := NewDashboardService(
		&stubAttendanceService{
			active:    []string{"u1", "u3"},
			monthLate: 7,
			todayLate: 2,
			minutes:   4800,
		},
		&stubUserRepo{users: []user.User{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}},
	)

	resp, err := service.GetDashboard(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Headcount)
	assert.Equal(t, 2, resp.ActiveCount)
	assert.Equal(t, []string{"u1", "u3"}, resp.ActiveUserIDs)
	assert.Equal(t, 7, resp.LateCountMonth)
	assert.Equal(t, 2, resp.LateCountToday)
	assert.Equal(t, 4800, resp.TotalMinutesMonth)
}

func TestGetDashboard_PropagatesErrors(t *testing.T) {
	service := NewDashboardService(
		&stubAttendanceService{summaryErr: errors.New("db down")},
		&stubUserRepo{},
	)

	_, err := service.GetDashboard(t.Context())
	assert.Error(t, err)
}
