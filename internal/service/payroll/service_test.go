package payroll

import (
	"context"
	"testing"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	minutes map[string]int
}

func (s *stubAttendanceService) RecordEvent(context.Context, attendance.RecordEventRequest) (attendance.EventResponse, error) {
	panic("not used")
}

func (s *stubAttendanceService) GetUserSummary(_ context.Context, userID string, _ attendance.SummaryFilter) (attendance.UserSummaryResponse, error) {
	return attendance.UserSummaryResponse{
		UserID:       userID,
		StartDate:    "2024-03-01",
		EndDate:      "2024-03-31",
		TotalMinutes: s.minutes[userID],
	}, nil
}

func (s *stubAttendanceService) GetCompanySummary(context.Context, attendance.SummaryFilter) (attendance.CompanySummaryResponse, error) {
	panic("not used")
}

func (s *stubAttendanceService) GetActiveUserIDs(context.Context) ([]string, error) {
	panic("not used")
}

type stubUserRepo struct {
	users []user.User
}

func (s *stubUserRepo) GetByID(context.Context, string) (user.User, error) {
	panic("not used")
}

func (s *stubUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	panic("not used")
}

func (s *stubUserRepo) Create(context.Context, user.User) (user.User, error) {
	panic("not used")
}

func (s *stubUserRepo) List(context.Context) ([]user.User, error) {
	return s.users, nil
}

func (s *stubUserRepo) AdjustLeaveBalance(context.Context, string, int) (int, error) {
	panic("not used")
}

func (s *stubUserRepo) SetLeaveBalance(context.Context, string, int) error {
	panic("not used")
}

func TestDraft(t *testing.T) {
	service := NewPayrollService(
		&stubAttendanceService{minutes: map[string]int{"u1": 9600, "u2": 50}},
		&stubUserRepo{users: []user.User{
			{ID: "u1", FullName: "Ayşe Yılmaz", HourlyRate: "250.00"},
			{ID: "u2", FullName: "Mehmet Demir", HourlyRate: "10"},
		}},
	)

	resp, err := service.Draft(t.Context(), attendance.SummaryFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 2)

	// 9600 minutes = 160 hours at 250.00/h.
	assert.Equal(t, "40000.00", resp.Lines[0].Amount)
	// 50 minutes at 10/h rounds half-up to cents.
	assert.Equal(t, "8.33", resp.Lines[1].Amount)
	assert.Equal(t, "10.00", resp.Lines[1].HourlyRate)
	assert.Equal(t, "40008.33", resp.Total)
	assert.Equal(t, "2024-03-01", resp.StartDate)
}

func TestDraft_NoUsers(t *testing.T) {
	service := NewPayrollService(&stubAttendanceService{}, &stubUserRepo{})

	resp, err := service.Draft(t.Context(), attendance.SummaryFilter{})
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)
	assert.Equal(t, "0.00", resp.Total)
}

func TestDraft_BadRate(t *testing.T) {
	service := NewPayrollService(
		&stubAttendanceService{minutes: map[string]int{"u1": 60}},
		&stubUserRepo{users: []user.User{{ID: "u1", HourlyRate: "not-a-number"}}},
	)

	_, err := service.Draft(t.Context(), attendance.SummaryFilter{})
	assert.Error(t, err)
}
