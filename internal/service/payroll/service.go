package payroll

import (
	"context"
	"fmt"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/user"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

type DraftLine struct {
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name"`
	TotalMinutes int    `json:"total_minutes"`
	HourlyRate   string `json:"hourly_rate"`
	Amount       string `json:"amount"`
}

type DraftResponse struct {
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Lines     []DraftLine `json:"lines"`
	Total     string      `json:"total"`
}

type PayrollService interface {
	// Draft prices the hours worked in the filter range. It is a preview for
	// the payroll run, not a payment instruction.
	Draft(ctx context.Context, filter attendance.SummaryFilter) (DraftResponse, error)
}

type PayrollServiceImpl struct {
	attendanceService attendance.AttendanceService
	userRepo          user.UserRepository
}

func NewPayrollService(attendanceService attendance.AttendanceService, userRepo user.UserRepository) PayrollService {
	return &PayrollServiceImpl{
		attendanceService: attendanceService,
		userRepo:          userRepo,
	}
}

// Draft implements PayrollService.
func (p *PayrollServiceImpl) Draft(ctx context.Context, filter attendance.SummaryFilter) (DraftResponse, error) {
	if err := filter.Validate(); err != nil {
		return DraftResponse{}, err
	}

	users, err := p.userRepo.List(ctx)
	if err != nil {
		return DraftResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	resp := DraftResponse{Lines: make([]DraftLine, 0, len(users))}
	total := decimal.Zero

	for _, u := range users {
		summary, err := p.attendanceService.GetUserSummary(ctx, u.ID, filter)
		if err != nil {
			return DraftResponse{}, fmt.Errorf("failed to get work summary for user %s: %w", u.ID, err)
		}
		resp.StartDate = summary.StartDate
		resp.EndDate = summary.EndDate

		rate, err := decimal.NewFromString(u.HourlyRate)
		if err != nil {
			return DraftResponse{}, fmt.Errorf("failed to parse hourly rate for user %s: %w", u.ID, err)
		}

		amount := decimal.NewFromInt(int64(summary.TotalMinutes)).
			Div(minutesPerHour).
			Mul(rate).
			Round(2)
		total = total.Add(amount)

		resp.Lines = append(resp.Lines, DraftLine{
			UserID:       u.ID,
			FullName:     u.FullName,
			TotalMinutes: summary.TotalMinutes,
			HourlyRate:   rate.StringFixed(2),
			Amount:       amount.StringFixed(2),
		})
	}

	resp.Total = total.StringFixed(2)
	return resp, nil
}
