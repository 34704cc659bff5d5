package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type DashboardResponse struct {
	Headcount         int      `json:"headcount"`
	ActiveUserIDs     []string `json:"active_user_ids"`
	ActiveCount       int      `json:"active_count"`
	LateCountToday    int      `json:"late_count_today"`
	LateCountMonth    int      `json:"late_count_month"`
	TotalMinutesMonth int      `json:"total_minutes_month"`
}

type DashboardService interface {
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}

type DashboardServiceImpl struct {
	attendanceService attendance.AttendanceService
	userRepo          user.UserRepository
}

func NewDashboardService(attendanceService attendance.AttendanceService, userRepo user.UserRepository) DashboardService {
	return &DashboardServiceImpl{
		attendanceService: attendanceService,
		userRepo:          userRepo,
	}
}

// GetDashboard implements DashboardService. The four cards are independent
// queries, fetched in parallel.
func (d *DashboardServiceImpl) GetDashboard(ctx context.Context) (DashboardResponse, error) {
	var resp DashboardResponse

	today := time.Now().UTC().Format("2006-01-02")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		users, err := d.userRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		resp.Headcount = len(users)
		return nil
	})

	g.Go(func() error {
		active, err := d.attendanceService.GetActiveUserIDs(gctx)
		if err != nil {
			return fmt.Errorf("failed to get active users: %w", err)
		}
		resp.ActiveUserIDs = active
		resp.ActiveCount = len(active)
		return nil
	})

	g.Go(func() error {
		// Empty filter defaults to the current month.
		summary, err := d.attendanceService.GetCompanySummary(gctx, attendance.SummaryFilter{})
		if err != nil {
			return fmt.Errorf("failed to get month summary: %w", err)
		}
		resp.LateCountMonth = summary.LateCount
		resp.TotalMinutesMonth = summary.TotalMinutes
		return nil
	})

	g.Go(func() error {
		summary, err := d.attendanceService.GetCompanySummary(gctx, attendance.SummaryFilter{
			StartDate: today,
			EndDate:   today,
		})
		if err != nil {
			return fmt.Errorf("failed to get today summary: %w", err)
		}
		resp.LateCountToday = summary.LateCount
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardResponse{}, err
	}

	return resp, nil
}
