package main

import (
	"fmt"
	"net/http"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/config"
	appHTTP "github.com/HamdullahAltun/personel-takip-sub003/internal/handler/http"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/database"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/jwt"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/repository/postgresql"
	attendanceService "github.com/HamdullahAltun/personel-takip-sub003/internal/service/attendance"
	authService "github.com/HamdullahAltun/personel-takip-sub003/internal/service/auth"
	dashboardService "github.com/HamdullahAltun/personel-takip-sub003/internal/service/dashboard"
	leaveService "github.com/HamdullahAltun/personel-takip-sub003/internal/service/leave"
	payrollService "github.com/HamdullahAltun/personel-takip-sub003/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	eventRepo := postgresql.NewAttendanceEventRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveLedgerRepo := postgresql.NewLeaveLedgerRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(eventRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveLedgerRepo, userRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceSvc, userRepo)
	payrollSvc := payrollService.NewPayrollService(attendanceSvc, userRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		dashboardHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
