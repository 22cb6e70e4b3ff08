package main

import (
	"fmt"
	"net/http"

	"github.com/workpulse/attendance-backend-go/internal/config"
	appHTTP "github.com/workpulse/attendance-backend-go/internal/handler/http"
	"github.com/workpulse/attendance-backend-go/internal/pkg/cron"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
	"github.com/workpulse/attendance-backend-go/internal/pkg/events"
	"github.com/workpulse/attendance-backend-go/internal/pkg/jwt"
	"github.com/workpulse/attendance-backend-go/internal/pkg/timezone"
	"github.com/workpulse/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse/attendance-backend-go/internal/service/attendance"
	reconcileService "github.com/workpulse/attendance-backend-go/internal/service/reconcile"
	reportService "github.com/workpulse/attendance-backend-go/internal/service/report"
	"github.com/workpulse/attendance-backend-go/internal/service/resolution"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	sessionRepo := postgresql.NewSessionRepository(db)
	summaryRepo := postgresql.NewDaySummaryRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := events.NewHub()
	tzResolver := timezone.NewResolver(locationRepo, cfg.Attendance.DefaultTimezone)

	resolver := resolution.NewResolver(sessionRepo, employeeRepo, holidayRepo, leaveRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		sessionRepo,
		summaryRepo,
		employeeRepo,
		resolver,
		tzResolver,
		hub,
		postgresql.NewTxManager(db),
	)
	reconcileSvc := reconcileService.NewReconcileService(sessionRepo, summaryRepo, employeeRepo, resolver)
	reportSvc := reportService.NewReportService(summaryRepo, employeeRepo, resolver)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(reconcileSvc, cfg.Attendance.SweepDaysBack).
		RegisterJobs(scheduler, cfg.Attendance.SweepInterval)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, resolver)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub, JWTService)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		attendanceHandler,
		reportHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
