package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gatescan/attendance-backend-go/internal/config"
	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
	appHTTP "github.com/gatescan/attendance-backend-go/internal/handler/http"
	"github.com/gatescan/attendance-backend-go/internal/pkg/database"
	"github.com/gatescan/attendance-backend-go/internal/pkg/jwt"
	"github.com/gatescan/attendance-backend-go/internal/repository/excel"
	"github.com/gatescan/attendance-backend-go/internal/repository/memory"
	"github.com/gatescan/attendance-backend-go/internal/repository/postgresql"
	"github.com/gatescan/attendance-backend-go/internal/repository/sheets"
	attendanceService "github.com/gatescan/attendance-backend-go/internal/service/attendance"
	authService "github.com/gatescan/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/gatescan/attendance-backend-go/internal/service/dashboard"
	"github.com/gatescan/attendance-backend-go/internal/service/directory"
	reportService "github.com/gatescan/attendance-backend-go/internal/service/report"
)

// rowStore is the combined roster and event log surface every backend
// implements.
type rowStore interface {
	staff.RosterSource
	attendance.EventLog
}

func newStore(ctx context.Context, cfg *config.Config) (rowStore, error) {
	switch cfg.Store.Backend {
	case "sheets":
		return sheets.NewStore(ctx, cfg.Store.SpreadsheetID, []byte(cfg.Store.ServiceAccountJSON))
	case "excel":
		return excel.NewStore(cfg.Store.WorkbookPath)
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return postgresql.NewStore(db), nil
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.Store.Backend)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	store, err := newStore(ctx, cfg)
	if err != nil {
		fmt.Println("Error initializing store:", err)
		return
	}

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc, err := authService.NewAuthService(cfg.Credentials, jwtSvc)
	if err != nil {
		log.Fatal("Failed to initialize auth service: ", err)
	}

	dir := directory.NewDirectory(store)
	if err := dir.Reload(ctx); err != nil {
		// The directory retries lazily on the first scan.
		fmt.Println("Warning: initial roster load failed:", err)
	}

	scanSvc := attendanceService.NewScanService(dir, store, cfg.Attendance)
	dashboardSvc := dashboardService.NewDashboardService(store, store, cfg.Attendance)
	reportSvc := reportService.NewReportService(store, store, cfg.Attendance)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(scanSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	staffHandler := appHTTP.NewStaffHandler(dir)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		attendanceHandler,
		dashboardHandler,
		reportHandler,
		staffHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
