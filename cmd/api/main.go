package main

import (
	"fmt"
	"net/http"

	"github.com/pulsehr/attendance-backend-go/internal/config"
	appHTTP "github.com/pulsehr/attendance-backend-go/internal/handler/http"
	"github.com/pulsehr/attendance-backend-go/internal/pkg/database"
	"github.com/pulsehr/attendance-backend-go/internal/pkg/jwt"
	"github.com/pulsehr/attendance-backend-go/internal/repository/postgresql"
	authService "github.com/pulsehr/attendance-backend-go/internal/service/auth"
	departmentService "github.com/pulsehr/attendance-backend-go/internal/service/department"
	employeeService "github.com/pulsehr/attendance-backend-go/internal/service/employee"
	eventService "github.com/pulsehr/attendance-backend-go/internal/service/event"
	leaveService "github.com/pulsehr/attendance-backend-go/internal/service/leave"
	punchService "github.com/pulsehr/attendance-backend-go/internal/service/punch"
	statisticsService "github.com/pulsehr/attendance-backend-go/internal/service/statistics"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	snapshotRepo := postgresql.NewSnapshotRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	defaultPolicy := statisticsService.PolicyFromConfig(cfg.Schedule)

	auth := authService.NewAuthService(userRepo, jwtService)
	employees := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	departments := departmentService.NewDepartmentService(departmentRepo, employeeRepo)
	punches := punchService.NewPunchService(punchRepo, employeeRepo, defaultPolicy)
	leaves := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	events := eventService.NewEventService(eventRepo)
	statistics := statisticsService.NewStatisticsService(employeeRepo, punchRepo, departmentRepo, snapshotRepo, defaultPolicy)

	authHandler := appHTTP.NewAuthHandler(jwtService, auth)
	employeeHandler := appHTTP.NewEmployeeHandler(employees)
	departmentHandler := appHTTP.NewDepartmentHandler(departments)
	punchHandler := appHTTP.NewPunchHandler(punches)
	leaveHandler := appHTTP.NewLeaveHandler(leaves)
	eventHandler := appHTTP.NewEventHandler(events)
	statisticsHandler := appHTTP.NewStatisticsHandler(statistics)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		departmentHandler,
		punchHandler,
		leaveHandler,
		eventHandler,
		statisticsHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
