package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Oksman-1/Employee-Attendance-System/internal/config"
	appHTTP "github.com/Oksman-1/Employee-Attendance-System/internal/handler/http"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/database"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/email"
	"github.com/Oksman-1/Employee-Attendance-System/internal/repository/postgresql"
	attendanceService "github.com/Oksman-1/Employee-Attendance-System/internal/service/attendance"
	employeeService "github.com/Oksman-1/Employee-Attendance-System/internal/service/employee"
	employeeShiftService "github.com/Oksman-1/Employee-Attendance-System/internal/service/employeeshift"
	leaveService "github.com/Oksman-1/Employee-Attendance-System/internal/service/leave"
	reportService "github.com/Oksman-1/Employee-Attendance-System/internal/service/report"
	shiftService "github.com/Oksman-1/Employee-Attendance-System/internal/service/shift"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	employeeShiftRepo := postgresql.NewEmployeeShiftRepository(db)
	leaveRecordRepo := postgresql.NewLeaveRecordRepository(db)

	notifier, err := email.NewNotifier(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email notifier:", err)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.App.Timezone)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	employeeShiftSvc := employeeShiftService.NewEmployeeShiftService(employeeShiftRepo, shiftRepo)
	leaveSvc := leaveService.NewLeaveRecordService(db, leaveRecordRepo, notifier)
	reportSvc := reportService.NewReportingService(attendanceRepo, cfg.App.Timezone)

	router := appHTTP.NewRouter(cfg, appHTTP.Handlers{
		Employee:      appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:    appHTTP.NewAttendanceHandler(attendanceSvc),
		Shift:         appHTTP.NewShiftHandler(shiftSvc),
		EmployeeShift: appHTTP.NewEmployeeShiftHandler(employeeShiftSvc),
		Leave:         appHTTP.NewLeaveHandler(leaveSvc),
		Report:        appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
