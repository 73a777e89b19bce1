package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/Oksman-1/Employee-Attendance-System/internal/config"
)

type Handlers struct {
	Employee      EmployeeHandler
	Attendance    AttendanceHandler
	Shift         ShiftHandler
	EmployeeShift EmployeeShiftHandler
	Leave         LeaveHandler
	Report        ReportHandler
}

func NewRouter(cfg *config.Config, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "employee-attendance"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)
			r.Get("/by-token/{token}", h.Employee.GetEmployeeByPresenceToken)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.GetEmployee)
				r.Put("/", h.Employee.UpdateEmployee)
				r.Delete("/", h.Employee.DeleteEmployee)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", h.Attendance.CreateAttendance)
			r.Get("/", h.Attendance.GetAttendanceByDateRange)
			r.Put("/{id}", h.Attendance.UpdateAttendance)
			r.Get("/employees/{employeeId}", h.Attendance.GetAttendanceByEmployeeAndDate)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.Shift.ListShifts)
			r.Post("/", h.Shift.CreateShift)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Shift.GetShift)
				r.Put("/", h.Shift.UpdateShift)
				r.Delete("/", h.Shift.DeleteShift)
				r.Get("/contains", h.Shift.CheckTimeWithinShift)
			})
		})

		r.Route("/employee-shifts", func(r chi.Router) {
			r.Post("/", h.EmployeeShift.AssignShift)
			r.Get("/", h.EmployeeShift.ListAssignmentsForDate)
			r.Get("/employees/{employeeId}", h.EmployeeShift.ListAssignmentsForEmployee)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.EmployeeShift.GetAssignment)
				r.Delete("/", h.EmployeeShift.UnassignShift)
			})
		})

		r.Route("/leave", func(r chi.Router) {
			r.Post("/", h.Leave.CreateLeave)
			r.Get("/", h.Leave.ListLeaveByDateRange)
			r.Get("/pending", h.Leave.ListPendingLeave)
			r.Get("/employees/{employeeId}", h.Leave.ListLeaveForEmployee)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Leave.GetLeave)
				r.Put("/", h.Leave.UpdateLeave)
				r.Delete("/", h.Leave.DeleteLeave)
				r.Post("/approval", h.Leave.ApproveLeave)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/attendance", h.Report.DownloadAttendanceReport)
		})
	})

	return r
}
