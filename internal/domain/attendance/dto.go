package attendance

import (
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAttendanceRecordRequest struct {
	EmployeeID     string          `json:"employee_id"`
	AttendanceDate string          `json:"attendance_date"`
	ClockInAt      *string         `json:"clock_in_at"`
	ClockOutAt     *string         `json:"clock_out_at"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	Notes          *string         `json:"notes"`
}

func (r *CreateAttendanceRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidDate(r.AttendanceDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_date",
			Message: "attendance_date must be a date in YYYY-MM-DD format",
		})
	}

	errs = append(errs, validateClockEvents(r.ClockInAt, r.ClockOutAt)...)

	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked cannot be negative",
		})
	}

	if r.Notes != nil && !validator.MaxLength(*r.Notes, 500) {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes cannot exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRecordRequest struct {
	ID             string          `json:"-"`
	AttendanceDate string          `json:"attendance_date"`
	ClockInAt      *string         `json:"clock_in_at"`
	ClockOutAt     *string         `json:"clock_out_at"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	Notes          *string         `json:"notes"`
	// Version must be the concurrency token observed on the preceding
	// read; a stale value makes the whole write fail with a conflict.
	Version int64 `json:"version"`
}

func (r *UpdateAttendanceRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.AttendanceDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_date",
			Message: "attendance_date must be a date in YYYY-MM-DD format",
		})
	}

	errs = append(errs, validateClockEvents(r.ClockInAt, r.ClockOutAt)...)

	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked cannot be negative",
		})
	}

	if r.Notes != nil && !validator.MaxLength(*r.Notes, 500) {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes cannot exceed 500 characters",
		})
	}

	if r.Version <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "version",
			Message: "version is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateClockEvents(clockIn, clockOut *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if clockIn != nil && !validator.IsValidTimestamp(*clockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_at",
			Message: "clock_in_at must be an RFC 3339 timestamp",
		})
	}

	if clockOut != nil && !validator.IsValidTimestamp(*clockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out_at",
			Message: "clock_out_at must be an RFC 3339 timestamp",
		})
	}

	if len(errs) == 0 && clockIn != nil && clockOut != nil {
		in, _ := time.Parse(time.RFC3339, *clockIn)
		out, _ := time.Parse(time.RFC3339, *clockOut)
		if out.Before(in) {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out_at",
				Message: "clock_out_at must not be before clock_in_at",
			})
		}
	}

	return errs
}

type AttendanceRecordResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   *string         `json:"employee_name"`
	AttendanceDate string          `json:"attendance_date"`
	ClockInAt      *string         `json:"clock_in_at"`
	ClockOutAt     *string         `json:"clock_out_at"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	// CalculatedHoursWorked is always derived from the clock events,
	// never read from storage.
	CalculatedHoursWorked float64 `json:"calculated_hours_worked"`
	IsLate                bool    `json:"is_late"`
	Notes                 *string `json:"notes"`
	Version               int64   `json:"version"`
}
