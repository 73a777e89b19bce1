package shift

import (
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name               string `json:"name"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	GracePeriodMinutes int    `json:"grace_period_minutes"`
}

func (r *CreateShiftRequest) Validate() error {
	return validateShiftFields(r.Name, r.StartTime, r.EndTime, r.GracePeriodMinutes)
}

type UpdateShiftRequest struct {
	ID                 string `json:"-"`
	Name               string `json:"name"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	GracePeriodMinutes int    `json:"grace_period_minutes"`
}

func (r *UpdateShiftRequest) Validate() error {
	return validateShiftFields(r.Name, r.StartTime, r.EndTime, r.GracePeriodMinutes)
}

// validateShiftFields checks structure only. Start and end are independent
// time-of-day values with no forced ordering: a wrap-around window is a
// valid configuration, not an error.
func validateShiftFields(name, start, end string, grace int) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if !validator.MaxLength(name, 50) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot exceed 50 characters",
		})
	}

	if !validator.IsValidTimeOfDay(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a time in HH:MM format",
		})
	}

	if !validator.IsValidTimeOfDay(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a time in HH:MM format",
		})
	}

	if grace < 0 || grace > 60 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must be between 0 and 60",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	GracePeriodMinutes int    `json:"grace_period_minutes"`
}

type AssignEmployeeShiftRequest struct {
	EmployeeID   string `json:"employee_id"`
	ShiftID      string `json:"shift_id"`
	AssignedDate string `json:"assigned_date"`
}

func (r *AssignEmployeeShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if !validator.IsValidDate(r.AssignedDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_date",
			Message: "assigned_date must be a date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeShiftResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name"`
	ShiftID      string  `json:"shift_id"`
	ShiftName    *string `json:"shift_name"`
	AssignedDate string  `json:"assigned_date"`
}
