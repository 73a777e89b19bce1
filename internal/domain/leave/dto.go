package leave

import (
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/validator"
)

type CreateLeaveRecordRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	errs = append(errs, validateLeaveInterval(r.StartDate, r.EndDate)...)
	errs = append(errs, validateLeaveReason(r.Reason)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveRecordRequest struct {
	ID        string `json:"-"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Approved  bool   `json:"approved"`
}

func (r *UpdateLeaveRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateLeaveInterval(r.StartDate, r.EndDate)...)
	errs = append(errs, validateLeaveReason(r.Reason)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateLeaveInterval(start, end string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a date in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidDate(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a date in YYYY-MM-DD format",
		})
	}

	if len(errs) == 0 {
		startDate, _ := time.Parse("2006-01-02", start)
		endDate, _ := time.Parse("2006-01-02", end)
		if endDate.Before(startDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	return errs
}

func validateLeaveReason(reason string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if !validator.MaxLength(reason, 250) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason cannot exceed 250 characters",
		})
	}

	return errs
}

type ApproveLeaveRequest struct {
	ID       string `json:"-"`
	Approved bool   `json:"approved"`
}

type LeaveRecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Approved     bool    `json:"approved"`
}
