package employee

import (
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Department   *string `json:"department"`
	JobTitle     string  `json:"job_title"`
	HireDate     string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) || !validator.MaxLength(r.EmployeeCode, 20) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be upper-case alphanumeric with dashes, at most 20 characters",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	} else if !validator.MaxLength(r.FullName, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name cannot exceed 100 characters",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Department != nil && !validator.MaxLength(*r.Department, 50) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department cannot exceed 50 characters",
		})
	}

	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title is required",
		})
	} else if !validator.MaxLength(r.JobTitle, 50) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title cannot exceed 50 characters",
		})
	}

	if !validator.IsValidDate(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be a date in YYYY-MM-DD format",
		})
	} else if hireDate, _ := time.Parse("2006-01-02", r.HireDate); hireDate.After(time.Now()) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date cannot be in the future",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
	JobTitle   string  `json:"job_title"`
	IsActive   bool    `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) || !validator.MaxLength(r.FullName, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required and cannot exceed 100 characters",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Department != nil && !validator.MaxLength(*r.Department, 50) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department cannot exceed 50 characters",
		})
	}

	if validator.IsEmpty(r.JobTitle) || !validator.MaxLength(r.JobTitle, 50) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title is required and cannot exceed 50 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	EmployeeCode  string  `json:"employee_code"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Department    *string `json:"department"`
	JobTitle      string  `json:"job_title"`
	HireDate      string  `json:"hire_date"`
	PresenceToken string  `json:"presence_token"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
}
