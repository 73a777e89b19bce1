package response

import (
	"errors"
	"net/http"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/attendance"
	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/employee"
	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/leave"
	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/shift"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoEmployeesFound):
		NotFound(w, "No employees found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoAttendanceRecords):
		NotFound(w, "No attendance records found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance record already exists for this employee and date")
	case errors.Is(err, attendance.ErrVersionConflict):
		Conflict(w, "Attendance record was modified by another request")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNoShiftsFound):
		NotFound(w, "No shifts found")
	case errors.Is(err, shift.ErrDuplicateShiftName):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrShiftNameEmpty):
		BadRequest(w, "Shift name is required", nil)
	case errors.Is(err, shift.ErrEmployeeShiftNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrNoEmployeeShiftsFound):
		NotFound(w, "No shift assignments found")
	case errors.Is(err, shift.ErrEmployeeAlreadyOnShift):
		Conflict(w, "Employee already has a shift assigned for this date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrNoLeaveRecords):
		NotFound(w, "No leave records found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave interval overlaps an existing record")
	case errors.Is(err, leave.ErrLeaveAlreadyInState):
		Conflict(w, "Leave record already in the requested state")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
