package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound     = errors.New("shift not found")
	ErrDuplicateShiftName = errors.New("shift with this name already exists")
	ErrShiftNameEmpty    = errors.New("shift name cannot be empty")
	ErrNoShiftsFound     = errors.New("no shifts found")

	// Assignment errors
	ErrEmployeeShiftNotFound  = errors.New("employee shift assignment not found")
	ErrEmployeeAlreadyOnShift = errors.New("employee is already assigned to a shift on this date")
	ErrNoEmployeeShiftsFound  = errors.New("no employee shift assignments found")
)
