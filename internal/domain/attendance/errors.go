package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance record already exists for this employee on this date")
	ErrVersionConflict     = errors.New("attendance record was modified by another caller")
	ErrNoAttendanceRecords = errors.New("no attendance records found")
)
