package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. The (employee_id, attendance_date)
	// unique index is the authoritative per-day guard; a violation is
	// reported as ErrDuplicateAttendance even when the service pre-check
	// missed the race.
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// GetByID retrieves a record with the denormalized employee name
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// business day, or nil when none exists. Used as the fast-path
	// duplicate pre-check.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)

	// GetByDateRange retrieves all records whose day falls in
	// [start, end] inclusive, each with the denormalized employee name.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]AttendanceRecord, error)

	// Update compares-and-swaps on record.Version. A stale version is
	// reported as ErrVersionConflict and leaves the row untouched.
	Update(ctx context.Context, record AttendanceRecord) error
}
