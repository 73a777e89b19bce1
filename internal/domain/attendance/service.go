package attendance

import (
	"context"
)

// AttendanceService enforces the one-record-per-employee-per-day invariant
// and keeps stored worked hours consistent with the clock events.
type AttendanceService interface {
	// Create persists a new record; a second record for the same
	// employee and day fails with ErrDuplicateAttendance.
	Create(ctx context.Context, req CreateAttendanceRecordRequest) error

	// Update rewrites an existing record. When both clock events are
	// present after the update the stored hours are recomputed from them
	// (2 decimal places) and the caller-supplied value is ignored. The
	// write carries the caller's concurrency token; a stale token fails
	// with ErrVersionConflict.
	Update(ctx context.Context, req UpdateAttendanceRecordRequest) error

	// GetByEmployeeAndDate retrieves one employee's record for one day
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (AttendanceRecordResponse, error)

	// GetByDateRange retrieves all records in [start, end] inclusive.
	// An empty result is ErrNoAttendanceRecords, not an empty success.
	GetByDateRange(ctx context.Context, start, end string) ([]AttendanceRecordResponse, error)
}
