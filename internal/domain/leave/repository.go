package leave

import (
	"context"
	"time"
)

// LeaveRecordRepository defines data access methods for leave records.
type LeaveRecordRepository interface {
	// Create inserts a new record with Approved=false
	Create(ctx context.Context, record LeaveRecord) (LeaveRecord, error)

	// GetByID retrieves one record with denormalized employee fields
	GetByID(ctx context.Context, id string) (LeaveRecord, error)

	// GetByEmployee retrieves every record of one employee
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveRecord, error)

	// GetByDateRange retrieves every record whose interval overlaps
	// [start, end]; touching the range is enough.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]LeaveRecord, error)

	// GetPendingApproval retrieves every record with Approved=false
	GetPendingApproval(ctx context.Context) ([]LeaveRecord, error)

	// HasOverlapping reports whether the employee owns a record whose
	// interval overlaps [start, end]. excludeID, when non-nil, names a
	// record to ignore so an update can be checked against its siblings.
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error)

	// Update overwrites interval and reason
	Update(ctx context.Context, record LeaveRecord) error

	// SetApproved flips the approval flag
	SetApproved(ctx context.Context, id string, approved bool) error

	// Delete removes one record
	Delete(ctx context.Context, id string) error
}
