package leave

import (
	"context"
	"time"
)

// LeaveRecordService enforces non-overlapping leave intervals per employee
// and runs the pending/approved flag.
type LeaveRecordService interface {
	// Create inserts a pending record; an interval overlapping any
	// existing record of the employee fails with ErrOverlappingLeave.
	Create(ctx context.Context, req CreateLeaveRecordRequest) error

	// Update rewrites interval and reason. The new interval is
	// re-checked for overlap against the employee's other records.
	Update(ctx context.Context, req UpdateLeaveRecordRequest) error

	// Delete removes one record
	Delete(ctx context.Context, id string) error

	// GetByID retrieves one record
	GetByID(ctx context.Context, id string) (LeaveRecordResponse, error)

	// GetByEmployee retrieves an employee's records; empty is
	// ErrNoLeaveRecords.
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveRecordResponse, error)

	// GetByDateRange retrieves records overlapping [start, end]
	GetByDateRange(ctx context.Context, start, end string) ([]LeaveRecordResponse, error)

	// GetPendingApproval retrieves all pending records
	GetPendingApproval(ctx context.Context) ([]LeaveRecordResponse, error)

	// HasOverlappingLeave is a plain existence check, always a boolean
	HasOverlappingLeave(ctx context.Context, employeeID string, start, end string) (bool, error)

	// Approve sets the flag; requesting the value already stored fails
	// with ErrLeaveAlreadyInState rather than succeeding as a no-op.
	Approve(ctx context.Context, req ApproveLeaveRequest) error
}

// Notifier delivers leave status notifications. Failures are surfaced to
// the caller of the notifier, not to the employee-facing command.
type Notifier interface {
	SendLeaveStatus(ctx context.Context, to, employeeName string, start, end time.Time, approved bool) error
}
