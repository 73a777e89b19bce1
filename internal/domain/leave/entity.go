package leave

import (
	"time"
)

// LeaveRecord is an inclusive [StartDate, EndDate] interval for one
// employee. Approved=false is pending; rejection stores the same value, the
// distinction only exists in the approval command's outcome.
type LeaveRecord struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Approved   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName  *string
	EmployeeEmail *string
}
