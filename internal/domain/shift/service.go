package shift

import (
	"context"
)

// ShiftService manages the shift catalog and answers window containment
// queries, including windows that wrap past midnight.
type ShiftService interface {
	// Create adds a shift template; duplicate names (trimmed comparison)
	// fail with ErrDuplicateShiftName.
	Create(ctx context.Context, req CreateShiftRequest) error

	// GetByID retrieves one shift
	GetByID(ctx context.Context, id string) (ShiftResponse, error)

	// GetByName retrieves one shift by name
	GetByName(ctx context.Context, name string) (ShiftResponse, error)

	// GetAll retrieves the catalog; empty is ErrNoShiftsFound
	GetAll(ctx context.Context) ([]ShiftResponse, error)

	// Update rewrites a shift template
	Update(ctx context.Context, req UpdateShiftRequest) error

	// Delete removes a shift and, through the store, its assignments
	Delete(ctx context.Context, id string) error

	// IsTimeWithinShift answers raw window containment for timeOfDay in
	// HH:MM form. The grace period does not participate.
	IsTimeWithinShift(ctx context.Context, shiftID string, timeOfDay string) (bool, error)

	// IsTimeWithinShiftWithGrace is the grace-adjusted variant: the
	// window start is widened by the shift's grace period.
	IsTimeWithinShiftWithGrace(ctx context.Context, shiftID string, timeOfDay string) (bool, error)
}

// EmployeeShiftService enforces at most one shift assignment per employee
// per day.
type EmployeeShiftService interface {
	// Assign binds an employee to a shift on a date; any existing
	// assignment that day, whatever the shift, fails with
	// ErrEmployeeAlreadyOnShift.
	Assign(ctx context.Context, req AssignEmployeeShiftRequest) error

	// Unassign removes one assignment
	Unassign(ctx context.Context, employeeShiftID string) error

	// GetByID retrieves one assignment
	GetByID(ctx context.Context, employeeShiftID string) (EmployeeShiftResponse, error)

	// GetAllForEmployee retrieves every assignment of an employee
	GetAllForEmployee(ctx context.Context, employeeID string) ([]EmployeeShiftResponse, error)

	// GetForEmployeeAndDate retrieves an employee's assignments on a date
	GetForEmployeeAndDate(ctx context.Context, employeeID string, date string) ([]EmployeeShiftResponse, error)

	// GetAllForDate retrieves every assignment on a date
	GetAllForDate(ctx context.Context, date string) ([]EmployeeShiftResponse, error)

	// IsEmployeeOnShift is a plain existence check; it never reports
	// not-found.
	IsEmployeeOnShift(ctx context.Context, employeeID string, date string) (bool, error)
}
