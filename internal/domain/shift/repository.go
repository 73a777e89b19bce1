package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for the shift catalog.
type ShiftRepository interface {
	// Create inserts a new shift; a duplicate name is reported as
	// ErrDuplicateShiftName, backed by the unique index on the
	// trimmed name.
	Create(ctx context.Context, shift Shift) (Shift, error)

	// GetByID retrieves a shift by id
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByName retrieves a shift by its trimmed name, nil when absent
	GetByName(ctx context.Context, name string) (*Shift, error)

	// GetAll retrieves the whole catalog
	GetAll(ctx context.Context) ([]Shift, error)

	// Update overwrites a shift template
	Update(ctx context.Context, shift Shift) error

	// Delete removes a shift; the store cascades to its assignments
	Delete(ctx context.Context, id string) error

	// Exists reports whether a shift id is present
	Exists(ctx context.Context, id string) (bool, error)
}

// EmployeeShiftRepository defines data access methods for shift assignments.
type EmployeeShiftRepository interface {
	// Assign inserts a new assignment. The (employee_id, assigned_date)
	// unique index is the authoritative per-day guard; a violation is
	// reported as ErrEmployeeAlreadyOnShift.
	Assign(ctx context.Context, employeeID, shiftID string, date time.Time) (EmployeeShift, error)

	// GetByID retrieves one assignment with denormalized names
	GetByID(ctx context.Context, id string) (EmployeeShift, error)

	// GetByEmployee retrieves all assignments of one employee
	GetByEmployee(ctx context.Context, employeeID string) ([]EmployeeShift, error)

	// GetByEmployeeAndDate retrieves the assignments of one employee on
	// one calendar day
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]EmployeeShift, error)

	// GetByDate retrieves every assignment on one calendar day
	GetByDate(ctx context.Context, date time.Time) ([]EmployeeShift, error)

	// IsEmployeeOnShift reports whether the employee holds any
	// assignment on the date
	IsEmployeeOnShift(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// Delete removes one assignment
	Delete(ctx context.Context, id string) error
}
