package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create inserts a new employee. A duplicate code or email is reported
	// as ErrEmployeeCodeExists / ErrEmailExists, including when the
	// duplicate is only caught by the storage-level unique constraint.
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID retrieves an employee by surrogate id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode retrieves an employee by its unique employee code.
	// Returns nil when no employee holds the code.
	GetByCode(ctx context.Context, code string) (*Employee, error)

	// GetByPresenceToken retrieves the employee owning a presence token
	GetByPresenceToken(ctx context.Context, token string) (Employee, error)

	// GetAll retrieves every employee
	GetAll(ctx context.Context) ([]Employee, error)

	// Update overwrites mutable profile fields. The presence token and
	// employee code are never written.
	Update(ctx context.Context, employee Employee) error

	// Delete removes an employee; the store cascades to attendance
	// records, shift assignments and leave records.
	Delete(ctx context.Context, id string) error
}
