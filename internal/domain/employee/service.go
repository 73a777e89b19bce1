package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee catalog
type EmployeeService interface {
	// Create onboards a new employee and issues its presence token
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetByID retrieves a single employee
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)

	// GetByPresenceToken resolves the employee behind a scanned check-in credential
	GetByPresenceToken(ctx context.Context, token string) (EmployeeResponse, error)

	// GetAll retrieves every employee
	GetAll(ctx context.Context) ([]EmployeeResponse, error)

	// Update edits profile fields; the presence token is immutable
	Update(ctx context.Context, req UpdateEmployeeRequest) error

	// Delete removes an employee and everything it owns
	Delete(ctx context.Context, id string) error
}
