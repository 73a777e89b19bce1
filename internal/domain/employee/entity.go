package employee

import (
	"time"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Department   *string
	JobTitle     string
	HireDate     time.Time
	// PresenceToken is the unique check-in credential issued once at
	// onboarding and never regenerated.
	PresenceToken string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
