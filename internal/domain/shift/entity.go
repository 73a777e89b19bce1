package shift

import (
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/timeutil"
)

// Shift is a named, reusable time-of-day window. EndTime not later than
// StartTime means the window wraps past midnight (22:00-06:00).
type Shift struct {
	ID                 string
	Name               string
	StartTime          timeutil.ClockTime
	EndTime            timeutil.ClockTime
	GracePeriodMinutes int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Contains reports whether t falls inside the raw shift window. The grace
// period never affects this answer.
func (s *Shift) Contains(t timeutil.ClockTime) bool {
	return timeutil.WithinWindow(s.StartTime, s.EndTime, t)
}

// ContainsWithGrace widens the window start by the grace period.
func (s *Shift) ContainsWithGrace(t timeutil.ClockTime) bool {
	return timeutil.WithinWindowGrace(s.StartTime, s.EndTime, s.GracePeriodMinutes, t)
}

// EmployeeShift binds one employee to one shift on one calendar day.
// (employee_id, assigned_date) is unique: an employee never holds two
// shifts the same day, whatever the shifts are.
type EmployeeShift struct {
	ID           string
	EmployeeID   string
	ShiftID      string
	AssignedDate time.Time
	CreatedAt    time.Time

	// DTO
	EmployeeName *string
	ShiftName    *string
}
