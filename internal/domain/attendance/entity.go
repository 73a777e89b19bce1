package attendance

import (
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// LateCutoff is the local time-of-day after which a clock-in counts as late.
var LateCutoff = timeutil.ClockTime{Hour: 9}

type AttendanceRecord struct {
	ID         string
	EmployeeID string
	// AttendanceDate is the local business day this record accounts for,
	// date-only.
	AttendanceDate time.Time
	// Clock events are absolute instants stored in UTC.
	ClockInAt   *time.Time
	ClockOutAt  *time.Time
	HoursWorked decimal.Decimal
	Notes       *string
	// Version is the optimistic concurrency token; it changes on every
	// write and must be echoed back on update.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// CalculatedHoursWorked derives worked hours from the two clock events.
// Zero when either event is missing.
func (a *AttendanceRecord) CalculatedHoursWorked() float64 {
	if a.ClockInAt == nil || a.ClockOutAt == nil {
		return 0
	}
	return a.ClockOutAt.Sub(*a.ClockInAt).Hours()
}

// IsLate reports whether the clock-in time-of-day in loc is after LateCutoff.
func (a *AttendanceRecord) IsLate(loc *time.Location) bool {
	if a.ClockInAt == nil {
		return false
	}
	return timeutil.ClockTimeOf(a.ClockInAt.In(loc)).After(LateCutoff)
}
