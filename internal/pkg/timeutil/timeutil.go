// Package timeutil holds the pure calendar and clock predicates the
// attendance, shift and leave services are built on. No I/O, no clocks.
package timeutil

import (
	"fmt"
	"time"
)

// ClockTime is a time-of-day with minute precision, independent of any date.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "15:04" into a ClockTime.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MustClockTime is ParseClockTime for compile-time constants in tests and
// fixtures. Panics on bad input.
func MustClockTime(s string) ClockTime {
	ct, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return ct
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the offset from midnight in minutes.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// ClockTimeOf extracts the time-of-day of t in t's location.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// AddMinutes shifts the clock time by m minutes, wrapping around midnight.
func (c ClockTime) AddMinutes(m int) ClockTime {
	total := ((c.Minutes()+m)%1440 + 1440) % 1440
	return ClockTime{Hour: total / 60, Minute: total % 60}
}

// After reports whether c is strictly later in the day than other.
func (c ClockTime) After(other ClockTime) bool {
	return c.Minutes() > other.Minutes()
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateOnly truncates t to its calendar day in UTC. Attendance days, shift
// assignment dates and leave bounds are date-only values.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRangesOverlap reports whether the closed date intervals [aStart, aEnd]
// and [bStart, bEnd] share at least one day: aStart <= bEnd AND aEnd >= bStart.
func DateRangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// WithinWindow reports whether t lies inside the shift window [start, end],
// bounds inclusive. A window whose end is not later than its start wraps past
// midnight: 22:00-06:00 contains 23:00 and 05:00 but not 12:00.
func WithinWindow(start, end, t ClockTime) bool {
	if start.Minutes() < end.Minutes() {
		return t.Minutes() >= start.Minutes() && t.Minutes() <= end.Minutes()
	}
	return t.Minutes() >= start.Minutes() || t.Minutes() <= end.Minutes()
}

// WithinWindowGrace is WithinWindow with the window's start pushed back by
// graceMinutes, so an arrival inside the grace period still counts as within
// the shift. Kept as its own predicate: plain containment never consults the
// grace period.
func WithinWindowGrace(start, end ClockTime, graceMinutes int, t ClockTime) bool {
	return WithinWindow(start.AddMinutes(-graceMinutes), end, t)
}
