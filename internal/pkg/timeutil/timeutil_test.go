package timeutil

import (
	"testing"
	"time"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		input   string
		want    ClockTime
		wantErr bool
	}{
		{"09:00", ClockTime{Hour: 9}, false},
		{"23:59", ClockTime{Hour: 23, Minute: 59}, false},
		{"00:00", ClockTime{}, false},
		{"24:00", ClockTime{}, true},
		{"9:00", ClockTime{}, true},
		{"09:60", ClockTime{}, true},
		{"abc", ClockTime{}, true},
		{"", ClockTime{}, true},
	}
	for _, c := range cases {
		got, err := ParseClockTime(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClockTime(%q) expected error, got %v", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClockTime(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClockTime(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestWithinWindowDaytime(t *testing.T) {
	start := MustClockTime("09:00")
	end := MustClockTime("17:00")

	cases := []struct {
		at   string
		want bool
	}{
		{"08:59", false},
		{"09:00", true},
		{"12:00", true},
		{"17:00", true},
		{"17:01", false},
	}
	for _, c := range cases {
		got := WithinWindow(start, end, MustClockTime(c.at))
		if got != c.want {
			t.Errorf("WithinWindow(09:00, 17:00, %s) = %v, want %v", c.at, got, c.want)
		}
	}
}

func TestWithinWindowWrapAround(t *testing.T) {
	start := MustClockTime("22:00")
	end := MustClockTime("06:00")

	cases := []struct {
		at   string
		want bool
	}{
		{"23:00", true},
		{"00:00", true},
		{"05:00", true},
		{"06:00", true},
		{"22:00", true},
		{"12:00", false},
		{"21:59", false},
		{"06:01", false},
	}
	for _, c := range cases {
		got := WithinWindow(start, end, MustClockTime(c.at))
		if got != c.want {
			t.Errorf("WithinWindow(22:00, 06:00, %s) = %v, want %v", c.at, got, c.want)
		}
	}
}

func TestWithinWindowGrace(t *testing.T) {
	start := MustClockTime("09:00")
	end := MustClockTime("17:00")

	// 15 minutes of grace pushes the window start back to 08:45.
	if !WithinWindowGrace(start, end, 15, MustClockTime("08:45")) {
		t.Error("expected 08:45 to fall inside the grace-widened window")
	}
	if WithinWindowGrace(start, end, 15, MustClockTime("08:44")) {
		t.Error("expected 08:44 to fall outside the grace-widened window")
	}

	// Grace can push a daytime window start across midnight.
	if !WithinWindowGrace(MustClockTime("00:10"), MustClockTime("08:00"), 30, MustClockTime("23:55")) {
		t.Error("expected 23:55 to fall inside a window whose grace crosses midnight")
	}
}

func TestAddMinutesWraps(t *testing.T) {
	cases := []struct {
		at      string
		minutes int
		want    string
	}{
		{"09:00", 30, "09:30"},
		{"23:50", 20, "00:10"},
		{"00:10", -20, "23:50"},
		{"12:00", 1440, "12:00"},
	}
	for _, c := range cases {
		got := MustClockTime(c.at).AddMinutes(c.minutes)
		if got.String() != c.want {
			t.Errorf("%s.AddMinutes(%d) = %s, want %s", c.at, c.minutes, got, c.want)
		}
	}
}

func TestDateRangesOverlap(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return d
	}

	cases := []struct {
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"2025-01-10", "2025-01-20", "2025-01-15", "2025-01-25", true},
		{"2025-01-10", "2025-01-20", "2025-01-20", "2025-01-25", true},
		{"2025-01-10", "2025-01-20", "2025-01-21", "2025-01-25", false},
		{"2025-01-10", "2025-01-10", "2025-01-10", "2025-01-10", true},
		{"2025-01-01", "2025-01-05", "2025-01-06", "2025-01-09", false},
	}
	for _, c := range cases {
		got := DateRangesOverlap(day(c.aStart), day(c.aEnd), day(c.bStart), day(c.bEnd))
		if got != c.want {
			t.Errorf("DateRangesOverlap(%s..%s, %s..%s) = %v, want %v",
				c.aStart, c.aEnd, c.bStart, c.bEnd, got, c.want)
		}
	}
}

func TestClockTimeOf(t *testing.T) {
	at := time.Date(2025, 3, 1, 14, 37, 59, 0, time.UTC)
	got := ClockTimeOf(at)
	want := ClockTime{Hour: 14, Minute: 37}
	if got != want {
		t.Errorf("ClockTimeOf = %v, want %v", got, want)
	}
}
