package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	loc *time.Location
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		loc:                  loc,
	}
}

// parseInstant converts an optional RFC 3339 string, already validated,
// into a UTC instant.
func parseInstant(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, _ := time.Parse(time.RFC3339, *s)
	utc := t.UTC()
	return &utc
}

func formatInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

// Create implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	day, _ := time.Parse("2006-01-02", req.AttendanceDate)

	// Fast-path duplicate check; the unique index remains the
	// authoritative guard under races.
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return fmt.Errorf("failed to check existing attendance record: %w", err)
	}
	if existing != nil {
		return attendance.ErrDuplicateAttendance
	}

	record := attendance.AttendanceRecord{
		EmployeeID:     req.EmployeeID,
		AttendanceDate: day,
		ClockInAt:      parseInstant(req.ClockInAt),
		ClockOutAt:     parseInstant(req.ClockOutAt),
		HoursWorked:    req.HoursWorked,
		Notes:          req.Notes,
	}

	if _, err := a.AttendanceRepository.Create(ctx, record); err != nil {
		return err
	}

	return nil
}

// Update implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	day, _ := time.Parse("2006-01-02", req.AttendanceDate)
	record.AttendanceDate = day
	record.ClockInAt = parseInstant(req.ClockInAt)
	record.ClockOutAt = parseInstant(req.ClockOutAt)
	record.Notes = req.Notes

	if record.ClockInAt != nil && record.ClockOutAt != nil {
		// Both clock events present: the stored hours are derived from
		// them and the caller-supplied value is ignored.
		hours := record.ClockOutAt.Sub(*record.ClockInAt).Hours()
		record.HoursWorked = decimal.NewFromFloat(hours).Round(2)
	} else {
		record.HoursWorked = req.HoursWorked
	}

	// Carry the caller's token, not the freshly read one: if someone
	// else wrote between the caller's read and this update, the write
	// must fail wholesale.
	record.Version = req.Version

	return a.AttendanceRepository.Update(ctx, record)
}

// GetByEmployeeAndDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (attendance.AttendanceRecordResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil {
		return attendance.AttendanceRecordResponse{}, attendance.ErrAttendanceNotFound
	}

	return a.mapRecordToResponse(*record), nil
}

// GetByDateRange implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetByDateRange(ctx context.Context, start, end string) ([]attendance.AttendanceRecordResponse, error) {
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDay, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	records, err := a.AttendanceRepository.GetByDateRange(ctx, startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	if len(records) == 0 {
		return nil, attendance.ErrNoAttendanceRecords
	}

	responses := make([]attendance.AttendanceRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, a.mapRecordToResponse(record))
	}

	return responses, nil
}

func (a *AttendanceServiceImpl) mapRecordToResponse(record attendance.AttendanceRecord) attendance.AttendanceRecordResponse {
	return attendance.AttendanceRecordResponse{
		ID:                    record.ID,
		EmployeeID:            record.EmployeeID,
		EmployeeName:          record.EmployeeName,
		AttendanceDate:        record.AttendanceDate.Format("2006-01-02"),
		ClockInAt:             formatInstant(record.ClockInAt),
		ClockOutAt:            formatInstant(record.ClockOutAt),
		HoursWorked:           record.HoursWorked,
		CalculatedHoursWorked: record.CalculatedHoursWorked(),
		IsLate:                record.IsLate(a.loc),
		Notes:                 record.Notes,
		Version:               record.Version,
	}
}
