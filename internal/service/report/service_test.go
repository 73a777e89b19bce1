package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/attendance"
)

type stubAttendanceRepo struct {
	records []attendance.AttendanceRecord
}

func (s *stubAttendanceRepo) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	return record, nil
}

func (s *stubAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, r := range s.records {
		if !r.AttendanceDate.Before(start) && !r.AttendanceDate.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	return nil
}

func TestReportingService_EmptyRangeIsNotFound(t *testing.T) {
	t.Parallel()
	svc := NewReportingService(&stubAttendanceRepo{}, time.UTC)

	start, _ := time.Parse("2006-01-02", "2025-01-01")
	end, _ := time.Parse("2006-01-02", "2025-01-31")

	_, err := svc.GenerateAttendanceReport(context.Background(), start, end)
	assert.ErrorIs(t, err, attendance.ErrNoAttendanceRecords)
}

func TestReportingService_GeneratesWorkbook(t *testing.T) {
	t.Parallel()

	name := "Ada Example"
	clockIn := time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)
	clockOut := time.Date(2025, 1, 15, 17, 15, 0, 0, time.UTC)
	day, _ := time.Parse("2006-01-02", "2025-01-15")

	repo := &stubAttendanceRepo{records: []attendance.AttendanceRecord{
		{
			ID:             "att-1",
			EmployeeID:     "emp-1",
			EmployeeName:   &name,
			AttendanceDate: day,
			ClockInAt:      &clockIn,
			ClockOutAt:     &clockOut,
			HoursWorked:    decimal.NewFromFloat(8.75),
		},
	}}
	svc := NewReportingService(repo, time.UTC)

	start, _ := time.Parse("2006-01-02", "2025-01-01")
	end, _ := time.Parse("2006-01-02", "2025-01-31")

	content, err := svc.GenerateAttendanceReport(context.Background(), start, end)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	employeeCell, err := f.GetCellValue("Attendance", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Ada Example", employeeCell)

	dateCell, err := f.GetCellValue("Attendance", "B4")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", dateCell)
}
