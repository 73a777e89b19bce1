package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/attendance"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/validator"
)

// fakeAttendanceRepo keeps records in memory and mirrors the store's
// uniqueness and compare-and-swap behaviour.
type fakeAttendanceRepo struct {
	records map[string]attendance.AttendanceRecord
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.AttendanceRecord)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == record.EmployeeID && existing.AttendanceDate.Equal(record.AttendanceDate) {
			return attendance.AttendanceRecord{}, attendance.ErrDuplicateAttendance
		}
	}
	f.nextID++
	record.ID = fmt.Sprintf("att-%d", f.nextID)
	record.Version = 1
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	for _, record := range f.records {
		if record.EmployeeID == employeeID && record.AttendanceDate.Equal(date) {
			r := record
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, record := range f.records {
		if !record.AttendanceDate.Before(start) && !record.AttendanceDate.After(end) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	stored, ok := f.records[record.ID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	if stored.Version != record.Version {
		return attendance.ErrVersionConflict
	}
	record.Version++
	f.records[record.ID] = record
	return nil
}

func strPtr(s string) *string { return &s }

func TestAttendanceService_Create_Duplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, time.UTC)

	req := attendance.CreateAttendanceRecordRequest{
		EmployeeID:     "emp-1",
		AttendanceDate: "2025-01-15",
		ClockInAt:      strPtr("2025-01-15T08:30:00Z"),
	}
	require.NoError(t, svc.Create(ctx, req))

	// Second record for the same employee and day, even with different
	// clock events, must fail.
	req.ClockInAt = strPtr("2025-01-15T10:00:00Z")
	err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)

	// A different day is fine.
	req.AttendanceDate = "2025-01-16"
	assert.NoError(t, svc.Create(ctx, req))
}

func TestAttendanceService_Create_ClockOutBeforeClockIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), time.UTC)

	err := svc.Create(ctx, attendance.CreateAttendanceRecordRequest{
		EmployeeID:     "emp-1",
		AttendanceDate: "2025-01-15",
		ClockInAt:      strPtr("2025-01-15T17:00:00Z"),
		ClockOutAt:     strPtr("2025-01-15T09:00:00Z"),
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "clock_out_at")
}

func TestAttendanceService_Update_RecomputesHours(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, time.UTC)

	require.NoError(t, svc.Create(ctx, attendance.CreateAttendanceRecordRequest{
		EmployeeID:     "emp-1",
		AttendanceDate: "2025-01-15",
	}))

	// 08:30 to 17:15 is 8.75 hours; the caller-supplied 99 is ignored
	// because both clock events are present.
	err := svc.Update(ctx, attendance.UpdateAttendanceRecordRequest{
		ID:             "att-1",
		AttendanceDate: "2025-01-15",
		ClockInAt:      strPtr("2025-01-15T08:30:00Z"),
		ClockOutAt:     strPtr("2025-01-15T17:15:00Z"),
		HoursWorked:    decimal.NewFromInt(99),
		Version:        1,
	})
	require.NoError(t, err)

	stored := repo.records["att-1"]
	assert.True(t, stored.HoursWorked.Equal(decimal.NewFromFloat(8.75)), "stored hours = %s", stored.HoursWorked)
}

func TestAttendanceService_Update_KeepsCallerHoursWhenClockEventMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, time.UTC)

	require.NoError(t, svc.Create(ctx, attendance.CreateAttendanceRecordRequest{
		EmployeeID:     "emp-1",
		AttendanceDate: "2025-01-15",
	}))

	err := svc.Update(ctx, attendance.UpdateAttendanceRecordRequest{
		ID:             "att-1",
		AttendanceDate: "2025-01-15",
		ClockInAt:      strPtr("2025-01-15T08:30:00Z"),
		HoursWorked:    decimal.NewFromFloat(4.5),
		Version:        1,
	})
	require.NoError(t, err)

	stored := repo.records["att-1"]
	assert.True(t, stored.HoursWorked.Equal(decimal.NewFromFloat(4.5)))
}

func TestAttendanceService_Update_StaleVersion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, time.UTC)

	require.NoError(t, svc.Create(ctx, attendance.CreateAttendanceRecordRequest{
		EmployeeID:     "emp-1",
		AttendanceDate: "2025-01-15",
	}))

	first := attendance.UpdateAttendanceRecordRequest{
		ID:             "att-1",
		AttendanceDate: "2025-01-15",
		Notes:          strPtr("first writer"),
		Version:        1,
	}
	require.NoError(t, svc.Update(ctx, first))

	// A second writer still holding version 1 must conflict and leave
	// the row untouched.
	second := attendance.UpdateAttendanceRecordRequest{
		ID:             "att-1",
		AttendanceDate: "2025-01-15",
		Notes:          strPtr("second writer"),
		Version:        1,
	}
	err := svc.Update(ctx, second)
	assert.ErrorIs(t, err, attendance.ErrVersionConflict)
	assert.Equal(t, "first writer", *repo.records["att-1"].Notes)
}

func TestAttendanceService_GetByEmployeeAndDate_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), time.UTC)

	_, err := svc.GetByEmployeeAndDate(ctx, "emp-1", "2025-01-15")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_GetByDateRange_EmptyIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), time.UTC)

	_, err := svc.GetByDateRange(ctx, "2025-01-01", "2025-01-31")
	assert.ErrorIs(t, err, attendance.ErrNoAttendanceRecords)
}

func TestAttendanceService_Lateness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	svc := NewAttendanceService(repo, jakarta)

	// 02:30 UTC is 09:30 in Jakarta (UTC+7), after the 09:00 cutoff.
	require.NoError(t, svc.Create(ctx, attendance.CreateAttendanceRecordRequest{
		EmployeeID:     "emp-late",
		AttendanceDate: "2025-01-15",
		ClockInAt:      strPtr("2025-01-15T02:30:00Z"),
	}))
	// 01:30 UTC is 08:30 in Jakarta, on time.
	require.NoError(t, svc.Create(ctx, attendance.CreateAttendanceRecordRequest{
		EmployeeID:     "emp-ontime",
		AttendanceDate: "2025-01-15",
		ClockInAt:      strPtr("2025-01-15T01:30:00Z"),
	}))

	late, err := svc.GetByEmployeeAndDate(ctx, "emp-late", "2025-01-15")
	require.NoError(t, err)
	assert.True(t, late.IsLate)

	onTime, err := svc.GetByEmployeeAndDate(ctx, "emp-ontime", "2025-01-15")
	require.NoError(t, err)
	assert.False(t, onTime.IsLate)
}
