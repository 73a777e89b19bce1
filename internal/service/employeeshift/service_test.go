package employeeshift

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/shift"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/timeutil"
)

type fakeEmployeeShiftRepo struct {
	assignments map[string]shift.EmployeeShift
	nextID      int
}

func newFakeEmployeeShiftRepo() *fakeEmployeeShiftRepo {
	return &fakeEmployeeShiftRepo{assignments: make(map[string]shift.EmployeeShift)}
}

func (f *fakeEmployeeShiftRepo) Assign(ctx context.Context, employeeID, shiftID string, date time.Time) (shift.EmployeeShift, error) {
	for _, existing := range f.assignments {
		if existing.EmployeeID == employeeID && existing.AssignedDate.Equal(date) {
			return shift.EmployeeShift{}, shift.ErrEmployeeAlreadyOnShift
		}
	}
	f.nextID++
	assignment := shift.EmployeeShift{
		ID:           fmt.Sprintf("es-%d", f.nextID),
		EmployeeID:   employeeID,
		ShiftID:      shiftID,
		AssignedDate: date,
	}
	f.assignments[assignment.ID] = assignment
	return assignment, nil
}

func (f *fakeEmployeeShiftRepo) GetByID(ctx context.Context, id string) (shift.EmployeeShift, error) {
	assignment, ok := f.assignments[id]
	if !ok {
		return shift.EmployeeShift{}, shift.ErrEmployeeShiftNotFound
	}
	return assignment, nil
}

func (f *fakeEmployeeShiftRepo) GetByEmployee(ctx context.Context, employeeID string) ([]shift.EmployeeShift, error) {
	var out []shift.EmployeeShift
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeEmployeeShiftRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]shift.EmployeeShift, error) {
	var out []shift.EmployeeShift
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID && a.AssignedDate.Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeEmployeeShiftRepo) GetByDate(ctx context.Context, date time.Time) ([]shift.EmployeeShift, error) {
	var out []shift.EmployeeShift
	for _, a := range f.assignments {
		if a.AssignedDate.Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeEmployeeShiftRepo) IsEmployeeOnShift(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID && a.AssignedDate.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.assignments[id]; !ok {
		return shift.ErrEmployeeShiftNotFound
	}
	delete(f.assignments, id)
	return nil
}

// fakeShiftCatalog only answers existence checks.
type fakeShiftCatalog struct {
	ids map[string]bool
}

func (f *fakeShiftCatalog) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	return sh, nil
}

func (f *fakeShiftCatalog) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	if !f.ids[id] {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return shift.Shift{ID: id, StartTime: timeutil.MustClockTime("09:00"), EndTime: timeutil.MustClockTime("17:00")}, nil
}

func (f *fakeShiftCatalog) GetByName(ctx context.Context, name string) (*shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftCatalog) GetAll(ctx context.Context) ([]shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftCatalog) Update(ctx context.Context, sh shift.Shift) error { return nil }

func (f *fakeShiftCatalog) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeShiftCatalog) Exists(ctx context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

func newTestService() (shift.EmployeeShiftService, *fakeEmployeeShiftRepo) {
	repo := newFakeEmployeeShiftRepo()
	catalog := &fakeShiftCatalog{ids: map[string]bool{"shift-day": true, "shift-night": true}}
	return NewEmployeeShiftService(repo, catalog), repo
}

func TestEmployeeShiftService_Assign_UnknownShift(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	err := svc.Assign(context.Background(), shift.AssignEmployeeShiftRequest{
		EmployeeID:   "emp-1",
		ShiftID:      "missing",
		AssignedDate: "2025-01-15",
	})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestEmployeeShiftService_Assign_SecondShiftSameDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	require.NoError(t, svc.Assign(ctx, shift.AssignEmployeeShiftRequest{
		EmployeeID:   "emp-1",
		ShiftID:      "shift-day",
		AssignedDate: "2025-01-15",
	}))

	// A different shift the same day is still a duplicate.
	err := svc.Assign(ctx, shift.AssignEmployeeShiftRequest{
		EmployeeID:   "emp-1",
		ShiftID:      "shift-night",
		AssignedDate: "2025-01-15",
	})
	assert.ErrorIs(t, err, shift.ErrEmployeeAlreadyOnShift)

	// The same shift on another day is fine, as is another employee on
	// the same day.
	assert.NoError(t, svc.Assign(ctx, shift.AssignEmployeeShiftRequest{
		EmployeeID:   "emp-1",
		ShiftID:      "shift-day",
		AssignedDate: "2025-01-16",
	}))
	assert.NoError(t, svc.Assign(ctx, shift.AssignEmployeeShiftRequest{
		EmployeeID:   "emp-2",
		ShiftID:      "shift-day",
		AssignedDate: "2025-01-15",
	}))
}

func TestEmployeeShiftService_IsEmployeeOnShift(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	onShift, err := svc.IsEmployeeOnShift(ctx, "emp-1", "2025-01-15")
	require.NoError(t, err)
	assert.False(t, onShift)

	require.NoError(t, svc.Assign(ctx, shift.AssignEmployeeShiftRequest{
		EmployeeID:   "emp-1",
		ShiftID:      "shift-day",
		AssignedDate: "2025-01-15",
	}))

	onShift, err = svc.IsEmployeeOnShift(ctx, "emp-1", "2025-01-15")
	require.NoError(t, err)
	assert.True(t, onShift)
}

func TestEmployeeShiftService_GetAllForEmployee_EmptyIsNotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.GetAllForEmployee(context.Background(), "emp-1")
	assert.ErrorIs(t, err, shift.ErrNoEmployeeShiftsFound)
}

func TestEmployeeShiftService_Unassign(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	require.NoError(t, svc.Assign(ctx, shift.AssignEmployeeShiftRequest{
		EmployeeID:   "emp-1",
		ShiftID:      "shift-day",
		AssignedDate: "2025-01-15",
	}))
	require.Len(t, repo.assignments, 1)

	require.NoError(t, svc.Unassign(ctx, "es-1"))
	assert.Empty(t, repo.assignments)

	// Removing it again reports not found.
	assert.ErrorIs(t, svc.Unassign(ctx, "es-1"), shift.ErrEmployeeShiftNotFound)
}
