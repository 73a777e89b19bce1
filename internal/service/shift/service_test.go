package shift

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/shift"
)

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
	nextID int
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]shift.Shift)}
}

func (f *fakeShiftRepo) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	for _, existing := range f.shifts {
		if strings.EqualFold(strings.TrimSpace(existing.Name), strings.TrimSpace(sh.Name)) {
			return shift.Shift{}, shift.ErrDuplicateShiftName
		}
	}
	f.nextID++
	sh.ID = fmt.Sprintf("shift-%d", f.nextID)
	f.shifts[sh.ID] = sh
	return sh, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	sh, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return sh, nil
}

func (f *fakeShiftRepo) GetByName(ctx context.Context, name string) (*shift.Shift, error) {
	for _, sh := range f.shifts {
		if strings.EqualFold(strings.TrimSpace(sh.Name), strings.TrimSpace(name)) {
			s := sh
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeShiftRepo) GetAll(ctx context.Context) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, sh := range f.shifts {
		out = append(out, sh)
	}
	return out, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, sh shift.Shift) error {
	if _, ok := f.shifts[sh.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	f.shifts[sh.ID] = sh
	return nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

func (f *fakeShiftRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.shifts[id]
	return ok, nil
}

func createTestShift(t *testing.T, svc shift.ShiftService, name, start, end string, grace int) string {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, shift.CreateShiftRequest{
		Name:               name,
		StartTime:          start,
		EndTime:            end,
		GracePeriodMinutes: grace,
	}))
	created, err := svc.GetByName(ctx, name)
	require.NoError(t, err)
	return created.ID
}

func TestShiftService_Create_EmptyName(t *testing.T) {
	t.Parallel()
	svc := NewShiftService(newFakeShiftRepo())

	err := svc.Create(context.Background(), shift.CreateShiftRequest{
		Name:      "   ",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	assert.ErrorIs(t, err, shift.ErrShiftNameEmpty)
}

func TestShiftService_Create_DuplicateName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepo())

	createTestShift(t, svc, "Night", "22:00", "06:00", 15)

	err := svc.Create(ctx, shift.CreateShiftRequest{
		Name:      "Night",
		StartTime: "21:00",
		EndTime:   "05:00",
	})
	assert.ErrorIs(t, err, shift.ErrDuplicateShiftName)
}

func TestShiftService_IsTimeWithinShift_WrapAround(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepo())
	id := createTestShift(t, svc, "Night", "22:00", "06:00", 15)

	cases := []struct {
		at   string
		want bool
	}{
		{"23:00", true},
		{"05:00", true},
		{"22:00", true},
		{"06:00", true},
		{"12:00", false},
	}
	for _, c := range cases {
		got, err := svc.IsTimeWithinShift(ctx, id, c.at)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "time %s", c.at)
	}
}

func TestShiftService_IsTimeWithinShift_Daytime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepo())
	id := createTestShift(t, svc, "Day", "09:00", "17:00", 15)

	cases := []struct {
		at   string
		want bool
	}{
		{"08:59", false},
		{"09:00", true},
		{"17:00", true},
		{"17:01", false},
	}
	for _, c := range cases {
		got, err := svc.IsTimeWithinShift(ctx, id, c.at)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "time %s", c.at)
	}
}

func TestShiftService_IsTimeWithinShiftWithGrace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepo())
	id := createTestShift(t, svc, "Day", "09:00", "17:00", 15)

	// 08:50 is outside the raw window but inside the grace-widened one.
	raw, err := svc.IsTimeWithinShift(ctx, id, "08:50")
	require.NoError(t, err)
	assert.False(t, raw)

	graced, err := svc.IsTimeWithinShiftWithGrace(ctx, id, "08:50")
	require.NoError(t, err)
	assert.True(t, graced)

	// Still outside even with grace.
	graced, err = svc.IsTimeWithinShiftWithGrace(ctx, id, "08:44")
	require.NoError(t, err)
	assert.False(t, graced)
}

func TestShiftService_IsTimeWithinShift_UnknownShift(t *testing.T) {
	t.Parallel()
	svc := NewShiftService(newFakeShiftRepo())

	_, err := svc.IsTimeWithinShift(context.Background(), "missing", "09:00")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestShiftService_GetAll_EmptyIsNotFound(t *testing.T) {
	t.Parallel()
	svc := NewShiftService(newFakeShiftRepo())

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, shift.ErrNoShiftsFound)
}

func TestShiftService_Update_RewritesWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	id := createTestShift(t, svc, "Evening", "16:00", "23:00", 0)

	require.NoError(t, svc.Update(ctx, shift.UpdateShiftRequest{
		ID:                 id,
		Name:               "Evening",
		StartTime:          "17:00",
		EndTime:            "01:00",
		GracePeriodMinutes: 10,
	}))

	updated, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "17:00", updated.StartTime)
	assert.Equal(t, "01:00", updated.EndTime)
	assert.Equal(t, 10, updated.GracePeriodMinutes)

	// The rewritten window wraps now.
	within, err := svc.IsTimeWithinShift(ctx, id, "00:30")
	require.NoError(t, err)
	assert.True(t, within)
}
