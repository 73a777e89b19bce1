package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/shift"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/database"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// TIME columns travel as microseconds since midnight.
func toPgTime(c timeutil.ClockTime) pgtype.Time {
	return pgtype.Time{Microseconds: int64(c.Minutes()) * 60 * 1_000_000, Valid: true}
}

func fromPgTime(t pgtype.Time) timeutil.ClockTime {
	mins := int(t.Microseconds / (60 * 1_000_000))
	return timeutil.ClockTime{Hour: mins / 60, Minute: mins % 60}
}

// Create implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shifts (name, start_time, end_time, grace_period_minutes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		strings.TrimSpace(newShift.Name),
		toPgTime(newShift.StartTime),
		toPgTime(newShift.EndTime),
		newShift.GracePeriodMinutes,
	).Scan(&newShift.ID, &newShift.CreatedAt, &newShift.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "shifts_name") {
			return shift.Shift{}, shift.ErrDuplicateShiftName
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

func scanShift(row pgx.Row) (shift.Shift, error) {
	var sh shift.Shift
	var start, end pgtype.Time
	err := row.Scan(&sh.ID, &sh.Name, &start, &end, &sh.GracePeriodMinutes, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return shift.Shift{}, err
	}
	sh.StartTime = fromPgTime(start)
	sh.EndTime = fromPgTime(end)
	return sh, nil
}

const shiftColumns = `id, name, start_time, end_time, grace_period_minutes, created_at, updated_at`

// GetByID implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	sh, err := scanShift(q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by id: %w", err)
	}

	return sh, nil
}

// GetByName implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetByName(ctx context.Context, name string) (*shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	sh, err := scanShift(q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE name = $1`, strings.TrimSpace(name)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift by name: %w", err)
	}

	return &sh, nil
}

// GetAll implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetAll(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	rows, err := q.Query(ctx, `SELECT `+shiftColumns+` FROM shifts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shifts: %w", err)
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Update(ctx context.Context, sh shift.Shift) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3, grace_period_minutes = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		strings.TrimSpace(sh.Name),
		toPgTime(sh.StartTime),
		toPgTime(sh.EndTime),
		sh.GracePeriodMinutes,
		sh.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		if isUniqueViolation(err, "shifts_name") {
			return shift.ErrDuplicateShiftName
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

// Delete implements shift.ShiftRepository. Assignments referencing the
// shift are removed by ON DELETE CASCADE.
func (s *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Exists implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, s.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shifts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check shift existence: %w", err)
	}

	return exists, nil
}
