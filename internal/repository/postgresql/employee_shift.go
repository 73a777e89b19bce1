package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/shift"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeShiftRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeShiftRepository(db *database.DB) shift.EmployeeShiftRepository {
	return &employeeShiftRepositoryImpl{db: db}
}

// Assign implements shift.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) Assign(ctx context.Context, employeeID, shiftID string, date time.Time) (shift.EmployeeShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_shifts (employee_id, shift_id, assigned_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	assignment := shift.EmployeeShift{
		EmployeeID:   employeeID,
		ShiftID:      shiftID,
		AssignedDate: date,
	}
	err := q.QueryRow(ctx, query, employeeID, shiftID, date).Scan(&assignment.ID, &assignment.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "employee_shifts_employee_id_assigned_date") {
			return shift.EmployeeShift{}, shift.ErrEmployeeAlreadyOnShift
		}
		return shift.EmployeeShift{}, fmt.Errorf("failed to assign employee shift: %w", err)
	}

	return assignment, nil
}

const employeeShiftSelect = `
	SELECT es.id, es.employee_id, es.shift_id, es.assigned_date, es.created_at,
		   e.full_name, s.name
	FROM employee_shifts es
	LEFT JOIN employees e ON e.id = es.employee_id
	LEFT JOIN shifts s ON s.id = es.shift_id
`

func scanEmployeeShift(row pgx.Row) (shift.EmployeeShift, error) {
	var es shift.EmployeeShift
	err := row.Scan(
		&es.ID, &es.EmployeeID, &es.ShiftID, &es.AssignedDate, &es.CreatedAt,
		&es.EmployeeName, &es.ShiftName,
	)
	return es, err
}

// GetByID implements shift.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.EmployeeShift, error) {
	q := GetQuerier(ctx, r.db)

	es, err := scanEmployeeShift(q.QueryRow(ctx, employeeShiftSelect+` WHERE es.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.EmployeeShift{}, shift.ErrEmployeeShiftNotFound
		}
		return shift.EmployeeShift{}, fmt.Errorf("failed to get employee shift: %w", err)
	}

	return es, nil
}

func (r *employeeShiftRepositoryImpl) queryEmployeeShifts(ctx context.Context, query string, args ...interface{}) ([]shift.EmployeeShift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee shifts: %w", err)
	}
	defer rows.Close()

	var assignments []shift.EmployeeShift
	for rows.Next() {
		es, err := scanEmployeeShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee shift: %w", err)
		}
		assignments = append(assignments, es)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee shifts: %w", err)
	}

	return assignments, nil
}

// GetByEmployee implements shift.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]shift.EmployeeShift, error) {
	return r.queryEmployeeShifts(ctx,
		employeeShiftSelect+` WHERE es.employee_id = $1 ORDER BY es.assigned_date`,
		employeeID,
	)
}

// GetByEmployeeAndDate implements shift.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]shift.EmployeeShift, error) {
	return r.queryEmployeeShifts(ctx,
		employeeShiftSelect+` WHERE es.employee_id = $1 AND es.assigned_date = $2`,
		employeeID, date,
	)
}

// GetByDate implements shift.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) GetByDate(ctx context.Context, date time.Time) ([]shift.EmployeeShift, error) {
	return r.queryEmployeeShifts(ctx,
		employeeShiftSelect+` WHERE es.assigned_date = $1 ORDER BY e.full_name`,
		date,
	)
}

// IsEmployeeOnShift implements shift.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) IsEmployeeOnShift(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employee_shifts WHERE employee_id = $1 AND assigned_date = $2)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee shift: %w", err)
	}

	return exists, nil
}

// Delete implements shift.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrEmployeeShiftNotFound
	}

	return nil
}
