package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/attendance"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, attendance_date, clock_in_at, clock_out_at, hours_worked, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, version, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.AttendanceDate,
		record.ClockInAt,
		record.ClockOutAt,
		record.HoursWorked,
		record.Notes,
	).Scan(&record.ID, &record.Version, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "attendance_records_employee_id_attendance_date") {
			return attendance.AttendanceRecord{}, attendance.ErrDuplicateAttendance
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.attendance_date, a.clock_in_at, a.clock_out_at,
			   a.hours_worked, a.notes, a.version, a.created_at, a.updated_at,
			   e.full_name
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.AttendanceDate, &rec.ClockInAt, &rec.ClockOutAt,
		&rec.HoursWorked, &rec.Notes, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.attendance_date, a.clock_in_at, a.clock_out_at,
			   a.hours_worked, a.notes, a.version, a.created_at, a.updated_at,
			   e.full_name
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.attendance_date = $2
		LIMIT 1
	`

	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.AttendanceDate, &rec.ClockInAt, &rec.ClockOutAt,
		&rec.HoursWorked, &rec.Notes, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by employee and date: %w", err)
	}

	return &rec, nil
}

// GetByDateRange implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.attendance_date, a.clock_in_at, a.clock_out_at,
			   a.hours_worked, a.notes, a.version, a.created_at, a.updated_at,
			   e.full_name
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.attendance_date >= $1
		  AND a.attendance_date <= $2
		ORDER BY a.attendance_date, e.full_name
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.AttendanceDate, &rec.ClockInAt, &rec.ClockOutAt,
			&rec.HoursWorked, &rec.Notes, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}

// Update implements attendance.AttendanceRepository. The WHERE clause
// compares the version the caller read; bumping it on success makes every
// write observable to concurrent readers.
func (a *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET attendance_date = $1, clock_in_at = $2, clock_out_at = $3,
			hours_worked = $4, notes = $5, version = version + 1, updated_at = NOW()
		WHERE id = $6 AND version = $7
	`

	tag, err := q.Exec(ctx, query,
		record.AttendanceDate,
		record.ClockInAt,
		record.ClockOutAt,
		record.HoursWorked,
		record.Notes,
		record.ID,
		record.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// The row exists (the service fetched it) but the token moved on.
		return attendance.ErrVersionConflict
	}

	return nil
}
