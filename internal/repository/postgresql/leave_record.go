package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/leave"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRecordRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) leave.LeaveRecordRepository {
	return &leaveRecordRepositoryImpl{db: db}
}

// Create implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_records (employee_id, start_date, end_date, reason, approved)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.StartDate,
		record.EndDate,
		record.Reason,
		record.Approved,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return record, nil
}

const leaveRecordSelect = `
	SELECT l.id, l.employee_id, l.start_date, l.end_date, l.reason, l.approved,
		   l.created_at, l.updated_at, e.full_name, e.email
	FROM leave_records l
	LEFT JOIN employees e ON e.id = l.employee_id
`

func scanLeaveRecord(row pgx.Row) (leave.LeaveRecord, error) {
	var rec leave.LeaveRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate, &rec.Reason, &rec.Approved,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName, &rec.EmployeeEmail,
	)
	return rec, err
}

// GetByID implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanLeaveRecord(q.QueryRow(ctx, leaveRecordSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRecord{}, leave.ErrLeaveRecordNotFound
		}
		return leave.LeaveRecord{}, fmt.Errorf("failed to get leave record: %w", err)
	}

	return rec, nil
}

func (r *leaveRecordRepositoryImpl) queryLeaveRecords(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		rec, err := scanLeaveRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave records: %w", err)
	}

	return records, nil
}

// GetByEmployee implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRecord, error) {
	return r.queryLeaveRecords(ctx,
		leaveRecordSelect+` WHERE l.employee_id = $1 ORDER BY l.start_date`,
		employeeID,
	)
}

// GetByDateRange implements leave.LeaveRecordRepository. Interval overlap,
// not containment: a leave merely touching the range is included.
func (r *leaveRecordRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time) ([]leave.LeaveRecord, error) {
	return r.queryLeaveRecords(ctx,
		leaveRecordSelect+` WHERE l.start_date <= $2 AND l.end_date >= $1 ORDER BY l.start_date`,
		start, end,
	)
}

// GetPendingApproval implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) GetPendingApproval(ctx context.Context) ([]leave.LeaveRecord, error) {
	return r.queryLeaveRecords(ctx,
		leaveRecordSelect+` WHERE l.approved = FALSE ORDER BY l.start_date`,
	)
}

// HasOverlapping implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_records
			WHERE employee_id = $1
			  AND start_date <= $3
			  AND end_date >= $2
			  AND ($4::uuid IS NULL OR id <> $4::uuid)
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, start, end, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}

	return exists, nil
}

// Update implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Update(ctx context.Context, record leave.LeaveRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_records
		SET start_date = $1, end_date = $2, reason = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, record.StartDate, record.EndDate, record.Reason, record.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRecordNotFound
		}
		return fmt.Errorf("failed to update leave record: %w", err)
	}

	return nil
}

// SetApproved implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) SetApproved(ctx context.Context, id string, approved bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE leave_records SET approved = $1, updated_at = NOW() WHERE id = $2`,
		approved, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set leave approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRecordNotFound
	}

	return nil
}

// Delete implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRecordNotFound
	}

	return nil
}
