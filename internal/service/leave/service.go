package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/leave"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/database"
	"github.com/Oksman-1/Employee-Attendance-System/internal/repository/postgresql"
)

type LeaveRecordServiceImpl struct {
	db *database.DB
	leave.LeaveRecordRepository
	notifier leave.Notifier
}

// NewLeaveRecordService wires the leave rules. db may be nil, in which
// case commands run outside a transaction. notifier may be nil, in which
// case approval outcomes are not emailed.
func NewLeaveRecordService(db *database.DB, leaveRepo leave.LeaveRecordRepository, notifier leave.Notifier) leave.LeaveRecordService {
	return &LeaveRecordServiceImpl{
		db:                    db,
		LeaveRecordRepository: leaveRepo,
		notifier:              notifier,
	}
}

// inTx runs fn inside a transaction so the overlap check and the write
// observe the same snapshot.
func (l *LeaveRecordServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if l.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

// Create implements leave.LeaveRecordService.
func (l *LeaveRecordServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	return l.inTx(ctx, func(ctx context.Context) error {
		overlapping, err := l.LeaveRecordRepository.HasOverlapping(ctx, req.EmployeeID, start, end, nil)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave: %w", err)
		}
		if overlapping {
			return leave.ErrOverlappingLeave
		}

		record := leave.LeaveRecord{
			EmployeeID: req.EmployeeID,
			StartDate:  start,
			EndDate:    end,
			Reason:     req.Reason,
			Approved:   false,
		}

		if _, err := l.LeaveRecordRepository.Create(ctx, record); err != nil {
			return err
		}

		return nil
	})
}

// Update implements leave.LeaveRecordService. The new interval is checked
// against the employee's other records, so an edit cannot introduce an
// overlap that creation would have rejected.
func (l *LeaveRecordServiceImpl) Update(ctx context.Context, req leave.UpdateLeaveRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	return l.inTx(ctx, func(ctx context.Context) error {
		record, err := l.LeaveRecordRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		overlapping, err := l.LeaveRecordRepository.HasOverlapping(ctx, record.EmployeeID, start, end, &record.ID)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave: %w", err)
		}
		if overlapping {
			return leave.ErrOverlappingLeave
		}

		record.StartDate = start
		record.EndDate = end
		record.Reason = req.Reason

		return l.LeaveRecordRepository.Update(ctx, record)
	})
}

// Delete implements leave.LeaveRecordService.
func (l *LeaveRecordServiceImpl) Delete(ctx context.Context, id string) error {
	return l.LeaveRecordRepository.Delete(ctx, id)
}

// GetByID implements leave.LeaveRecordService.
func (l *LeaveRecordServiceImpl) GetByID(ctx context.Context, id string) (leave.LeaveRecordResponse, error) {
	record, err := l.LeaveRecordRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRecordResponse{}, err
	}

	return mapRecordToResponse(record), nil
}

// GetByEmployee implements leave.LeaveRecordService.
func (l *LeaveRecordServiceImpl) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRecordResponse, error) {
	records, err := l.LeaveRecordRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records for employee: %w", err)
	}

	return mapRecords(records)
}

// GetByDateRange implements leave.LeaveRecordService.
func (l *LeaveRecordServiceImpl) GetByDateRange(ctx context.Context, start, end string) ([]leave.LeaveRecordResponse, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	records, err := l.LeaveRecordRepository.GetByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records in range: %w", err)
	}

	return mapRecords(records)
}

// GetPendingApproval implements leave.LeaveRecordService.
func (l *LeaveRecordServiceImpl) GetPendingApproval(ctx context.Context) ([]leave.LeaveRecordResponse, error) {
	records, err := l.LeaveRecordRepository.GetPendingApproval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave records: %w", err)
	}

	return mapRecords(records)
}

// HasOverlappingLeave implements leave.LeaveRecordService.
func (l *LeaveRecordServiceImpl) HasOverlappingLeave(ctx context.Context, employeeID string, start, end string) (bool, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return false, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return false, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	return l.LeaveRecordRepository.HasOverlapping(ctx, employeeID, startDate, endDate, nil)
}

// Approve implements leave.LeaveRecordService.
func (l *LeaveRecordServiceImpl) Approve(ctx context.Context, req leave.ApproveLeaveRequest) error {
	record, err := l.LeaveRecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	// Requesting the stored value is rejected, not treated as a no-op
	// success, so the caller learns the command changed nothing.
	if record.Approved == req.Approved {
		return leave.ErrLeaveAlreadyInState
	}

	if err := l.LeaveRecordRepository.SetApproved(ctx, req.ID, req.Approved); err != nil {
		return err
	}

	if l.notifier != nil && record.EmployeeEmail != nil {
		name := ""
		if record.EmployeeName != nil {
			name = *record.EmployeeName
		}
		if err := l.notifier.SendLeaveStatus(ctx, *record.EmployeeEmail, name, record.StartDate, record.EndDate, req.Approved); err != nil {
			// Notification is best-effort; the approval has committed.
			slog.Warn("failed to send leave status notification", "leave_id", req.ID, "error", err)
		}
	}

	return nil
}

func mapRecords(records []leave.LeaveRecord) ([]leave.LeaveRecordResponse, error) {
	if len(records) == 0 {
		return nil, leave.ErrNoLeaveRecords
	}

	responses := make([]leave.LeaveRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapRecordToResponse(record))
	}

	return responses, nil
}

func mapRecordToResponse(record leave.LeaveRecord) leave.LeaveRecordResponse {
	return leave.LeaveRecordResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		StartDate:    record.StartDate.Format("2006-01-02"),
		EndDate:      record.EndDate.Format("2006-01-02"),
		Reason:       record.Reason,
		Approved:     record.Approved,
	}
}
