package employeeshift

import (
	"context"
	"fmt"
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/shift"
)

type EmployeeShiftServiceImpl struct {
	shift.EmployeeShiftRepository
	shift.ShiftRepository
}

func NewEmployeeShiftService(employeeShiftRepo shift.EmployeeShiftRepository, shiftRepo shift.ShiftRepository) shift.EmployeeShiftService {
	return &EmployeeShiftServiceImpl{
		EmployeeShiftRepository: employeeShiftRepo,
		ShiftRepository:         shiftRepo,
	}
}

// Assign implements shift.EmployeeShiftService.
func (s *EmployeeShiftServiceImpl) Assign(ctx context.Context, req shift.AssignEmployeeShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	date, _ := time.Parse("2006-01-02", req.AssignedDate)

	exists, err := s.ShiftRepository.Exists(ctx, req.ShiftID)
	if err != nil {
		return fmt.Errorf("failed to check shift existence: %w", err)
	}
	if !exists {
		return shift.ErrShiftNotFound
	}

	// Uniqueness is keyed on employee+date only: a different shift the
	// same day is still a duplicate. The pre-check is the fast path, the
	// unique index catches races.
	onShift, err := s.EmployeeShiftRepository.IsEmployeeOnShift(ctx, req.EmployeeID, date)
	if err != nil {
		return fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if onShift {
		return shift.ErrEmployeeAlreadyOnShift
	}

	if _, err := s.EmployeeShiftRepository.Assign(ctx, req.EmployeeID, req.ShiftID, date); err != nil {
		return err
	}

	return nil
}

// Unassign implements shift.EmployeeShiftService.
func (s *EmployeeShiftServiceImpl) Unassign(ctx context.Context, employeeShiftID string) error {
	return s.EmployeeShiftRepository.Delete(ctx, employeeShiftID)
}

// GetByID implements shift.EmployeeShiftService.
func (s *EmployeeShiftServiceImpl) GetByID(ctx context.Context, employeeShiftID string) (shift.EmployeeShiftResponse, error) {
	assignment, err := s.EmployeeShiftRepository.GetByID(ctx, employeeShiftID)
	if err != nil {
		return shift.EmployeeShiftResponse{}, err
	}

	return mapAssignmentToResponse(assignment), nil
}

// GetAllForEmployee implements shift.EmployeeShiftService.
func (s *EmployeeShiftServiceImpl) GetAllForEmployee(ctx context.Context, employeeID string) ([]shift.EmployeeShiftResponse, error) {
	assignments, err := s.EmployeeShiftRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for employee: %w", err)
	}

	return mapAssignments(assignments)
}

// GetForEmployeeAndDate implements shift.EmployeeShiftService.
func (s *EmployeeShiftServiceImpl) GetForEmployeeAndDate(ctx context.Context, employeeID string, date string) ([]shift.EmployeeShiftResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	assignments, err := s.EmployeeShiftRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for employee and date: %w", err)
	}

	return mapAssignments(assignments)
}

// GetAllForDate implements shift.EmployeeShiftService.
func (s *EmployeeShiftServiceImpl) GetAllForDate(ctx context.Context, date string) ([]shift.EmployeeShiftResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	assignments, err := s.EmployeeShiftRepository.GetByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for date: %w", err)
	}

	return mapAssignments(assignments)
}

// IsEmployeeOnShift implements shift.EmployeeShiftService.
func (s *EmployeeShiftServiceImpl) IsEmployeeOnShift(ctx context.Context, employeeID string, date string) (bool, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}

	return s.EmployeeShiftRepository.IsEmployeeOnShift(ctx, employeeID, day)
}

// An empty assignment set is a reportable outcome, not a silent success.
func mapAssignments(assignments []shift.EmployeeShift) ([]shift.EmployeeShiftResponse, error) {
	if len(assignments) == 0 {
		return nil, shift.ErrNoEmployeeShiftsFound
	}

	responses := make([]shift.EmployeeShiftResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, mapAssignmentToResponse(assignment))
	}

	return responses, nil
}

func mapAssignmentToResponse(assignment shift.EmployeeShift) shift.EmployeeShiftResponse {
	return shift.EmployeeShiftResponse{
		ID:           assignment.ID,
		EmployeeID:   assignment.EmployeeID,
		EmployeeName: assignment.EmployeeName,
		ShiftID:      assignment.ShiftID,
		ShiftName:    assignment.ShiftName,
		AssignedDate: assignment.AssignedDate.Format("2006-01-02"),
	}
}
