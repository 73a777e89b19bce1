package shift

import (
	"context"
	"fmt"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/shift"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/timeutil"
	"github.com/Oksman-1/Employee-Attendance-System/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository: shiftRepo,
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) error {
	if validator.IsEmpty(req.Name) {
		return shift.ErrShiftNameEmpty
	}
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.ShiftRepository.GetByName(ctx, req.Name)
	if err != nil {
		return fmt.Errorf("failed to check existing shift name: %w", err)
	}
	if existing != nil {
		return shift.ErrDuplicateShiftName
	}

	start, _ := timeutil.ParseClockTime(req.StartTime)
	end, _ := timeutil.ParseClockTime(req.EndTime)

	newShift := shift.Shift{
		Name:               req.Name,
		StartTime:          start,
		EndTime:            end,
		GracePeriodMinutes: req.GracePeriodMinutes,
	}

	if _, err := s.ShiftRepository.Create(ctx, newShift); err != nil {
		return err
	}

	return nil
}

// GetByID implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapShiftToResponse(sh), nil
}

// GetByName implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByName(ctx context.Context, name string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByName(ctx, name)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift by name: %w", err)
	}
	if sh == nil {
		return shift.ShiftResponse{}, shift.ErrShiftNotFound
	}

	return mapShiftToResponse(*sh), nil
}

// GetAll implements shift.ShiftService.
func (s *ShiftServiceImpl) GetAll(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	if len(shifts) == 0 {
		return nil, shift.ErrNoShiftsFound
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh))
	}

	return responses, nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) error {
	if validator.IsEmpty(req.Name) {
		return shift.ErrShiftNameEmpty
	}
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.ShiftRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	start, _ := timeutil.ParseClockTime(req.StartTime)
	end, _ := timeutil.ParseClockTime(req.EndTime)

	existing.Name = req.Name
	existing.StartTime = start
	existing.EndTime = end
	existing.GracePeriodMinutes = req.GracePeriodMinutes

	return s.ShiftRepository.Update(ctx, existing)
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ShiftRepository.Delete(ctx, id)
}

// IsTimeWithinShift implements shift.ShiftService. Containment runs against
// the raw window; the stored grace period never shifts the answer here.
func (s *ShiftServiceImpl) IsTimeWithinShift(ctx context.Context, shiftID string, timeOfDay string) (bool, error) {
	t, err := timeutil.ParseClockTime(timeOfDay)
	if err != nil {
		return false, err
	}

	sh, err := s.ShiftRepository.GetByID(ctx, shiftID)
	if err != nil {
		return false, err
	}

	return sh.Contains(t), nil
}

// IsTimeWithinShiftWithGrace implements shift.ShiftService.
func (s *ShiftServiceImpl) IsTimeWithinShiftWithGrace(ctx context.Context, shiftID string, timeOfDay string) (bool, error) {
	t, err := timeutil.ParseClockTime(timeOfDay)
	if err != nil {
		return false, err
	}

	sh, err := s.ShiftRepository.GetByID(ctx, shiftID)
	if err != nil {
		return false, err
	}

	return sh.ContainsWithGrace(t), nil
}

func mapShiftToResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:                 sh.ID,
		Name:               sh.Name,
		StartTime:          sh.StartTime.String(),
		EndTime:            sh.EndTime.String(),
		GracePeriodMinutes: sh.GracePeriodMinutes,
	}
}
