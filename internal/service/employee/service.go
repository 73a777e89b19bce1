package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// Create implements employee.EmployeeService. The presence token is minted
// here and never changes for the lifetime of the employee.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := e.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	created, err := e.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeCode:  req.EmployeeCode,
		FullName:      req.FullName,
		Email:         req.Email,
		Department:    req.Department,
		JobTitle:      req.JobTitle,
		HireDate:      hireDate,
		PresenceToken: uuid.NewString(),
		IsActive:      true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// GetByPresenceToken implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByPresenceToken(ctx context.Context, token string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByPresenceToken(ctx, token)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// GetAll implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, employee.ErrNoEmployeesFound
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	emp.FullName = req.FullName
	emp.Email = req.Email
	emp.Department = req.Department
	emp.JobTitle = req.JobTitle
	emp.IsActive = req.IsActive

	return e.EmployeeRepository.Update(ctx, emp)
}

// Delete implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return e.EmployeeRepository.Delete(ctx, id)
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		EmployeeCode:  emp.EmployeeCode,
		FullName:      emp.FullName,
		Email:         emp.Email,
		Department:    emp.Department,
		JobTitle:      emp.JobTitle,
		HireDate:      emp.HireDate.Format("2006-01-02"),
		PresenceToken: emp.PresenceToken,
		IsActive:      emp.IsActive,
		CreatedAt:     emp.CreatedAt.Format(time.RFC3339),
	}
}
