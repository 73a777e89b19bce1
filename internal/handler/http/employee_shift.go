package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/shift"
	"github.com/Oksman-1/Employee-Attendance-System/internal/handler/http/response"
)

type EmployeeShiftHandler interface {
	AssignShift(w http.ResponseWriter, r *http.Request)
	UnassignShift(w http.ResponseWriter, r *http.Request)
	GetAssignment(w http.ResponseWriter, r *http.Request)
	ListAssignmentsForEmployee(w http.ResponseWriter, r *http.Request)
	ListAssignmentsForDate(w http.ResponseWriter, r *http.Request)
}

type employeeShiftHandlerImpl struct {
	employeeShiftService shift.EmployeeShiftService
}

func NewEmployeeShiftHandler(employeeShiftService shift.EmployeeShiftService) EmployeeShiftHandler {
	return &employeeShiftHandlerImpl{
		employeeShiftService: employeeShiftService,
	}
}

// AssignShift implements EmployeeShiftHandler
func (h *employeeShiftHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req shift.AssignEmployeeShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeShiftService.Assign(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assigned successfully", nil)
}

// UnassignShift implements EmployeeShiftHandler
func (h *employeeShiftHandlerImpl) UnassignShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.employeeShiftService.Unassign(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift unassigned successfully", nil)
}

// GetAssignment implements EmployeeShiftHandler
func (h *employeeShiftHandlerImpl) GetAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	result, err := h.employeeShiftService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAssignmentsForEmployee implements EmployeeShiftHandler. With a
// 'date' query parameter the listing narrows to that day; an 'exists'
// query additionally collapses the answer to a boolean.
func (h *employeeShiftHandlerImpl) ListAssignmentsForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	date := r.URL.Query().Get("date")

	if r.URL.Query().Get("exists") == "true" {
		if date == "" {
			response.BadRequest(w, "Query parameter 'date' is required", nil)
			return
		}
		onShift, err := h.employeeShiftService.IsEmployeeOnShift(r.Context(), employeeID, date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, map[string]bool{"assigned": onShift})
		return
	}

	var results []shift.EmployeeShiftResponse
	var err error
	if date != "" {
		results, err = h.employeeShiftService.GetForEmployeeAndDate(r.Context(), employeeID, date)
	} else {
		results, err = h.employeeShiftService.GetAllForEmployee(r.Context(), employeeID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListAssignmentsForDate implements EmployeeShiftHandler
func (h *employeeShiftHandlerImpl) ListAssignmentsForDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	results, err := h.employeeShiftService.GetAllForDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
