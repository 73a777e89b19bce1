package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/leave"
	"github.com/Oksman-1/Employee-Attendance-System/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateLeave(w http.ResponseWriter, r *http.Request)
	UpdateLeave(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
	GetLeave(w http.ResponseWriter, r *http.Request)
	ListLeaveForEmployee(w http.ResponseWriter, r *http.Request)
	ListLeaveByDateRange(w http.ResponseWriter, r *http.Request)
	ListPendingLeave(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveRecordService
}

func NewLeaveHandler(leaveService leave.LeaveRecordService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// CreateLeave implements LeaveHandler
func (h *leaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.Create(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave record created successfully", nil)
}

// UpdateLeave implements LeaveHandler
func (h *leaveHandlerImpl) UpdateLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave record ID is required", nil)
		return
	}

	var req leave.UpdateLeaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.leaveService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave record updated successfully", nil)
}

// DeleteLeave implements LeaveHandler
func (h *leaveHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave record ID is required", nil)
		return
	}

	if err := h.leaveService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave record deleted successfully", nil)
}

// GetLeave implements LeaveHandler
func (h *leaveHandlerImpl) GetLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave record ID is required", nil)
		return
	}

	result, err := h.leaveService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListLeaveForEmployee implements LeaveHandler. With 'overlaps_start' and
// 'overlaps_end' query parameters it collapses to a boolean overlap check
// instead of a listing.
func (h *leaveHandlerImpl) ListLeaveForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	start := r.URL.Query().Get("overlaps_start")
	end := r.URL.Query().Get("overlaps_end")
	if start != "" || end != "" {
		if start == "" || end == "" {
			response.BadRequest(w, "Query parameters 'overlaps_start' and 'overlaps_end' are both required", nil)
			return
		}
		overlapping, err := h.leaveService.HasOverlappingLeave(r.Context(), employeeID, start, end)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, map[string]bool{"overlapping": overlapping})
		return
	}

	results, err := h.leaveService.GetByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListLeaveByDateRange implements LeaveHandler
func (h *leaveHandlerImpl) ListLeaveByDateRange(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "Query parameters 'start' and 'end' are required", nil)
		return
	}

	results, err := h.leaveService.GetByDateRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListPendingLeave implements LeaveHandler
func (h *leaveHandlerImpl) ListPendingLeave(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveService.GetPendingApproval(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ApproveLeave implements LeaveHandler
func (h *leaveHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave record ID is required", nil)
		return
	}

	var req leave.ApproveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.leaveService.Approve(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave record approval updated successfully", nil)
}
