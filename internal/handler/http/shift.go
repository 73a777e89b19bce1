package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/shift"
	"github.com/Oksman-1/Employee-Attendance-System/internal/handler/http/response"
)

type ShiftHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
	CheckTimeWithinShift(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// CreateShift implements ShiftHandler
func (h *shiftHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.shiftService.Create(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", nil)
}

// GetShift implements ShiftHandler
func (h *shiftHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	result, err := h.shiftService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListShifts implements ShiftHandler
func (h *shiftHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		result, err := h.shiftService.GetByName(r.Context(), name)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	results, err := h.shiftService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateShift implements ShiftHandler
func (h *shiftHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.shiftService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", nil)
}

// DeleteShift implements ShiftHandler
func (h *shiftHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// CheckTimeWithinShift implements ShiftHandler. With grace=true the window
// start is widened by the shift's grace period.
func (h *shiftHandlerImpl) CheckTimeWithinShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	timeOfDay := r.URL.Query().Get("time")
	if timeOfDay == "" {
		response.BadRequest(w, "Query parameter 'time' is required", nil)
		return
	}

	var within bool
	var err error
	if r.URL.Query().Get("grace") == "true" {
		within, err = h.shiftService.IsTimeWithinShiftWithGrace(r.Context(), id, timeOfDay)
	} else {
		within, err = h.shiftService.IsTimeWithinShift(r.Context(), id, timeOfDay)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]bool{"within": within})
}
