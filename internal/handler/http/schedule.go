package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/handler/http/response"
)

type ScheduleHandler interface {
	GenerateSchedules(w http.ResponseWriter, r *http.Request)
	ListSchedules(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	EditSchedule(w http.ResponseWriter, r *http.Request)
	DeleteSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GenerateSchedules implements ScheduleHandler.
func (h *scheduleHandlerImpl) GenerateSchedules(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req schedule.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.scheduleService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Schedules generated", result)
}

// ListSchedules implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListSchedules(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	includeArchived := r.URL.Query().Get("incluir_archivadas") == "true"

	result, err := h.scheduleService.ListWeeks(r.Context(), employeeID, includeArchived)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetSchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	weekID := chi.URLParam(r, "weekID")

	result, err := h.scheduleService.GetWeek(r.Context(), weekID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// EditSchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) EditSchedule(w http.ResponseWriter, r *http.Request) {
	weekID := chi.URLParam(r, "weekID")

	var req schedule.EditWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.WeekID = weekID

	result, err := h.scheduleService.EditWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Schedule updated", result)
}

// DeleteSchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	weekID := chi.URLParam(r, "weekID")

	if err := h.scheduleService.DeleteWeek(r.Context(), weekID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Schedule deleted", nil)
}
