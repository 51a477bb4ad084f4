package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/employee"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/handler/http/response"
)

type EmployeeHandler interface {
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListNovedades(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.Service
	noveltyService  novelty.Service
}

func NewEmployeeHandler(employeeService employee.Service, noveltyService novelty.Service) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		noveltyService:  noveltyService,
	}
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.employeeService.GetByID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListNovedades implements EmployeeHandler. Intervals are derived from
// the raw observations on every call, never stored.
func (h *employeeHandlerImpl) ListNovedades(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	if _, err := h.employeeService.GetByID(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	intervals, err := h.noveltyService.BlockingIntervals(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, novelty.MapToResponses(intervals))
}
