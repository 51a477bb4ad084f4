package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/bank"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/employee"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Structured scheduling errors carry their own payload.
	var conflictErr *schedule.ConflictError
	if errors.As(err, &conflictErr) {
		ConflictWithDetails(w, "SCHEDULE_CONFLICT",
			"Requested days collide with registered novedades",
			conflictDetails(conflictErr))
		return
	}
	var capacityErr *schedule.CapacityError
	if errors.As(err, &capacityErr) {
		UnprocessableEntity(w, "CAPACITY_EXCEEDED", capacityErr.Error(), map[string]string{
			"regla":  capacityErr.Rule,
			"limite": capacityErr.Limit.String(),
			"valor":  capacityErr.Actual.String(),
			"semana": capacityErr.WeekStart.Format("2006-01-02"),
		})
		return
	}
	var blockedErr *schedule.BlockedDayError
	if errors.As(err, &blockedErr) {
		UnprocessableEntity(w, "DAY_BLOCKED", blockedErr.Error(), map[string]string{
			"fecha":     blockedErr.Date.Format("2006-01-02"),
			"categoria": blockedErr.Category,
		})
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		UnprocessableEntity(w, "EMPLOYEE_INACTIVE", "Employee is not active", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWeekNotFound):
		NotFound(w, "Week schedule not found")
	case errors.Is(err, schedule.ErrCancelled):
		Conflict(w, "Generation cancelled: pending holiday or Sunday decisions")
	case errors.Is(err, schedule.ErrInvalidRequestData):
		BadRequest(w, err.Error(), nil)

	// Novelty domain errors
	case errors.Is(err, novelty.ErrObservationNotFound):
		NotFound(w, "Observation not found")
	case errors.Is(err, novelty.ErrUnknownCategory):
		UnprocessableEntity(w, "UNKNOWN_CATEGORY", err.Error(), nil)

	// Bank domain errors
	case errors.Is(err, bank.ErrEntryNotFound):
		NotFound(w, "Bank entry not found")
	case errors.Is(err, bank.ErrEntryAnnulled):
		Conflict(w, "Bank entry is annulled")
	case errors.Is(err, bank.ErrInsufficientPending):
		UnprocessableEntity(w, "INSUFFICIENT_PENDING_HOURS", err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

func conflictDetails(err *schedule.ConflictError) map[string]string {
	details := make(map[string]string, len(err.Conflicts))
	for _, c := range err.Conflicts {
		dates := make([]string, 0, len(c.Dates))
		for _, d := range c.Dates {
			dates = append(dates, d.Format("2006-01-02"))
		}
		details[c.Category] = c.Start.Format("2006-01-02") + " a " +
			c.End.Format("2006-01-02") + ": " + strings.Join(dates, ", ")
	}
	return details
}
