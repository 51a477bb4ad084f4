package http

import (
	"net/http"
	"time"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/holiday"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/handler/http/response"
)

type HolidayHandler interface {
	ListHolidays(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayRepo    holiday.HolidayRepository
	defaultCountry string
}

func NewHolidayHandler(holidayRepo holiday.HolidayRepository, defaultCountry string) HolidayHandler {
	return &holidayHandlerImpl{
		holidayRepo:    holidayRepo,
		defaultCountry: defaultCountry,
	}
}

// ListHolidays implements HolidayHandler. Defaults to the current
// calendar year when no range is given.
func (h *holidayHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("pais")
	if country == "" {
		country = h.defaultCountry
	}

	now := time.Now()
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	if v := r.URL.Query().Get("desde"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "desde must be a date in YYYY-MM-DD format", nil)
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("hasta"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "hasta must be a date in YYYY-MM-DD format", nil)
			return
		}
		to = parsed
	}

	holidays, err := h.holidayRepo.ListByRange(r.Context(), country, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, holiday.MapToResponses(holidays))
}
