package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScheduleService returns canned results so the handler layer can
// be exercised without a database.
type stubScheduleService struct {
	generateResult []schedule.WeekResponse
	generateErr    error
	getResult      schedule.WeekResponse
	getErr         error
}

func (s *stubScheduleService) Generate(_ context.Context, _ schedule.GenerateRequest) ([]schedule.WeekResponse, error) {
	return s.generateResult, s.generateErr
}

func (s *stubScheduleService) GetWeek(_ context.Context, _ string) (schedule.WeekResponse, error) {
	return s.getResult, s.getErr
}

func (s *stubScheduleService) ListWeeks(_ context.Context, _ string, _ bool) ([]schedule.WeekResponse, error) {
	return s.generateResult, s.generateErr
}

func (s *stubScheduleService) EditWeek(_ context.Context, _ schedule.EditWeekRequest) (schedule.WeekResponse, error) {
	return s.getResult, s.getErr
}

func (s *stubScheduleService) DeleteWeek(_ context.Context, _ string) error {
	return s.getErr
}

func scheduleTestRouter(svc schedule.Service) *chi.Mux {
	handler := NewScheduleHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/v1/employees/{employeeID}/horarios/generar", handler.GenerateSchedules)
	r.Get("/api/v1/horarios/{weekID}", handler.GetSchedule)
	return r
}

func TestGenerateSchedules_Success(t *testing.T) {
	t.Parallel()

	svc := &stubScheduleService{
		generateResult: []schedule.WeekResponse{{ID: "week-1", EmpleadoID: "emp-1"}},
	}
	router := scheduleTestRouter(svc)

	body, _ := json.Marshal(map[string]any{
		"fecha_inicio":   "2026-01-05",
		"fecha_fin":      "2026-01-11",
		"dias_laborales": []int{1, 2, 3, 4, 5, 6},
		"creado_por":     map[string]string{"cedula": "1000000", "nombre": "Ana"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/emp-1/horarios/generar", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Data    []schedule.WeekResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "week-1", resp.Data[0].ID)
}

func TestGenerateSchedules_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &stubScheduleService{
		generateErr: validator.ValidationErrors{{
			Field:   "fecha_inicio",
			Message: "fecha_inicio is required, format YYYY-MM-DD",
		}},
	}
	router := scheduleTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/emp-1/horarios/generar", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "fecha_inicio")
}

func TestGenerateSchedules_Conflict(t *testing.T) {
	t.Parallel()

	start, _ := time.Parse("2006-01-02", "2026-01-06")
	svc := &stubScheduleService{
		generateErr: &schedule.ConflictError{Conflicts: []schedule.Conflict{{
			Category: "Vacaciones",
			Start:    start,
			End:      start.AddDate(0, 0, 1),
			Dates:    []time.Time{start},
		}}},
	}
	router := scheduleTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/emp-1/horarios/generar", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SCHEDULE_CONFLICT", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "Vacaciones")
}

func TestGenerateSchedules_Cancelled(t *testing.T) {
	t.Parallel()

	svc := &stubScheduleService{generateErr: schedule.ErrCancelled}
	router := scheduleTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/emp-1/horarios/generar", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetSchedule_NotFound(t *testing.T) {
	t.Parallel()

	svc := &stubScheduleService{getErr: schedule.ErrWeekNotFound}
	router := scheduleTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/horarios/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateSchedules_InvalidBody(t *testing.T) {
	t.Parallel()

	router := scheduleTestRouter(&stubScheduleService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/emp-1/horarios/generar", bytes.NewReader([]byte(`{not json`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateSchedules_CapacityExceeded(t *testing.T) {
	t.Parallel()

	weekStart, _ := time.Parse("2006-01-02", "2026-01-05")
	svc := &stubScheduleService{
		generateErr: &schedule.CapacityError{
			Rule:      "horas_legales_semana",
			WeekStart: weekStart,
		},
	}
	router := scheduleTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/emp-1/horarios/generar", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
