package bank

import (
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ApplicationRequest struct {
	EntradaID    string          `json:"entrada_id"`
	Horas        decimal.Decimal `json:"horas_consumidas"`
	SemanaInicio string          `json:"semana_inicio"`
	SemanaFin    string          `json:"semana_fin"`
}

type ApplyRequest struct {
	EmployeeID   string               `json:"-"`
	Aplicaciones []ApplicationRequest `json:"aplicaciones"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Aplicaciones) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "aplicaciones",
			Message: "at least one application is required",
		})
	}
	for i, app := range r.Aplicaciones {
		if validator.IsEmpty(app.EntradaID) {
			errs = append(errs, validator.ValidationError{
				Field:   "aplicaciones.entrada_id",
				Message: "entrada_id is required",
			})
		}
		if !app.Horas.IsPositive() || !validator.IsValidHours(app.Horas) {
			errs = append(errs, validator.ValidationError{
				Field:   "aplicaciones.horas_consumidas",
				Message: "hours must be positive in half-hour steps",
			})
		}
		start, startOK := validator.IsValidDate(app.SemanaInicio)
		end, endOK := validator.IsValidDate(app.SemanaFin)
		if !startOK || !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "aplicaciones.semana_inicio",
				Message: "target week dates are required, format YYYY-MM-DD",
			})
		} else if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "aplicaciones.semana_fin",
				Message: "semana_fin must not be before semana_inicio",
			})
		}
		if len(errs) > 0 && i == 0 {
			// Report the first malformed application; the batch is
			// rejected as a whole anyway.
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplicationResponse struct {
	SemanaInicio string          `json:"semana_inicio"`
	SemanaFin    string          `json:"semana_fin"`
	Horas        decimal.Decimal `json:"horas"`
	AplicadoEn   string          `json:"aplicado_en"`
}

type EntryResponse struct {
	ID              string                `json:"id"`
	EmpleadoID      string                `json:"empleado_id"`
	SemanaInicio    string                `json:"semana_inicio"`
	SemanaFin       string                `json:"semana_fin"`
	HorasExceso     decimal.Decimal       `json:"horas_exceso"`
	HorasPendientes decimal.Decimal       `json:"horas_pendientes"`
	Estado          string                `json:"estado"`
	Aplicaciones    []ApplicationResponse `json:"aplicaciones,omitempty"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}

type LedgerResponse struct {
	EmpleadoID      string          `json:"empleado_id"`
	HorasPendientes decimal.Decimal `json:"horas_pendientes"`
	Entradas        []EntryResponse `json:"entradas"`
}
