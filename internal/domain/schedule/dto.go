package schedule

import (
	"strings"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	EmployeeID    string            `json:"-"`
	FechaInicio   string            `json:"fecha_inicio"`
	FechaFin      string            `json:"fecha_fin"`
	DiasLaborales []int             `json:"dias_laborales"`
	Festivos      map[string]string `json:"festivos,omitempty"`
	Domingos      map[string]string `json:"domingos,omitempty"`
	AplicarBanco  bool              `json:"aplicar_banco"`
	CreadoPor     CreatorRequest    `json:"creado_por"`

	// Interactive decision points, injected by the calling layer.
	// When nil, the service falls back to the Festivos/Domingos maps
	// and cancels on any date they do not answer.
	DecideHoliday HolidayDecider `json:"-"`
	DecideSunday  SundayDecider  `json:"-"`
}

type CreatorRequest struct {
	Cedula string `json:"cedula"`
	Nombre string `json:"nombre"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.FechaInicio)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_inicio",
			Message: "fecha_inicio is required, format YYYY-MM-DD",
		})
	}
	end, endOK := validator.IsValidDate(r.FechaFin)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_fin",
			Message: "fecha_fin is required, format YYYY-MM-DD",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_fin",
			Message: "fecha_fin must not be before fecha_inicio",
		})
	}

	if len(r.DiasLaborales) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "dias_laborales",
			Message: "at least one working weekday is required",
		})
	}
	for _, day := range r.DiasLaborales {
		if !validator.IsValidISOWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "dias_laborales",
				Message: "weekdays must be 1 (lunes) through 7 (domingo)",
			})
			break
		}
	}

	for date, decision := range r.Festivos {
		if _, ok := validator.IsValidDate(date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "festivos",
				Message: "keys must be dates in YYYY-MM-DD format",
			})
			break
		}
		if !validator.IsInSlice(decision, HolidayDecisionValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "festivos",
				Message: "decisions must be one of: " + strings.Join(HolidayDecisionValues, ", "),
			})
			break
		}
	}
	for date, decision := range r.Domingos {
		if _, ok := validator.IsValidDate(date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "domingos",
				Message: "keys must be dates in YYYY-MM-DD format",
			})
			break
		}
		if !validator.IsInSlice(decision, SundayStatusValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "domingos",
				Message: "decisions must be one of: " + strings.Join(SundayStatusValues, ", "),
			})
			break
		}
	}

	if validator.IsEmpty(r.CreadoPor.Cedula) && validator.IsEmpty(r.CreadoPor.Nombre) {
		errs = append(errs, validator.ValidationError{
			Field:   "creado_por",
			Message: "creator identity is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayOverrideRequest struct {
	Horas decimal.Decimal `json:"horas_nuevas"`
}

type EditWeekRequest struct {
	WeekID string `json:"-"`

	// Overrides are keyed by weekday label (lunes..sabado).
	Overrides     map[string]DayOverrideRequest `json:"horas_editadas,omitempty"`
	DiaReducido   *string                       `json:"dia_reducido,omitempty"`
	TipoReduccion *string                       `json:"tipo_reduccion,omitempty"`
	DomingoEstado *string                       `json:"domingo_estado,omitempty"`
}

func (r *EditWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	for label, override := range r.Overrides {
		if _, ok := WeekdayFromLabel(label); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "horas_editadas",
				Message: "unknown weekday label: " + label,
			})
			continue
		}
		if !validator.IsValidHours(override.Horas) {
			errs = append(errs, validator.ValidationError{
				Field:   "horas_editadas." + label,
				Message: "hours must be non-negative in half-hour steps",
			})
		}
	}

	if r.DiaReducido != nil {
		if _, ok := WeekdayFromLabel(*r.DiaReducido); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dia_reducido",
				Message: "unknown weekday label: " + *r.DiaReducido,
			})
		}
		if r.TipoReduccion == nil || !validator.IsInSlice(*r.TipoReduccion, ReductionStyleValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "tipo_reduccion",
				Message: "tipo_reduccion must be one of: " + strings.Join(ReductionStyleValues, ", "),
			})
		}
	}

	if r.DomingoEstado != nil && !validator.IsInSlice(*r.DomingoEstado, SundayStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "domingo_estado",
			Message: "domingo_estado must be one of: " + strings.Join(SundayStatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BlockResponse struct {
	HoraInicio    string          `json:"hora_inicio"`
	HoraFin       string          `json:"hora_fin"`
	DuracionHoras decimal.Decimal `json:"duracion_horas"`
}

type DayResponse struct {
	ID                 string           `json:"id"`
	Fecha              string           `json:"fecha"`
	Dia                string           `json:"dia"`
	Horas              decimal.Decimal  `json:"horas"`
	HorasLegales       decimal.Decimal  `json:"horas_legales"`
	HorasExtra         decimal.Decimal  `json:"horas_extra"`
	FestivoTrabajado   bool             `json:"festivo_trabajado"`
	HorarioReducido    bool             `json:"es_horario_reducido"`
	TipoReduccion      string           `json:"tipo_reduccion,omitempty"`
	DomingoEstado      string           `json:"domingo_estado,omitempty"`
	EditadoManualmente bool             `json:"editado_manualmente"`
	HorasOriginales    *decimal.Decimal `json:"horas_originales,omitempty"`
	ConsumoBancoLegal  decimal.Decimal  `json:"consumo_banco_legal"`
	ConsumoBancoExtra  decimal.Decimal  `json:"consumo_banco_extra"`
	Bloques            []BlockResponse  `json:"bloques"`
	HoraEntrada        *string          `json:"hora_entrada,omitempty"`
	HoraSalida         *string          `json:"hora_salida,omitempty"`
}

type WeekResponse struct {
	ID                 string          `json:"id"`
	EmpleadoID         string          `json:"empleado_id"`
	FechaInicio        string          `json:"fecha_inicio"`
	FechaFin           string          `json:"fecha_fin"`
	TotalHoras         decimal.Decimal `json:"total_horas"`
	HorasLegales       decimal.Decimal `json:"horas_legales"`
	HorasExtra         decimal.Decimal `json:"horas_extra"`
	HorasExtraPagables decimal.Decimal `json:"horas_extra_pagables"`
	Archivada          bool            `json:"archivada"`
	CreadoPor          string          `json:"creado_por"`
	Dias               []DayResponse   `json:"dias"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}
