package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/bank"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/employee"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/holiday"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/database"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type ScheduleServiceImpl struct {
	db           *database.DB
	weekRepo     schedule.WeekRepository
	employeeRepo employee.EmployeeRepository
	holidayRepo  holiday.HolidayRepository
	novelties    novelty.Service
	bank         bank.Service
	countryCode  string
}

func NewScheduleService(
	db *database.DB,
	weekRepo schedule.WeekRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	novelties novelty.Service,
	bankService bank.Service,
	countryCode string,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		db:           db,
		weekRepo:     weekRepo,
		employeeRepo: employeeRepo,
		holidayRepo:  holidayRepo,
		novelties:    novelties,
		bank:         bankService,
		countryCode:  countryCode,
	}
}

// Generate implements schedule.Service.
func (s *ScheduleServiceImpl) Generate(ctx context.Context, req schedule.GenerateRequest) ([]schedule.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", req.FechaInicio)
	end, _ := time.Parse("2006-01-02", req.FechaFin)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive() {
		return nil, employee.ErrEmployeeInactive
	}

	holidays, err := s.holidayMap(ctx, start, end)
	if err != nil {
		return nil, err
	}

	intervals, err := s.novelties.BlockingIntervals(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load novedades: %w", err)
	}

	workingDays := make(map[int]bool, len(req.DiasLaborales))
	for _, wd := range req.DiasLaborales {
		workingDays[wd] = true
	}

	pending := 0
	if req.AplicarBanco {
		balance, err := s.bank.PendingBalance(ctx, emp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get bank balance: %w", err)
		}
		pending = hoursToMinutes(balance)
	}

	creator := schedule.CreatorIdentity{Cedula: req.CreadoPor.Cedula, Name: req.CreadoPor.Nombre}
	result, err := buildWeeks(generationInput{
		employeeID:    emp.ID,
		startDate:     start,
		endDate:       end,
		workingDays:   workingDays,
		holidays:      holidays,
		decideHoliday: holidayDecider(req),
		decideSunday:  sundayDecider(req),
		index:         novelty.BuildDateIndex(intervals),
		pendingBank:   pending,
		creator:       creator.String(),
		now:           time.Now(),
	})
	if err != nil {
		return nil, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.weekRepo.ArchiveByEmployee(txCtx, emp.ID); err != nil {
			return fmt.Errorf("failed to archive previous weeks: %w", err)
		}
		if err := s.weekRepo.InsertWeeks(txCtx, result.weeks); err != nil {
			return fmt.Errorf("failed to insert weeks: %w", err)
		}

		if result.consumedBank > 0 {
			first := result.weeks[0]
			last := result.weeks[len(result.weeks)-1]
			err := s.bank.Consume(txCtx, emp.ID, minutesToHours(result.consumedBank), first.StartDate, last.EndDate)
			if err != nil {
				return fmt.Errorf("failed to consume bank hours: %w", err)
			}
		}

		for _, week := range result.weeks {
			_, err := s.bank.RecomputeExcess(txCtx, bank.WeekTotals{
				EmployeeID: week.EmployeeID,
				WeekStart:  week.StartDate,
				WeekEnd:    week.EndDate,
				TotalHours: week.TotalHours,
			})
			if err != nil {
				return fmt.Errorf("failed to record week excess: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.WeekResponse, 0, len(result.weeks))
	for _, week := range result.weeks {
		responses = append(responses, mapWeekToResponse(week))
	}
	return responses, nil
}

// GetWeek implements schedule.Service.
func (s *ScheduleServiceImpl) GetWeek(ctx context.Context, id string) (schedule.WeekResponse, error) {
	week, err := s.weekRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WeekResponse{}, schedule.ErrWeekNotFound
		}
		return schedule.WeekResponse{}, fmt.Errorf("failed to get week: %w", err)
	}
	return mapWeekToResponse(week), nil
}

// ListWeeks implements schedule.Service.
func (s *ScheduleServiceImpl) ListWeeks(ctx context.Context, employeeID string, includeArchived bool) ([]schedule.WeekResponse, error) {
	weeks, err := s.weekRepo.ListByEmployee(ctx, employeeID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}
	responses := make([]schedule.WeekResponse, 0, len(weeks))
	for _, week := range weeks {
		responses = append(responses, mapWeekToResponse(week))
	}
	return responses, nil
}

// EditWeek implements schedule.Service.
func (s *ScheduleServiceImpl) EditWeek(ctx context.Context, req schedule.EditWeekRequest) (schedule.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeekResponse{}, err
	}

	week, err := s.weekRepo.GetByID(ctx, req.WeekID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WeekResponse{}, schedule.ErrWeekNotFound
		}
		return schedule.WeekResponse{}, fmt.Errorf("failed to get week: %w", err)
	}

	input, err := resolveEdit(week, req)
	if err != nil {
		return schedule.WeekResponse{}, err
	}

	intervals, err := s.novelties.BlockingIntervals(ctx, week.EmployeeID)
	if err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("failed to load novedades: %w", err)
	}
	input.index = novelty.BuildDateIndex(intervals)
	input.now = time.Now()

	updated, err := recomputeWeek(input)
	if err != nil {
		return schedule.WeekResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.weekRepo.Update(txCtx, updated); err != nil {
			return fmt.Errorf("failed to update week: %w", err)
		}
		_, err := s.bank.RecomputeExcess(txCtx, bank.WeekTotals{
			EmployeeID: updated.EmployeeID,
			WeekStart:  updated.StartDate,
			WeekEnd:    updated.EndDate,
			TotalHours: updated.TotalHours,
		})
		if err != nil {
			return fmt.Errorf("failed to record week excess: %w", err)
		}
		return nil
	})
	if err != nil {
		return schedule.WeekResponse{}, err
	}

	return mapWeekToResponse(updated), nil
}

// DeleteWeek implements schedule.Service.
func (s *ScheduleServiceImpl) DeleteWeek(ctx context.Context, id string) error {
	if _, err := s.weekRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrWeekNotFound
		}
		return fmt.Errorf("failed to get week: %w", err)
	}
	if err := s.weekRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete week: %w", err)
	}
	return nil
}

func (s *ScheduleServiceImpl) holidayMap(ctx context.Context, from, to time.Time) (map[string]string, error) {
	list, err := s.holidayRepo.ListByRange(ctx, s.countryCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidays := make(map[string]string, len(list))
	for _, h := range list {
		holidays[h.Date.Format("2006-01-02")] = h.Name
	}
	return holidays, nil
}

// holidayDecider prefers the injected callback. With only the festivos
// map available, an unanswered holiday date cancels the whole call.
func holidayDecider(req schedule.GenerateRequest) schedule.HolidayDecider {
	if req.DecideHoliday != nil {
		return req.DecideHoliday
	}
	return func(date time.Time, _ string) schedule.HolidayDecision {
		if decision, ok := req.Festivos[date.Format("2006-01-02")]; ok {
			return schedule.HolidayDecision(decision)
		}
		return schedule.HolidayCancel
	}
}

// sundayDecider falls back to the domingos map; dates it does not
// answer simply get no compensation status recorded.
func sundayDecider(req schedule.GenerateRequest) schedule.SundayDecider {
	if req.DecideSunday != nil {
		return req.DecideSunday
	}
	return func(date time.Time, _ bool) schedule.SundayDecision {
		if decision, ok := req.Domingos[date.Format("2006-01-02")]; ok {
			return schedule.SundayDecision(decision)
		}
		return schedule.SundayDecision("")
	}
}

// resolveEdit turns a validated wire request into an editInput, keyed
// by ISO weekday and checked against the days the week actually has.
func resolveEdit(week schedule.Week, req schedule.EditWeekRequest) (editInput, error) {
	in := editInput{week: week, overrides: make(map[int]decimal.Decimal, len(req.Overrides))}

	present := make(map[int]bool, len(week.Days))
	for _, d := range week.Days {
		present[d.Weekday] = true
	}

	for label, override := range req.Overrides {
		wd, _ := schedule.WeekdayFromLabel(label)
		if !present[wd] {
			return editInput{}, fmt.Errorf("%w: day %s is not part of the week", schedule.ErrInvalidRequestData, label)
		}
		in.overrides[wd] = override.Horas
	}

	if req.DiaReducido != nil {
		wd, _ := schedule.WeekdayFromLabel(*req.DiaReducido)
		if !present[wd] {
			return editInput{}, fmt.Errorf("%w: day %s is not part of the week", schedule.ErrInvalidRequestData, *req.DiaReducido)
		}
		in.reducedDay = wd
		if req.TipoReduccion != nil {
			in.reducedStyle = schedule.ReductionStyle(*req.TipoReduccion)
		}
	}

	if req.DomingoEstado != nil {
		status := schedule.SundayStatus(*req.DomingoEstado)
		in.sundayStatus = &status
	}

	return in, nil
}

func mapWeekToResponse(week schedule.Week) schedule.WeekResponse {
	days := make([]schedule.DayResponse, 0, len(week.Days))
	for _, d := range week.Days {
		days = append(days, mapDayToResponse(d))
	}
	return schedule.WeekResponse{
		ID:                 week.ID,
		EmpleadoID:         week.EmployeeID,
		FechaInicio:        week.StartDate.Format("2006-01-02"),
		FechaFin:           week.EndDate.Format("2006-01-02"),
		TotalHoras:         week.TotalHours,
		HorasLegales:       week.LegalHoursSum(),
		HorasExtra:         week.ExtraHoursSum(),
		HorasExtraPagables: minutesToHours(payableExtraMinutes(week.Days)),
		Archivada:          week.Archived,
		CreadoPor:          week.CreatedBy,
		Dias:               days,
		CreatedAt:          week.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          week.UpdatedAt.Format(time.RFC3339),
	}
}

func mapDayToResponse(d schedule.DaySchedule) schedule.DayResponse {
	blocks := make([]schedule.BlockResponse, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		blocks = append(blocks, schedule.BlockResponse{
			HoraInicio:    schedule.FormatMinute(b.StartMinute),
			HoraFin:       schedule.FormatMinute(b.EndMinute),
			DuracionHoras: minutesToHours(b.DurationMinutes()),
		})
	}

	resp := schedule.DayResponse{
		ID:                 d.ID,
		Fecha:              d.Date.Format("2006-01-02"),
		Dia:                d.WeekdayLabel,
		Horas:              d.TotalHours,
		HorasLegales:       d.LegalHours,
		HorasExtra:         d.ExtraHours,
		FestivoTrabajado:   d.HolidayWorked,
		HorarioReducido:    d.Reduced,
		TipoReduccion:      string(d.ReductionStyle),
		DomingoEstado:      string(d.SundayStatus),
		EditadoManualmente: d.ManualOverride,
		HorasOriginales:    d.OriginalHours,
		ConsumoBancoLegal:  d.BankLegalConsumed,
		ConsumoBancoExtra:  d.BankExtraConsumed,
		Bloques:            blocks,
	}
	if d.EntryMinute != nil {
		entry := schedule.FormatMinute(*d.EntryMinute)
		resp.HoraEntrada = &entry
	}
	if d.ExitMinute != nil {
		exit := schedule.FormatMinute(*d.ExitMinute)
		resp.HoraSalida = &exit
	}
	return resp
}
