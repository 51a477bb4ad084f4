package bank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/bank"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/database"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type BankServiceImpl struct {
	db   *database.DB
	repo bank.EntryRepository
}

func NewBankService(db *database.DB, repo bank.EntryRepository) *BankServiceImpl {
	return &BankServiceImpl{db: db, repo: repo}
}

// RecomputeExcess implements bank.Service.
func (s *BankServiceImpl) RecomputeExcess(ctx context.Context, week bank.WeekTotals) (*bank.Entry, error) {
	excess := week.TotalHours.Sub(bank.CombinedWeeklyCeilingHours)
	if !excess.IsPositive() {
		return nil, nil
	}

	existing, err := s.repo.GetByEmployeeWeek(ctx, week.EmployeeID, week.WeekStart)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to get bank entry: %w", err)
		}
		entry := bank.Entry{
			ID:           uuid.NewString(),
			EmployeeID:   week.EmployeeID,
			WeekStart:    week.WeekStart,
			WeekEnd:      week.WeekEnd,
			ExcessHours:  excess,
			PendingHours: excess,
			Status:       bank.StatusPending,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		created, err := s.repo.Create(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("failed to create bank entry: %w", err)
		}
		return &created, nil
	}

	if existing.Status == bank.StatusAnnulled {
		return &existing, nil
	}

	// Regeneration of an already-banked week adjusts the excess and
	// the still-pending share by the same delta.
	delta := excess.Sub(existing.ExcessHours)
	if delta.IsZero() {
		return &existing, nil
	}
	existing.ExcessHours = excess
	existing.PendingHours = existing.PendingHours.Add(delta)
	if existing.PendingHours.IsNegative() {
		existing.PendingHours = decimal.Zero
	}
	existing.Status = statusFor(existing)
	existing.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update bank entry: %w", err)
	}
	return &existing, nil
}

// ApplyToWeeks implements bank.Service. Each application commits in its
// own transaction; a failure aborts the remainder of the batch without
// rolling back what already went through.
func (s *BankServiceImpl) ApplyToWeeks(ctx context.Context, req bank.ApplyRequest) ([]bank.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var responses []bank.EntryResponse
	for _, app := range req.Aplicaciones {
		weekStart, _ := time.Parse("2006-01-02", app.SemanaInicio)
		weekEnd, _ := time.Parse("2006-01-02", app.SemanaFin)

		var updated bank.Entry
		err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			entry, err := s.repo.GetByID(txCtx, app.EntradaID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return bank.ErrEntryNotFound
				}
				return fmt.Errorf("failed to get bank entry: %w", err)
			}
			if req.EmployeeID != "" && entry.EmployeeID != req.EmployeeID {
				return bank.ErrEntryNotFound
			}

			updated, err = applyHours(entry, app.Horas, weekStart, weekEnd, time.Now())
			if err != nil {
				return err
			}
			if err := s.repo.Update(txCtx, updated); err != nil {
				return fmt.Errorf("failed to update bank entry: %w", err)
			}
			return nil
		})
		if err != nil {
			if len(responses) > 0 {
				// Earlier applications stay committed.
				return responses, err
			}
			return nil, err
		}
		responses = append(responses, mapEntryToResponse(updated))
	}
	return responses, nil
}

// Annul implements bank.Service.
func (s *BankServiceImpl) Annul(ctx context.Context, entryID string) (bank.EntryResponse, error) {
	var annulled bank.Entry
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		entry, err := s.repo.GetByID(txCtx, entryID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return bank.ErrEntryNotFound
			}
			return fmt.Errorf("failed to get bank entry: %w", err)
		}
		if entry.Status == bank.StatusAnnulled {
			return bank.ErrEntryAnnulled
		}

		entry.PendingHours = decimal.Zero
		entry.Status = bank.StatusAnnulled
		entry.UpdatedAt = time.Now()
		if err := s.repo.Update(txCtx, entry); err != nil {
			return fmt.Errorf("failed to annul bank entry: %w", err)
		}
		annulled = entry
		return nil
	})
	if err != nil {
		return bank.EntryResponse{}, err
	}
	return mapEntryToResponse(annulled), nil
}

// Consume implements bank.Service, draining pending entries oldest
// first until the requested hours are covered.
func (s *BankServiceImpl) Consume(ctx context.Context, employeeID string, hours decimal.Decimal, weekStart, weekEnd time.Time) error {
	if !hours.IsPositive() {
		return nil
	}

	entries, err := s.repo.ListPendingByEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to list pending bank entries: %w", err)
	}

	remaining := hours
	now := time.Now()
	for _, entry := range entries {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(entry.PendingHours, remaining)
		if !take.IsPositive() {
			continue
		}
		updated, err := applyHours(entry, take, weekStart, weekEnd, now)
		if err != nil {
			return err
		}
		if err := s.repo.Update(ctx, updated); err != nil {
			return fmt.Errorf("failed to update bank entry: %w", err)
		}
		remaining = remaining.Sub(take)
	}

	if remaining.IsPositive() {
		return fmt.Errorf("%w: %s hours uncovered", bank.ErrInsufficientPending, remaining.String())
	}
	return nil
}

// PendingBalance implements bank.Service.
func (s *BankServiceImpl) PendingBalance(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	total, err := s.repo.PendingTotal(ctx, employeeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get pending bank total: %w", err)
	}
	return total, nil
}

// ListByEmployee implements bank.Service.
func (s *BankServiceImpl) ListByEmployee(ctx context.Context, employeeID string) (bank.LedgerResponse, error) {
	entries, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return bank.LedgerResponse{}, fmt.Errorf("failed to list bank entries: %w", err)
	}

	ledger := bank.LedgerResponse{
		EmpleadoID:      employeeID,
		HorasPendientes: decimal.Zero,
		Entradas:        make([]bank.EntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		ledger.Entradas = append(ledger.Entradas, mapEntryToResponse(entry))
		if entry.Status == bank.StatusPending || entry.Status == bank.StatusPartial {
			ledger.HorasPendientes = ledger.HorasPendientes.Add(entry.PendingHours)
		}
	}
	return ledger, nil
}

// applyHours consumes hours from one entry toward a target week.
// Consuming more than the pending balance floors it at zero.
func applyHours(entry bank.Entry, hours decimal.Decimal, weekStart, weekEnd time.Time, now time.Time) (bank.Entry, error) {
	if entry.Status == bank.StatusAnnulled {
		return bank.Entry{}, bank.ErrEntryAnnulled
	}

	entry.PendingHours = entry.PendingHours.Sub(hours)
	if entry.PendingHours.IsNegative() {
		entry.PendingHours = decimal.Zero
	}
	entry.Applications = append(entry.Applications, bank.Application{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Hours:     hours,
		AppliedAt: now,
	})
	entry.Status = statusFor(entry)
	entry.UpdatedAt = now
	return entry, nil
}

func statusFor(entry bank.Entry) bank.Status {
	switch {
	case entry.PendingHours.IsZero():
		return bank.StatusApplied
	case entry.PendingHours.LessThan(entry.ExcessHours):
		return bank.StatusPartial
	default:
		return bank.StatusPending
	}
}

func mapEntryToResponse(entry bank.Entry) bank.EntryResponse {
	resp := bank.EntryResponse{
		ID:              entry.ID,
		EmpleadoID:      entry.EmployeeID,
		SemanaInicio:    entry.WeekStart.Format("2006-01-02"),
		SemanaFin:       entry.WeekEnd.Format("2006-01-02"),
		HorasExceso:     entry.ExcessHours,
		HorasPendientes: entry.PendingHours,
		Estado:          string(entry.Status),
		CreatedAt:       entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       entry.UpdatedAt.Format(time.RFC3339),
	}
	for _, app := range entry.Applications {
		resp.Aplicaciones = append(resp.Aplicaciones, bank.ApplicationResponse{
			SemanaInicio: app.WeekStart.Format("2006-01-02"),
			SemanaFin:    app.WeekEnd.Format("2006-01-02"),
			Horas:        app.Hours,
			AplicadoEn:   app.AppliedAt.Format(time.RFC3339),
		})
	}
	return resp
}
