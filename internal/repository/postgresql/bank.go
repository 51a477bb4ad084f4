package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/bank"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type entryRepositoryImpl struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) bank.EntryRepository {
	return &entryRepositoryImpl{db: db}
}

const entryColumns = `
	id, empleado_id, semana_inicio, semana_fin,
	horas_exceso, horas_pendientes, estado, aplicaciones,
	created_at, updated_at
`

func scanEntry(row interface{ Scan(...any) error }) (bank.Entry, error) {
	var entry bank.Entry
	var status string
	var applications []byte
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.WeekStart, &entry.WeekEnd,
		&entry.ExcessHours, &entry.PendingHours, &status, &applications,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return bank.Entry{}, err
	}
	entry.Status = bank.Status(status)
	if len(applications) > 0 {
		if err := json.Unmarshal(applications, &entry.Applications); err != nil {
			return bank.Entry{}, fmt.Errorf("failed to decode aplicaciones for entry %s: %w", entry.ID, err)
		}
	}
	return entry, nil
}

// Create implements bank.EntryRepository.
func (e *entryRepositoryImpl) Create(ctx context.Context, entry bank.Entry) (bank.Entry, error) {
	q := GetQuerier(ctx, e.db)

	applications, err := json.Marshal(entry.Applications)
	if err != nil {
		return bank.Entry{}, fmt.Errorf("failed to encode aplicaciones: %w", err)
	}

	query := `
		INSERT INTO banco_horas (
			id, empleado_id, semana_inicio, semana_fin,
			horas_exceso, horas_pendientes, estado, aplicaciones,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = q.Exec(ctx, query,
		entry.ID, entry.EmployeeID, entry.WeekStart, entry.WeekEnd,
		entry.ExcessHours, entry.PendingHours, string(entry.Status), applications,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return bank.Entry{}, fmt.Errorf("failed to insert bank entry: %w", err)
	}
	return entry, nil
}

// GetByID implements bank.EntryRepository.
func (e *entryRepositoryImpl) GetByID(ctx context.Context, id string) (bank.Entry, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + entryColumns + ` FROM banco_horas WHERE id = $1`
	return scanEntry(q.QueryRow(ctx, query, id))
}

// GetByEmployeeWeek implements bank.EntryRepository.
func (e *entryRepositoryImpl) GetByEmployeeWeek(ctx context.Context, employeeID string, weekStart time.Time) (bank.Entry, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + entryColumns + ` FROM banco_horas WHERE empleado_id = $1 AND semana_inicio = $2`
	return scanEntry(q.QueryRow(ctx, query, employeeID, weekStart))
}

// ListByEmployee implements bank.EntryRepository.
func (e *entryRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]bank.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM banco_horas WHERE empleado_id = $1 ORDER BY semana_inicio`
	return e.list(ctx, query, employeeID)
}

// ListPendingByEmployee implements bank.EntryRepository. Oldest week
// first; the consumption order depends on it.
func (e *entryRepositoryImpl) ListPendingByEmployee(ctx context.Context, employeeID string) ([]bank.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM banco_horas
		WHERE empleado_id = $1 AND estado IN ($2, $3)
		ORDER BY semana_inicio
	`
	return e.list(ctx, query, employeeID, string(bank.StatusPending), string(bank.StatusPartial))
}

func (e *entryRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]bank.Entry, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []bank.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Update implements bank.EntryRepository.
func (e *entryRepositoryImpl) Update(ctx context.Context, entry bank.Entry) error {
	q := GetQuerier(ctx, e.db)

	applications, err := json.Marshal(entry.Applications)
	if err != nil {
		return fmt.Errorf("failed to encode aplicaciones: %w", err)
	}

	query := `
		UPDATE banco_horas
		SET horas_exceso = $1, horas_pendientes = $2, estado = $3,
			aplicaciones = $4, updated_at = $5
		WHERE id = $6
	`
	tag, err := q.Exec(ctx, query,
		entry.ExcessHours, entry.PendingHours, string(entry.Status),
		applications, entry.UpdatedAt, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bank entry %s: %w", entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return bank.ErrEntryNotFound
	}
	return nil
}

// PendingTotal implements bank.EntryRepository.
func (e *entryRepositoryImpl) PendingTotal(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT COALESCE(SUM(horas_pendientes), 0)
		FROM banco_horas
		WHERE empleado_id = $1 AND estado IN ($2, $3)
	`
	var total decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID, string(bank.StatusPending), string(bank.StatusPartial)).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
