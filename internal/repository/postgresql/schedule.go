package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/database"
)

type weekRepositoryImpl struct {
	db *database.DB
}

func NewWeekRepository(db *database.DB) schedule.WeekRepository {
	return &weekRepositoryImpl{db: db}
}

// blockRecord is the JSONB shape of one worked block, minutes since
// midnight.
type blockRecord struct {
	Inicio int `json:"inicio"`
	Fin    int `json:"fin"`
}

func encodeBlocks(blocks []schedule.Block) ([]byte, error) {
	records := make([]blockRecord, 0, len(blocks))
	for _, b := range blocks {
		records = append(records, blockRecord{Inicio: b.StartMinute, Fin: b.EndMinute})
	}
	return json.Marshal(records)
}

func decodeBlocks(data []byte) ([]schedule.Block, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var records []blockRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	var blocks []schedule.Block
	for _, r := range records {
		blocks = append(blocks, schedule.Block{StartMinute: r.Inicio, EndMinute: r.Fin})
	}
	return blocks, nil
}

// InsertWeeks implements schedule.WeekRepository.
func (w *weekRepositoryImpl) InsertWeeks(ctx context.Context, weeks []schedule.Week) error {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO horarios_semanales (
			id, empleado_id, fecha_inicio, fecha_fin, total_horas,
			creado_por, archivada, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, week := range weeks {
		_, err := q.Exec(ctx, query,
			week.ID, week.EmployeeID, week.StartDate, week.EndDate, week.TotalHours,
			week.CreatedBy, week.Archived, week.CreatedAt, week.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert week %s: %w", week.ID, err)
		}
		if err := w.insertDays(ctx, week); err != nil {
			return err
		}
	}
	return nil
}

// GetByID implements schedule.WeekRepository.
func (w *weekRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Week, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, empleado_id, fecha_inicio, fecha_fin, total_horas,
			creado_por, archivada, created_at, updated_at
		FROM horarios_semanales
		WHERE id = $1
	`

	var week schedule.Week
	err := q.QueryRow(ctx, query, id).Scan(
		&week.ID, &week.EmployeeID, &week.StartDate, &week.EndDate, &week.TotalHours,
		&week.CreatedBy, &week.Archived, &week.CreatedAt, &week.UpdatedAt,
	)
	if err != nil {
		return schedule.Week{}, err
	}

	week.Days, err = w.listDays(ctx, week.ID)
	if err != nil {
		return schedule.Week{}, err
	}
	return week, nil
}

// ListByEmployee implements schedule.WeekRepository.
func (w *weekRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, includeArchived bool) ([]schedule.Week, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, empleado_id, fecha_inicio, fecha_fin, total_horas,
			creado_por, archivada, created_at, updated_at
		FROM horarios_semanales
		WHERE empleado_id = $1 AND (archivada = FALSE OR $2)
		ORDER BY fecha_inicio
	`

	rows, err := q.Query(ctx, query, employeeID, includeArchived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []schedule.Week
	for rows.Next() {
		var week schedule.Week
		err := rows.Scan(
			&week.ID, &week.EmployeeID, &week.StartDate, &week.EndDate, &week.TotalHours,
			&week.CreatedBy, &week.Archived, &week.CreatedAt, &week.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range weeks {
		weeks[i].Days, err = w.listDays(ctx, weeks[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return weeks, nil
}

func (w *weekRepositoryImpl) listDays(ctx context.Context, weekID string) ([]schedule.DaySchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, semana_id, fecha, dia_semana, dia_etiqueta,
			horas, horas_legales, horas_extra,
			festivo_trabajado, es_reducido, tipo_reduccion, domingo_estado,
			editado_manualmente, horas_originales,
			consumo_banco_legal, consumo_banco_extra,
			bloques, hora_entrada, hora_salida
		FROM horarios_diarios
		WHERE semana_id = $1
		ORDER BY fecha
	`

	rows, err := q.Query(ctx, query, weekID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []schedule.DaySchedule
	for rows.Next() {
		var day schedule.DaySchedule
		var reduction, sundayStatus string
		var blocks []byte
		err := rows.Scan(
			&day.ID, &day.WeekID, &day.Date, &day.Weekday, &day.WeekdayLabel,
			&day.TotalHours, &day.LegalHours, &day.ExtraHours,
			&day.HolidayWorked, &day.Reduced, &reduction, &sundayStatus,
			&day.ManualOverride, &day.OriginalHours,
			&day.BankLegalConsumed, &day.BankExtraConsumed,
			&blocks, &day.EntryMinute, &day.ExitMinute,
		)
		if err != nil {
			return nil, err
		}
		day.ReductionStyle = schedule.ReductionStyle(reduction)
		day.SundayStatus = schedule.SundayStatus(sundayStatus)
		day.Blocks, err = decodeBlocks(blocks)
		if err != nil {
			return nil, fmt.Errorf("failed to decode blocks for day %s: %w", day.ID, err)
		}
		days = append(days, day)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

// ArchiveByEmployee implements schedule.WeekRepository.
func (w *weekRepositoryImpl) ArchiveByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE horarios_semanales
		SET archivada = TRUE, updated_at = NOW()
		WHERE empleado_id = $1 AND archivada = FALSE
	`
	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to archive weeks for employee %s: %w", employeeID, err)
	}
	return nil
}

// Update implements schedule.WeekRepository. The day rows are replaced
// wholesale; an edit always re-derives the full week.
func (w *weekRepositoryImpl) Update(ctx context.Context, week schedule.Week) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE horarios_semanales
		SET total_horas = $1, archivada = $2, updated_at = $3
		WHERE id = $4
	`
	tag, err := q.Exec(ctx, query, week.TotalHours, week.Archived, week.UpdatedAt, week.ID)
	if err != nil {
		return fmt.Errorf("failed to update week %s: %w", week.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrWeekNotFound
	}

	if _, err := q.Exec(ctx, `DELETE FROM horarios_diarios WHERE semana_id = $1`, week.ID); err != nil {
		return fmt.Errorf("failed to clear days for week %s: %w", week.ID, err)
	}

	return w.insertDays(ctx, week)
}

func (w *weekRepositoryImpl) insertDays(ctx context.Context, week schedule.Week) error {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO horarios_diarios (
			id, semana_id, fecha, dia_semana, dia_etiqueta,
			horas, horas_legales, horas_extra,
			festivo_trabajado, es_reducido, tipo_reduccion, domingo_estado,
			editado_manualmente, horas_originales,
			consumo_banco_legal, consumo_banco_extra,
			bloques, hora_entrada, hora_salida
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	for _, day := range week.Days {
		blocks, err := encodeBlocks(day.Blocks)
		if err != nil {
			return fmt.Errorf("failed to encode blocks for day %s: %w", day.ID, err)
		}
		_, err = q.Exec(ctx, query,
			day.ID, week.ID, day.Date, day.Weekday, day.WeekdayLabel,
			day.TotalHours, day.LegalHours, day.ExtraHours,
			day.HolidayWorked, day.Reduced, string(day.ReductionStyle), string(day.SundayStatus),
			day.ManualOverride, day.OriginalHours,
			day.BankLegalConsumed, day.BankExtraConsumed,
			blocks, day.EntryMinute, day.ExitMinute,
		)
		if err != nil {
			return fmt.Errorf("failed to insert day %s: %w", day.ID, err)
		}
	}
	return nil
}

// Delete implements schedule.WeekRepository. Day rows go through the
// ON DELETE CASCADE constraint on semana_id.
func (w *weekRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, w.db)

	tag, err := q.Exec(ctx, `DELETE FROM horarios_semanales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete week %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrWeekNotFound
	}
	return nil
}
