package postgresql

import (
	"context"
	"time"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/holiday"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// ListByRange implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) ListByRange(ctx context.Context, countryCode string, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT fecha, nombre, pais
		FROM festivos
		WHERE pais = $1 AND fecha BETWEEN $2 AND $3
		ORDER BY fecha
	`

	rows, err := q.Query(ctx, query, countryCode, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.Date, &h.Name, &h.CountryCode); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return holidays, nil
}
