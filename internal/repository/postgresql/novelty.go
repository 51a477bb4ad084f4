package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/database"
)

type observationRepositoryImpl struct {
	db *database.DB
}

func NewObservationRepository(db *database.DB) novelty.ObservationRepository {
	return &observationRepositoryImpl{db: db}
}

// ListByEmployee implements novelty.ObservationRepository. The detalle
// column is JSONB; which of its fields matter depends on categoria.
func (o *observationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]novelty.Observation, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, empleado_id, categoria, observacion, detalle, created_at
		FROM novedades
		WHERE empleado_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var observations []novelty.Observation
	for rows.Next() {
		var obs novelty.Observation
		var detail []byte
		err := rows.Scan(&obs.ID, &obs.EmployeeID, &obs.Category, &obs.Note, &detail, &obs.CreatedAt)
		if err != nil {
			return nil, err
		}
		if len(detail) > 0 {
			if err := json.Unmarshal(detail, &obs.Detail); err != nil {
				return nil, fmt.Errorf("failed to decode detalle for observation %s: %w", obs.ID, err)
			}
		}
		observations = append(observations, obs)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return observations, nil
}
