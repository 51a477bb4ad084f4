package novelty

import "context"

type ObservationRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]Observation, error)
}
