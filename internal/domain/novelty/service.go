package novelty

import "context"

type Service interface {
	// BlockingIntervals reads the employee's raw observations and
	// returns them normalized, sorted by start date.
	BlockingIntervals(ctx context.Context, employeeID string) ([]BlockingInterval, error)
}
