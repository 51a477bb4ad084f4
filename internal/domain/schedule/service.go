package schedule

import "context"

type Service interface {
	// Generate builds and persists week schedules over a date range,
	// archiving the employee's previous weeks. Conflicting full-block
	// novedades abort before anything is written.
	Generate(ctx context.Context, req GenerateRequest) ([]WeekResponse, error)

	GetWeek(ctx context.Context, id string) (WeekResponse, error)
	ListWeeks(ctx context.Context, employeeID string, includeArchived bool) ([]WeekResponse, error)

	// EditWeek re-derives a week after manual per-day overrides,
	// enforcing the same weekly caps and blocking constraints as
	// generation. All-or-nothing: a violation leaves the week intact.
	EditWeek(ctx context.Context, req EditWeekRequest) (WeekResponse, error)

	DeleteWeek(ctx context.Context, id string) error
}
