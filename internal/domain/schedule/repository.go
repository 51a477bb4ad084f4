package schedule

import "context"

type WeekRepository interface {
	InsertWeeks(ctx context.Context, weeks []Week) error
	GetByID(ctx context.Context, id string) (Week, error)
	ListByEmployee(ctx context.Context, employeeID string, includeArchived bool) ([]Week, error)
	ArchiveByEmployee(ctx context.Context, employeeID string) error
	Update(ctx context.Context, week Week) error
	Delete(ctx context.Context, id string) error
}
