package bank

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type EntryRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	GetByEmployeeWeek(ctx context.Context, employeeID string, weekStart time.Time) (Entry, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	ListPendingByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	Update(ctx context.Context, entry Entry) error
	PendingTotal(ctx context.Context, employeeID string) (decimal.Decimal, error)
}
