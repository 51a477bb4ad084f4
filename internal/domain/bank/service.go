package bank

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Service interface {
	// RecomputeExcess derives the overtime excess of a finalized week
	// beyond the 56h combined ceiling. Returns nil when there is none.
	// An existing pending entry for the same employee+week is
	// incremented instead of duplicated.
	RecomputeExcess(ctx context.Context, week WeekTotals) (*Entry, error)

	// ApplyToWeeks consumes pending hours entry by entry. A failing
	// entry aborts the remainder of the batch; already-applied entries
	// are NOT rolled back (documented partial-completion semantics).
	ApplyToWeeks(ctx context.Context, req ApplyRequest) ([]EntryResponse, error)

	// Annul forces pending hours to zero. Irreversible.
	Annul(ctx context.Context, entryID string) (EntryResponse, error)

	// Consume draws hours from the employee's pending entries, oldest
	// first, recording the target week on each touched entry. Used by
	// generation when the caller opts to apply banked hours.
	Consume(ctx context.Context, employeeID string, hours decimal.Decimal, weekStart, weekEnd time.Time) error

	PendingBalance(ctx context.Context, employeeID string) (decimal.Decimal, error)
	ListByEmployee(ctx context.Context, employeeID string) (LedgerResponse, error)
}
