package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrWeekNotFound = errors.New("week schedule not found")

	// ErrCancelled signals that an interactive decision callback
	// returned cancel. The whole call is discarded; it is not a fault.
	ErrCancelled = errors.New("generation cancelled by caller")

	ErrInvalidRequestData = errors.New("invalid request data")
)

// Conflict names one blocking novedad that collides with requested
// working days.
type Conflict struct {
	Category string
	Start    time.Time
	End      time.Time
	Dates    []time.Time
}

// ConflictError reports working days that collide with full blocking
// intervals. It carries the offending categories and dates so callers
// can show exactly what prevented scheduling.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s (%s a %s)",
			c.Category,
			c.Start.Format("2006-01-02"),
			c.End.Format("2006-01-02")))
	}
	return "scheduling conflict with: " + strings.Join(parts, ", ")
}

// CapacityError reports a weekly legal or extra ceiling exceeded after
// applying all overrides. The whole edit or generation aborts.
type CapacityError struct {
	Rule      string
	Limit     decimal.Decimal
	Actual    decimal.Decimal
	WeekStart time.Time
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("weekly capacity exceeded (%s): limit %s, got %s for week of %s",
		e.Rule, e.Limit.String(), e.Actual.String(), e.WeekStart.Format("2006-01-02"))
}

// BlockedDayError reports a manual edit assigning hours to a date fully
// covered by a blocking novedad.
type BlockedDayError struct {
	Date     time.Time
	Category string
}

func (e *BlockedDayError) Error() string {
	return fmt.Sprintf("day %s is blocked by %s", e.Date.Format("2006-01-02"), e.Category)
}
