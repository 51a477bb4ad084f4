package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	ListByRange(ctx context.Context, countryCode string, from, to time.Time) ([]Holiday, error)
}
