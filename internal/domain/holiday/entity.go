package holiday

import "time"

// Holiday is one legally recognized non-working date for a country.
type Holiday struct {
	Date        time.Time
	Name        string
	CountryCode string
}
