package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation, "YYYY-MM-DD"
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Clock time validation, 24-hour "HH:MM"
func IsValidClockTime(timeStr string) (time.Time, bool) {
	t, err := time.Parse("15:04", timeStr)
	return t, err == nil
}

// Cedula validation (Colombian ID): 6 to 10 digits.
func IsValidCedula(cedula string) bool {
	return len(cedula) >= 6 && len(cedula) <= 10 && IsNumeric(cedula)
}

// Hours validation: non-negative, half-hour granularity.
func IsValidHours(hours decimal.Decimal) bool {
	if hours.IsNegative() {
		return false
	}
	half := decimal.New(5, -1)
	return hours.Mod(half).IsZero()
}

// ISO weekday validation: 1 (Monday) through 7 (Sunday).
func IsValidISOWeekday(day int) bool {
	return day >= 1 && day <= 7
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
