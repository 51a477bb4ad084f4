package schedule

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReductionStyle marks how a reduced day shortens its schedule by one
// hour: leaving early or arriving late.
type ReductionStyle string

const (
	ReductionNone       ReductionStyle = ""
	ReductionLeaveEarly ReductionStyle = "salir-temprano"
	ReductionArriveLate ReductionStyle = "llegar-tarde"
)

var ReductionStyleValues = []string{
	string(ReductionLeaveEarly),
	string(ReductionArriveLate),
}

// SundayStatus records the compensation decision for a Sunday inside a
// generated week. Sundays never carry worked hours through generation.
type SundayStatus string

const (
	SundayNone          SundayStatus = ""
	SundayCompensated   SundayStatus = "compensado"
	SundayUncompensated SundayStatus = "sin-compensar"
)

var SundayStatusValues = []string{
	string(SundayCompensated),
	string(SundayUncompensated),
}

// HolidayDecision is the caller's answer for a holiday falling on a
// requested working day.
type HolidayDecision string

const (
	HolidayWork   HolidayDecision = "work"
	HolidaySkip   HolidayDecision = "skip"
	HolidayCancel HolidayDecision = "cancel"
)

var HolidayDecisionValues = []string{
	string(HolidayWork),
	string(HolidaySkip),
}

// SundayDecision is the caller's answer for a Sunday inside the range.
type SundayDecision string

const (
	SundayDecideCompensated   SundayDecision = "compensado"
	SundayDecideUncompensated SundayDecision = "sin-compensar"
	SundayDecideCancel        SundayDecision = "cancel"
)

// HolidayDecider and SundayDecider are the interactive decision points
// of generation, injected by the calling layer. Returning a cancel
// decision aborts the whole call with nothing persisted.
type HolidayDecider func(date time.Time, holidayName string) HolidayDecision

type SundayDecider func(date time.Time, isWorkingDay bool) SundayDecision

// CreatorIdentity identifies who generated a schedule. It is passed
// explicitly into generation calls, never read from ambient state.
type CreatorIdentity struct {
	Cedula string
	Name   string
}

func (c CreatorIdentity) String() string {
	if c.Name == "" {
		return c.Cedula
	}
	return c.Name
}

// Block is one concrete worked time span, in minutes since midnight.
type Block struct {
	StartMinute int
	EndMinute   int
}

func (b Block) DurationMinutes() int {
	return b.EndMinute - b.StartMinute
}

// FormatMinute renders minutes since midnight as 24-hour "HH:MM".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// DaySchedule is one calendar date belonging to exactly one Week.
// Invariants: TotalHours = LegalHours + ExtraHours; LegalHours never
// exceeds the weekday's legal cap; TotalHours never exceeds the regular
// cap plus the 4h daily bank allowance.
type DaySchedule struct {
	ID     string
	WeekID string
	Date   time.Time

	Weekday      int // ISO: 1=Monday ... 7=Sunday
	WeekdayLabel string

	TotalHours decimal.Decimal
	LegalHours decimal.Decimal
	ExtraHours decimal.Decimal

	HolidayWorked  bool
	Reduced        bool
	ReductionStyle ReductionStyle
	SundayStatus   SundayStatus

	ManualOverride bool
	OriginalHours  *decimal.Decimal

	BankLegalConsumed decimal.Decimal
	BankExtraConsumed decimal.Decimal

	Blocks      []Block
	EntryMinute *int
	ExitMinute  *int
}

// Week is a Monday-first span of up to seven days for one employee.
type Week struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Days       []DaySchedule
	TotalHours decimal.Decimal
	CreatedBy  string
	Archived   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LegalHoursSum returns the week's accumulated legal (base) hours.
func (w Week) LegalHoursSum() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range w.Days {
		sum = sum.Add(d.LegalHours)
	}
	return sum
}

// ExtraHoursSum returns the week's accumulated extra hours, before the
// weekly payable ceiling is applied.
func (w Week) ExtraHoursSum() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range w.Days {
		sum = sum.Add(d.ExtraHours)
	}
	return sum
}

// WeekdayLabels maps ISO weekday numbers to the Spanish labels used by
// the existing callers.
var WeekdayLabels = map[int]string{
	1: "lunes",
	2: "martes",
	3: "miercoles",
	4: "jueves",
	5: "viernes",
	6: "sabado",
	7: "domingo",
}

// WeekdayFromLabel is the reverse lookup of WeekdayLabels.
func WeekdayFromLabel(label string) (int, bool) {
	for iso, l := range WeekdayLabels {
		if l == label {
			return iso, true
		}
	}
	return 0, false
}

// ISOWeekday returns the ISO weekday (Monday=1) for a date.
func ISOWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
