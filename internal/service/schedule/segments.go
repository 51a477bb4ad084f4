package schedule

import (
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

// All segment arithmetic is minute-resolution, minutes since midnight.
const (
	dayStartMinute   = 7 * 60 // 07:00
	lateStartMinute  = 8 * 60 // 08:00, reduced arrive-late entry
	breakfastMinute  = 9 * 60 // 09:00
	breakfastResume  = 9*60 + 15
	lunchMinute      = 12 * 60 // 12:00
	lunchResume      = 12*60 + 45
	holidayEndMinute = 13 * 60 // 13:00
	saturdayEnd      = 15 * 60 // 15:00
	weekdayEnd       = 18 * 60 // 18:00

	breakfastDuration = 15
	lunchDuration     = 45

	// maxDailyBankMinutes caps how far a single day can be extended or
	// reduced against the hours bank.
	maxDailyBankMinutes = 4 * 60

	weeklyLegalCapMinutes = 44 * 60
	weeklyExtraCapMinutes = 12 * 60
)

type Segment struct {
	From int
	To   int
}

func (s Segment) Duration() int {
	return s.To - s.From
}

type Break struct {
	StartMinute     int
	DurationMinutes int
}

// DaySegments is the nominal working shape of one day: ordered work
// segments around the built-in breakfast and lunch breaks, and the
// maximum payable capacity they add up to.
type DaySegments struct {
	CapacityMinutes int
	Segments        []Segment
	Breaks          []Break
}

// SegmentsFor returns the segment set for a weekday under the given
// holiday and reduction flags. Sundays have no capacity regardless of
// flags, and a worked holiday overrides any reduction.
func SegmentsFor(isoWeekday int, holidayWorked bool, reduction schedule.ReductionStyle) DaySegments {
	if isoWeekday == 7 {
		return DaySegments{}
	}

	if holidayWorked {
		return DaySegments{
			CapacityMinutes: 6 * 60,
			Segments:        []Segment{{dayStartMinute, holidayEndMinute}},
			Breaks:          []Break{{breakfastMinute, breakfastDuration}},
		}
	}

	end := weekdayEnd
	if isoWeekday == 6 {
		end = saturdayEnd
	}
	first := Segment{dayStartMinute, breakfastMinute}
	switch reduction {
	case schedule.ReductionLeaveEarly:
		end -= 60
	case schedule.ReductionArriveLate:
		first.From = lateStartMinute
	}

	segments := []Segment{
		first,
		{breakfastResume, lunchMinute},
		{lunchResume, end},
	}
	capacity := 0
	for _, s := range segments {
		capacity += s.Duration()
	}
	return DaySegments{
		CapacityMinutes: capacity,
		Segments:        segments,
		Breaks: []Break{
			{breakfastMinute, breakfastDuration},
			{lunchMinute, lunchDuration},
		},
	}
}

// legalCapMinutes is the payable base ceiling per weekday.
func legalCapMinutes(isoWeekday int) int {
	switch isoWeekday {
	case 7:
		return 0
	case 6:
		return 4 * 60
	default:
		return 8 * 60
	}
}

// regularCapMinutes is the regular total ceiling before the daily bank
// allowance applies.
func regularCapMinutes(isoWeekday int) int {
	switch isoWeekday {
	case 7:
		return 0
	case 6:
		return 7 * 60
	default:
		return 10 * 60
	}
}

// extraCapMinutes is the payable-extra ceiling per weekday.
func extraCapMinutes(isoWeekday int) int {
	switch isoWeekday {
	case 7:
		return 0
	case 6:
		return 3 * 60
	default:
		return 2 * 60
	}
}

var sixty = decimal.NewFromInt(60)

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.New(int64(minutes), 0).Div(sixty)
}

func hoursToMinutes(hours decimal.Decimal) int {
	return int(hours.Mul(sixty).Round(0).IntPart())
}
