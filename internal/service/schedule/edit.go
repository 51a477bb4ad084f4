package schedule

import (
	"time"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

// editInput is a manual edit already resolved from the wire DTO:
// overrides keyed by ISO weekday, reduction and Sunday flags parsed.
type editInput struct {
	week         schedule.Week
	overrides    map[int]decimal.Decimal
	reducedDay   int // 0 means no reduced day
	reducedStyle schedule.ReductionStyle
	sundayStatus *schedule.SundayStatus // nil leaves the status untouched
	index        novelty.DateIndex
	now          time.Time
}

// recomputeWeek re-derives every day of the week under the requested
// overrides and flags, then re-validates the weekly ceilings. The input
// week is not mutated; a corrected copy is returned.
func recomputeWeek(in editInput) (schedule.Week, error) {
	week := in.week
	week.Days = make([]schedule.DaySchedule, len(in.week.Days))
	copy(week.Days, in.week.Days)

	var comps []dayComputation
	total := decimal.Zero

	for i := range week.Days {
		day := week.Days[i]
		comp, err := recomputeDay(in, day)
		if err != nil {
			return schedule.Week{}, err
		}
		week.Days[i] = comp.day
		comps = append(comps, comp)
		total = total.Add(comp.day.TotalHours)
	}

	if err := validateWeekCaps(week.StartDate, comps); err != nil {
		return schedule.Week{}, err
	}

	week.TotalHours = total
	week.UpdatedAt = in.now
	return week, nil
}

func recomputeDay(in editInput, day schedule.DaySchedule) (dayComputation, error) {
	wd := day.Weekday
	override, hasOverride := in.overrides[wd]

	if wd == 7 {
		if hasOverride && override.IsPositive() {
			return dayComputation{}, &schedule.BlockedDayError{Date: day.Date, Category: "domingo"}
		}
		zeroDay(&day)
		if in.sundayStatus != nil {
			day.SundayStatus = *in.sundayStatus
		}
		return dayComputation{day: day}, nil
	}

	// Fully blocking novedades win over any override: the day stays at
	// zero, and asking for positive hours on it is an error.
	if blocks := in.index.FullBlocksOn(day.Date); len(blocks) > 0 {
		if hasOverride && override.IsPositive() {
			return dayComputation{}, &schedule.BlockedDayError{Date: day.Date, Category: string(blocks[0].Category)}
		}
		zeroDay(&day)
		return dayComputation{day: day}, nil
	}

	reduced := in.reducedDay == wd
	style := schedule.ReductionNone
	if reduced {
		style = in.reducedStyle
	}
	day.Reduced = reduced
	day.ReductionStyle = style

	nominal := SegmentsFor(wd, day.HolidayWorked, style)
	segs := SubtractWindows(nominal.Segments, in.index.StudyWindowsOn(day.Date))
	capacity := segmentCapacity(segs)

	legalCap := legalCapMinutes(wd)
	consumed := hoursToMinutes(day.BankLegalConsumed) + hoursToMinutes(day.BankExtraConsumed)

	var target int
	if hasOverride {
		// Operator-entered hours are taken verbatim, clamped to the
		// regular cap plus the daily bank allowance, then lowered by
		// whatever study windows already carve out of the day.
		target = hoursToMinutes(override)
		limit := regularCapMinutes(wd) + maxDailyBankMinutes
		if target > limit {
			target = limit
		}
		overlap := segmentCapacity(nominal.Segments) - capacity
		target -= overlap
		if target < 0 {
			target = 0
		}
		if day.OriginalHours == nil && !override.Equal(day.TotalHours) {
			prev := day.TotalHours
			day.OriginalHours = &prev
		}
		day.ManualOverride = true
		day.BankLegalConsumed = decimal.Zero
		day.BankExtraConsumed = decimal.Zero
	} else {
		// Non-overridden days revert to their nominal derivation, minus
		// any bank consumption recorded at generation time.
		if day.TotalHours.IsZero() && !day.HolidayWorked && consumed == 0 {
			// A day that carried no hours stays empty; edits never
			// resurrect skipped holidays or non-working days.
			zeroDay(&day)
			return dayComputation{day: day}, nil
		}
		target = capacity - consumed
		if target < 0 {
			target = 0
		}
		day.ManualOverride = false
		day.OriginalHours = nil
	}

	alloc := Allocate(segs, target)
	base := minInt(target, legalCap)
	extra := target - base

	day.TotalHours = minutesToHours(target)
	day.LegalHours = minutesToHours(base)
	day.ExtraHours = minutesToHours(extra)
	day.Blocks = alloc.Blocks
	day.EntryMinute = alloc.EntryMinute
	day.ExitMinute = alloc.ExitMinute

	consumedLegal := hoursToMinutes(day.BankLegalConsumed)
	availableLegal := minInt(legalCap, capacity) - consumedLegal
	return dayComputation{day: day, availableLegal: availableLegal}, nil
}

func zeroDay(day *schedule.DaySchedule) {
	day.TotalHours = decimal.Zero
	day.LegalHours = decimal.Zero
	day.ExtraHours = decimal.Zero
	day.Blocks = nil
	day.EntryMinute = nil
	day.ExitMinute = nil
	day.ManualOverride = false
	day.OriginalHours = nil
	day.BankLegalConsumed = decimal.Zero
	day.BankExtraConsumed = decimal.Zero
}
