package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

// generationInput is everything the week builder needs, already fetched
// into memory. The arithmetic below is synchronous and deterministic.
type generationInput struct {
	employeeID    string
	startDate     time.Time
	endDate       time.Time
	workingDays   map[int]bool
	holidays      map[string]string // "YYYY-MM-DD" -> holiday name
	decideHoliday schedule.HolidayDecider
	decideSunday  schedule.SundayDecider
	index         novelty.DateIndex
	pendingBank   int // minutes available for reduction
	creator       string
	now           time.Time
}

type generationResult struct {
	weeks        []schedule.Week
	consumedBank int // minutes drawn from the bank
}

// dayComputation pairs a built day with the legal capacity it had
// available, which the weekly extra-requires-full-legal check needs.
type dayComputation struct {
	day            schedule.DaySchedule
	availableLegal int
}

// buildWeeks walks the range in Monday-aligned chunks, building days in
// chronological order. Any conflict or cancelled decision discards the
// whole batch.
func buildWeeks(in generationInput) (generationResult, error) {
	if err := preflightConflicts(in); err != nil {
		return generationResult{}, err
	}

	pending := in.pendingBank
	consumed := 0
	var weeks []schedule.Week

	for ws := mondayOf(in.startDate); !ws.After(in.endDate); ws = ws.AddDate(0, 0, 7) {
		first := maxDate(ws, in.startDate)
		last := minDate(ws.AddDate(0, 0, 6), in.endDate)

		week := schedule.Week{
			ID:         uuid.NewString(),
			EmployeeID: in.employeeID,
			StartDate:  first,
			EndDate:    last,
			CreatedBy:  in.creator,
			CreatedAt:  in.now,
			UpdatedAt:  in.now,
		}

		var comps []dayComputation
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			comp, taken, err := buildDay(in, d, pending)
			if err != nil {
				return generationResult{}, err
			}
			pending -= taken
			consumed += taken
			comps = append(comps, comp)
		}

		if err := validateWeekCaps(first, comps); err != nil {
			return generationResult{}, err
		}

		total := decimal.Zero
		for i := range comps {
			comps[i].day.WeekID = week.ID
			week.Days = append(week.Days, comps[i].day)
			total = total.Add(comps[i].day.TotalHours)
		}
		week.TotalHours = total
		weeks = append(weeks, week)
	}

	return generationResult{weeks: weeks, consumedBank: consumed}, nil
}

// buildDay computes one date: eligibility, segments, study-window
// subtraction, allocation, base/extra split and bank reduction.
func buildDay(in generationInput, date time.Time, pending int) (dayComputation, int, error) {
	wd := schedule.ISOWeekday(date)
	day := schedule.DaySchedule{
		ID:           uuid.NewString(),
		Date:         date,
		Weekday:      wd,
		WeekdayLabel: schedule.WeekdayLabels[wd],
	}

	if wd == 7 {
		if in.decideSunday != nil {
			switch in.decideSunday(date, in.workingDays[7]) {
			case schedule.SundayDecideCompensated:
				day.SundayStatus = schedule.SundayCompensated
			case schedule.SundayDecideUncompensated:
				day.SundayStatus = schedule.SundayUncompensated
			case schedule.SundayDecideCancel:
				return dayComputation{}, 0, schedule.ErrCancelled
			}
		}
		return dayComputation{day: day}, 0, nil
	}

	if !in.workingDays[wd] {
		return dayComputation{day: day}, 0, nil
	}

	if name, isHoliday := in.holidays[date.Format("2006-01-02")]; isHoliday {
		if in.decideHoliday == nil {
			return dayComputation{}, 0, schedule.ErrCancelled
		}
		switch in.decideHoliday(date, name) {
		case schedule.HolidayWork:
			day.HolidayWorked = true
		case schedule.HolidaySkip:
			return dayComputation{day: day}, 0, nil
		default:
			return dayComputation{}, 0, schedule.ErrCancelled
		}
	}

	// Hard override: a fully blocking novedad zeroes the day no matter
	// what. Requested working days are caught earlier by preflight.
	if len(in.index.FullBlocksOn(date)) > 0 {
		return dayComputation{day: day}, 0, nil
	}

	nominal := SegmentsFor(wd, day.HolidayWorked, schedule.ReductionNone)
	segs := SubtractWindows(nominal.Segments, in.index.StudyWindowsOn(date))
	capacity := segmentCapacity(segs)

	target := capacity
	legalCap := legalCapMinutes(wd)
	base0 := minInt(target, legalCap)
	extra0 := target - base0

	taken := 0
	if pending > 0 && target > 0 {
		taken = minInt(minInt(pending, maxDailyBankMinutes), target)
	}
	final := target - taken

	alloc := Allocate(segs, final)
	base1 := minInt(final, legalCap)
	extra1 := final - base1

	day.TotalHours = minutesToHours(final)
	day.LegalHours = minutesToHours(base1)
	day.ExtraHours = minutesToHours(extra1)
	day.BankExtraConsumed = minutesToHours(extra0 - extra1)
	day.BankLegalConsumed = minutesToHours(base0 - base1)
	day.Blocks = alloc.Blocks
	day.EntryMinute = alloc.EntryMinute
	day.ExitMinute = alloc.ExitMinute

	availableLegal := minInt(legalCap, capacity) - (base0 - base1)
	return dayComputation{day: day, availableLegal: availableLegal}, taken, nil
}

// preflightConflicts rejects the whole request when a requested working
// day collides with a fully blocking novedad.
func preflightConflicts(in generationInput) error {
	byObservation := make(map[string]*schedule.Conflict)
	var order []string

	for d := in.startDate; !d.After(in.endDate); d = d.AddDate(0, 0, 1) {
		wd := schedule.ISOWeekday(d)
		if wd == 7 || !in.workingDays[wd] {
			continue
		}
		for _, interval := range in.index.FullBlocksOn(d) {
			c, ok := byObservation[interval.ObservationID]
			if !ok {
				c = &schedule.Conflict{
					Category: string(interval.Category),
					Start:    interval.Start,
					End:      interval.End,
				}
				byObservation[interval.ObservationID] = c
				order = append(order, interval.ObservationID)
			}
			c.Dates = append(c.Dates, d)
		}
	}

	if len(byObservation) == 0 {
		return nil
	}

	conflicts := make([]schedule.Conflict, 0, len(order))
	for _, id := range order {
		conflicts = append(conflicts, *byObservation[id])
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Start.Before(conflicts[j].Start) })
	return &schedule.ConflictError{Conflicts: conflicts}
}

// validateWeekCaps enforces the weekly ceilings: legal hours within the
// 44h cap, and no extra hours unless the legal sum reached the capacity
// actually achievable that week (blocked or bank-reduced days lower it).
func validateWeekCaps(weekStart time.Time, comps []dayComputation) error {
	legalSum, extraSum, achievable := 0, 0, 0
	for _, c := range comps {
		legalSum += hoursToMinutes(c.day.LegalHours)
		extraSum += hoursToMinutes(c.day.ExtraHours)
		if c.day.TotalHours.IsPositive() {
			achievable += c.availableLegal
		}
	}
	achievable = minInt(achievable, weeklyLegalCapMinutes)

	if legalSum > weeklyLegalCapMinutes {
		return &schedule.CapacityError{
			Rule:      "horas_legales_semana",
			Limit:     minutesToHours(weeklyLegalCapMinutes),
			Actual:    minutesToHours(legalSum),
			WeekStart: weekStart,
		}
	}
	if extraSum > 0 && legalSum < achievable {
		return &schedule.CapacityError{
			Rule:      "horas_extra_sin_legal_completo",
			Limit:     minutesToHours(achievable),
			Actual:    minutesToHours(legalSum),
			WeekStart: weekStart,
		}
	}
	return nil
}

// payableExtraMinutes caps the week's raw extra sum by the 12h weekly
// ceiling and the per-day extra capacity of its worked days. Hours
// beyond it are bank accrual material, not payable.
func payableExtraMinutes(days []schedule.DaySchedule) int {
	extraSum, perDayCap := 0, 0
	for _, d := range days {
		extraSum += hoursToMinutes(d.ExtraHours)
		if d.TotalHours.IsPositive() {
			perDayCap += extraCapMinutes(d.Weekday)
		}
	}
	capped := minInt(extraSum, weeklyExtraCapMinutes)
	return minInt(capped, perDayCap)
}

func mondayOf(date time.Time) time.Time {
	d := date
	for schedule.ISOWeekday(d) != 1 {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
