package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Monday 2026-01-05 through Sunday 2026-01-11.
var (
	testMonday = date(2026, time.January, 5)
	testSunday = date(2026, time.January, 11)
)

func fullWeekInput() generationInput {
	return generationInput{
		employeeID:  "emp-1",
		startDate:   testMonday,
		endDate:     testSunday,
		workingDays: map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true},
		holidays:    map[string]string{},
		decideHoliday: func(time.Time, string) schedule.HolidayDecision {
			return schedule.HolidayWork
		},
		decideSunday: func(time.Time, bool) schedule.SundayDecision {
			return schedule.SundayDecideCompensated
		},
		index:   novelty.DateIndex{},
		creator: "Ana Torres",
		now:     time.Now(),
	}
}

func dayByWeekday(t *testing.T, week schedule.Week, wd int) schedule.DaySchedule {
	t.Helper()
	for _, d := range week.Days {
		if d.Weekday == wd {
			return d
		}
	}
	t.Fatalf("weekday %d not found in week", wd)
	return schedule.DaySchedule{}
}

func TestBuildWeeks_FullWeekTotals(t *testing.T) {
	t.Parallel()

	result, err := buildWeeks(fullWeekInput())
	require.NoError(t, err)
	require.Len(t, result.weeks, 1)

	week := result.weeks[0]
	require.Len(t, week.Days, 7)
	assert.True(t, decimal.NewFromInt(57).Equal(week.TotalHours), "total: %s", week.TotalHours)
	assert.True(t, decimal.NewFromInt(44).Equal(week.LegalHoursSum()))
	assert.True(t, decimal.NewFromInt(13).Equal(week.ExtraHoursSum()))
	assert.Equal(t, 12*60, payableExtraMinutes(week.Days))

	monday := dayByWeekday(t, week, 1)
	assert.True(t, decimal.NewFromInt(10).Equal(monday.TotalHours))
	assert.True(t, decimal.NewFromInt(8).Equal(monday.LegalHours))
	assert.True(t, decimal.NewFromInt(2).Equal(monday.ExtraHours))
	assert.Equal(t, "lunes", monday.WeekdayLabel)
	require.NotNil(t, monday.EntryMinute)
	assert.Equal(t, 7*60, *monday.EntryMinute)
	assert.Equal(t, 18*60, *monday.ExitMinute)

	saturday := dayByWeekday(t, week, 6)
	assert.True(t, decimal.NewFromInt(7).Equal(saturday.TotalHours))
	assert.True(t, decimal.NewFromInt(4).Equal(saturday.LegalHours))
	assert.True(t, decimal.NewFromInt(3).Equal(saturday.ExtraHours))

	sunday := dayByWeekday(t, week, 7)
	assert.True(t, sunday.TotalHours.IsZero())
	assert.Empty(t, sunday.Blocks)
	assert.Equal(t, schedule.SundayCompensated, sunday.SundayStatus)
}

func TestBuildWeeks_MondayAlignedPartialWeeks(t *testing.T) {
	t.Parallel()

	in := fullWeekInput()
	in.startDate = date(2026, time.January, 7) // Wednesday
	in.endDate = date(2026, time.January, 13)  // next Tuesday

	result, err := buildWeeks(in)
	require.NoError(t, err)
	require.Len(t, result.weeks, 2)

	first := result.weeks[0]
	assert.Equal(t, date(2026, time.January, 7), first.StartDate)
	assert.Equal(t, testSunday, first.EndDate)
	assert.Len(t, first.Days, 5)

	second := result.weeks[1]
	assert.Equal(t, date(2026, time.January, 12), second.StartDate)
	assert.Equal(t, date(2026, time.January, 13), second.EndDate)
	assert.Len(t, second.Days, 2)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestBuildWeeks_ConflictAbortsEverything(t *testing.T) {
	t.Parallel()

	in := fullWeekInput()
	in.index = novelty.BuildDateIndex([]novelty.BlockingInterval{{
		ObservationID: "obs-1",
		Category:      novelty.CategoryVacaciones,
		Start:         date(2026, time.January, 6),
		End:           date(2026, time.January, 7),
	}})

	_, err := buildWeeks(in)

	var conflictErr *schedule.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "Vacaciones", conflictErr.Conflicts[0].Category)
	assert.Equal(t, []time.Time{
		date(2026, time.January, 6),
		date(2026, time.January, 7),
	}, conflictErr.Conflicts[0].Dates)
}

func TestBuildWeeks_FullBlockOutsideWorkingDaysIsNotAConflict(t *testing.T) {
	t.Parallel()

	in := fullWeekInput()
	in.workingDays = map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	in.index = novelty.BuildDateIndex([]novelty.BlockingInterval{{
		ObservationID: "obs-1",
		Category:      novelty.CategoryPermisos,
		Start:         date(2026, time.January, 10), // Saturday
		End:           date(2026, time.January, 10),
	}})

	result, err := buildWeeks(in)
	require.NoError(t, err)
	assert.True(t, dayByWeekday(t, result.weeks[0], 6).TotalHours.IsZero())
}

func TestBuildWeeks_WorkedHoliday(t *testing.T) {
	t.Parallel()

	in := fullWeekInput()
	in.holidays = map[string]string{"2026-01-07": "Dia festivo"}

	result, err := buildWeeks(in)
	require.NoError(t, err)

	wednesday := dayByWeekday(t, result.weeks[0], 3)
	assert.True(t, wednesday.HolidayWorked)
	assert.True(t, decimal.NewFromInt(6).Equal(wednesday.TotalHours))
	assert.True(t, decimal.NewFromInt(6).Equal(wednesday.LegalHours))
	assert.True(t, wednesday.ExtraHours.IsZero())
	require.Len(t, wednesday.Blocks, 1)
	assert.Equal(t, schedule.Block{StartMinute: 7 * 60, EndMinute: 13 * 60}, wednesday.Blocks[0])
}

func TestBuildWeeks_SkippedHoliday(t *testing.T) {
	t.Parallel()

	in := fullWeekInput()
	in.holidays = map[string]string{"2026-01-07": "Dia festivo"}
	in.decideHoliday = func(time.Time, string) schedule.HolidayDecision {
		return schedule.HolidaySkip
	}

	result, err := buildWeeks(in)
	require.NoError(t, err)

	wednesday := dayByWeekday(t, result.weeks[0], 3)
	assert.False(t, wednesday.HolidayWorked)
	assert.True(t, wednesday.TotalHours.IsZero())
}

func TestBuildWeeks_HolidayCancelAborts(t *testing.T) {
	t.Parallel()

	in := fullWeekInput()
	in.holidays = map[string]string{"2026-01-07": "Dia festivo"}
	in.decideHoliday = func(time.Time, string) schedule.HolidayDecision {
		return schedule.HolidayCancel
	}

	_, err := buildWeeks(in)
	assert.True(t, errors.Is(err, schedule.ErrCancelled))
}

func TestBuildWeeks_SundayCancelAborts(t *testing.T) {
	t.Parallel()

	in := fullWeekInput()
	in.decideSunday = func(time.Time, bool) schedule.SundayDecision {
		return schedule.SundayDecideCancel
	}

	_, err := buildWeeks(in)
	assert.True(t, errors.Is(err, schedule.ErrCancelled))
}

func TestBuildWeeks_StudyWindowShortensDay(t *testing.T) {
	t.Parallel()

	in := fullWeekInput()
	in.index = novelty.BuildDateIndex([]novelty.BlockingInterval{{
		ObservationID: "obs-est",
		Category:      novelty.CategoryEstudio,
		Start:         testMonday,
		End:           testMonday,
		Windows: []novelty.TimeWindow{{
			Date:        testMonday,
			StartMinute: 16 * 60,
			EndMinute:   18 * 60,
		}},
	}})

	result, err := buildWeeks(in)
	require.NoError(t, err)

	monday := dayByWeekday(t, result.weeks[0], 1)
	assert.True(t, decimal.NewFromInt(8).Equal(monday.TotalHours))
	assert.True(t, decimal.NewFromInt(8).Equal(monday.LegalHours))
	assert.True(t, monday.ExtraHours.IsZero())
	assert.Equal(t, 16*60, *monday.ExitMinute)
}

func TestBuildWeeks_BankReducesEarliestDays(t *testing.T) {
	t.Parallel()

	in := fullWeekInput()
	in.pendingBank = 180 // 3h available

	result, err := buildWeeks(in)
	require.NoError(t, err)
	assert.Equal(t, 180, result.consumedBank)

	monday := dayByWeekday(t, result.weeks[0], 1)
	assert.True(t, decimal.NewFromInt(7).Equal(monday.TotalHours))
	assert.True(t, decimal.NewFromInt(7).Equal(monday.LegalHours))
	assert.True(t, monday.ExtraHours.IsZero())
	assert.True(t, decimal.NewFromInt(2).Equal(monday.BankExtraConsumed))
	assert.True(t, decimal.NewFromInt(1).Equal(monday.BankLegalConsumed))

	// The rest of the week is untouched once the balance runs out.
	tuesday := dayByWeekday(t, result.weeks[0], 2)
	assert.True(t, decimal.NewFromInt(10).Equal(tuesday.TotalHours))
	assert.True(t, tuesday.BankExtraConsumed.IsZero())
}

func TestBuildWeeks_BankConsumptionCappedPerDay(t *testing.T) {
	t.Parallel()

	in := fullWeekInput()
	in.pendingBank = 6 * 60

	result, err := buildWeeks(in)
	require.NoError(t, err)

	// 4h cap on Monday, remaining 2h on Tuesday.
	monday := dayByWeekday(t, result.weeks[0], 1)
	assert.True(t, decimal.NewFromInt(6).Equal(monday.TotalHours))
	tuesday := dayByWeekday(t, result.weeks[0], 2)
	assert.True(t, decimal.NewFromInt(8).Equal(tuesday.TotalHours))
	assert.Equal(t, 6*60, result.consumedBank)
}

func TestValidateWeekCaps_LegalOverCap(t *testing.T) {
	t.Parallel()

	comps := make([]dayComputation, 0, 6)
	for wd := 1; wd <= 6; wd++ {
		comps = append(comps, dayComputation{
			day: schedule.DaySchedule{
				Weekday:    wd,
				TotalHours: decimal.NewFromInt(8),
				LegalHours: decimal.NewFromInt(8),
			},
			availableLegal: 480,
		})
	}

	err := validateWeekCaps(testMonday, comps)

	var capErr *schedule.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "horas_legales_semana", capErr.Rule)
	assert.True(t, decimal.NewFromInt(48).Equal(capErr.Actual))
}

func TestValidateWeekCaps_ExtraRequiresFullLegal(t *testing.T) {
	t.Parallel()

	comps := []dayComputation{
		{
			day: schedule.DaySchedule{
				Weekday:    1,
				TotalHours: decimal.NewFromInt(8),
				LegalHours: decimal.NewFromInt(6),
				ExtraHours: decimal.NewFromInt(2),
			},
			availableLegal: 480,
		},
	}

	err := validateWeekCaps(testMonday, comps)

	var capErr *schedule.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "horas_extra_sin_legal_completo", capErr.Rule)
}

func TestPayableExtraMinutes_CappedByWeekAndDays(t *testing.T) {
	t.Parallel()

	result, err := buildWeeks(fullWeekInput())
	require.NoError(t, err)

	// Raw extra is 13h; the weekly ceiling pays out 12h at most.
	week := result.weeks[0]
	assert.True(t, decimal.NewFromInt(13).Equal(week.ExtraHoursSum()))
	assert.Equal(t, 12*60, payableExtraMinutes(week.Days))

	// A lighter week pays its raw extra untouched.
	in := fullWeekInput()
	in.workingDays = map[int]bool{1: true, 2: true}
	result, err = buildWeeks(in)
	require.NoError(t, err)
	assert.Equal(t, 4*60, payableExtraMinutes(result.weeks[0].Days))
}
