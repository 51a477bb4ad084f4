package schedule

import (
	"testing"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdaySegments() []Segment {
	return SegmentsFor(1, false, schedule.ReductionNone).Segments
}

func blockMinutes(blocks []schedule.Block) int {
	total := 0
	for _, b := range blocks {
		total += b.DurationMinutes()
	}
	return total
}

func TestAllocate_FullDay(t *testing.T) {
	t.Parallel()

	alloc := Allocate(weekdaySegments(), 600)

	require.Len(t, alloc.Blocks, 3)
	assert.Equal(t, 600, blockMinutes(alloc.Blocks))
	assert.Equal(t, 7*60, *alloc.EntryMinute)
	assert.Equal(t, 18*60, *alloc.ExitMinute)
}

func TestAllocate_PartialStopsMidSegment(t *testing.T) {
	t.Parallel()

	// 8h fills the two morning segments (285m) and part of the
	// afternoon one.
	alloc := Allocate(weekdaySegments(), 480)

	require.Len(t, alloc.Blocks, 3)
	assert.Equal(t, 480, blockMinutes(alloc.Blocks))
	last := alloc.Blocks[2]
	assert.Equal(t, 12*60+45, last.StartMinute)
	assert.Equal(t, 12*60+45+195, last.EndMinute)
}

func TestAllocate_OverflowExtendsLastBlock(t *testing.T) {
	t.Parallel()

	// 11h exceeds the 10h weekday capacity; the extra hour lands at
	// the end of the final block instead of being dropped.
	alloc := Allocate(weekdaySegments(), 660)

	assert.Equal(t, 660, blockMinutes(alloc.Blocks))
	assert.Equal(t, 19*60, *alloc.ExitMinute)
}

func TestAllocate_NonPositive(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Allocate(weekdaySegments(), 0).Blocks)
	assert.Empty(t, Allocate(weekdaySegments(), -30).Blocks)
	assert.Nil(t, Allocate(weekdaySegments(), 0).EntryMinute)
}

func TestAllocate_ConservesMinutesAcrossRequests(t *testing.T) {
	t.Parallel()

	for minutes := 30; minutes <= 600; minutes += 30 {
		alloc := Allocate(weekdaySegments(), minutes)
		assert.Equal(t, minutes, blockMinutes(alloc.Blocks), "minutes=%d", minutes)
		for i := 1; i < len(alloc.Blocks); i++ {
			assert.GreaterOrEqual(t, alloc.Blocks[i].StartMinute, alloc.Blocks[i-1].EndMinute)
		}
	}
}

func TestSubtractWindows_SplitsSegment(t *testing.T) {
	t.Parallel()

	// A 14:00-16:00 study window splits the afternoon segment.
	windows := []novelty.TimeWindow{{StartMinute: 14 * 60, EndMinute: 16 * 60}}
	segs := SubtractWindows(weekdaySegments(), windows)

	require.Len(t, segs, 4)
	assert.Equal(t, Segment{12*60 + 45, 14 * 60}, segs[2])
	assert.Equal(t, Segment{16 * 60, 18 * 60}, segs[3])
	assert.Equal(t, 600-120, segmentCapacity(segs))
}

func TestSubtractWindows_CoversWholeSegment(t *testing.T) {
	t.Parallel()

	windows := []novelty.TimeWindow{{StartMinute: 7 * 60, EndMinute: 9 * 60}}
	segs := SubtractWindows(weekdaySegments(), windows)

	require.Len(t, segs, 2)
	assert.Equal(t, 9*60+15, segs[0].From)
}

func TestSubtractWindows_IgnoresBreakOverlap(t *testing.T) {
	t.Parallel()

	// A window inside the lunch break removes nothing.
	windows := []novelty.TimeWindow{{StartMinute: 12 * 60, EndMinute: 12*60 + 45}}
	segs := SubtractWindows(weekdaySegments(), windows)

	assert.Equal(t, 600, segmentCapacity(segs))
}

func TestSubtractWindows_MultipleUnsorted(t *testing.T) {
	t.Parallel()

	windows := []novelty.TimeWindow{
		{StartMinute: 16 * 60, EndMinute: 17 * 60},
		{StartMinute: 8 * 60, EndMinute: 8*60 + 30},
	}
	segs := SubtractWindows(weekdaySegments(), windows)

	assert.Equal(t, 600-90, segmentCapacity(segs))
}
