package schedule

import (
	"sort"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/novelty"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/schedule"
)

// Allocation is the concrete result of filling a day's segments.
type Allocation struct {
	Blocks      []schedule.Block
	UsedMinutes int
	EntryMinute *int
	ExitMinute  *int
}

// Allocate walks the segments in order, filling them greedily until the
// requested minutes are placed. When the request exceeds the combined
// segment capacity the final block absorbs the overflow: requested
// minutes are never dropped, so banked or extended days keep their full
// length. A non-positive request yields no blocks.
func Allocate(segments []Segment, minutesNeeded int) Allocation {
	if minutesNeeded <= 0 || len(segments) == 0 {
		return Allocation{}
	}

	var blocks []schedule.Block
	remaining := minutesNeeded
	cursor := segments[0].From
	for _, seg := range segments {
		if remaining == 0 {
			break
		}
		if cursor < seg.From {
			cursor = seg.From
		}
		if cursor >= seg.To {
			continue
		}
		take := seg.To - cursor
		if take > remaining {
			take = remaining
		}
		blocks = append(blocks, schedule.Block{StartMinute: cursor, EndMinute: cursor + take})
		cursor += take
		remaining -= take
	}

	if len(blocks) == 0 {
		return Allocation{}
	}
	if remaining > 0 {
		blocks[len(blocks)-1].EndMinute += remaining
	}

	entry := blocks[0].StartMinute
	exit := blocks[len(blocks)-1].EndMinute
	return Allocation{
		Blocks:      blocks,
		UsedMinutes: minutesNeeded,
		EntryMinute: &entry,
		ExitMinute:  &exit,
	}
}

// SubtractWindows removes study time windows from the day's segments,
// splitting segments where a window lands in the middle.
func SubtractWindows(segments []Segment, windows []novelty.TimeWindow) []Segment {
	if len(windows) == 0 {
		return segments
	}

	sorted := make([]novelty.TimeWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartMinute < sorted[j].StartMinute })

	result := segments
	for _, w := range sorted {
		var next []Segment
		for _, seg := range result {
			if w.EndMinute <= seg.From || w.StartMinute >= seg.To {
				next = append(next, seg)
				continue
			}
			if w.StartMinute > seg.From {
				next = append(next, Segment{seg.From, w.StartMinute})
			}
			if w.EndMinute < seg.To {
				next = append(next, Segment{w.EndMinute, seg.To})
			}
		}
		result = next
	}
	return result
}

func segmentCapacity(segments []Segment) int {
	total := 0
	for _, s := range segments {
		total += s.Duration()
	}
	return total
}
