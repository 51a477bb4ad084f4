package novelty

import "time"

const dateKeyLayout = "2006-01-02"

// DateIndex maps a calendar date ("YYYY-MM-DD") to the intervals that
// restrict it.
type DateIndex map[string][]BlockingInterval

// BuildDateIndex expands every interval into the dates it covers.
// Estudio intervals carrying explicit windows are indexed only on the
// dates those windows name; every other interval marks the whole
// [Start, End] span.
func BuildDateIndex(intervals []BlockingInterval) DateIndex {
	index := make(DateIndex)
	for _, interval := range intervals {
		if interval.Category == CategoryEstudio && len(interval.Windows) > 0 {
			for _, window := range interval.Windows {
				key := window.Date.Format(dateKeyLayout)
				index[key] = append(index[key], interval)
			}
			continue
		}
		for d := interval.Start; !d.After(interval.End); d = d.AddDate(0, 0, 1) {
			key := d.Format(dateKeyLayout)
			index[key] = append(index[key], interval)
		}
	}
	return index
}

// FullBlocksOn returns the non-Estudio intervals covering the date.
func (idx DateIndex) FullBlocksOn(date time.Time) []BlockingInterval {
	var blocks []BlockingInterval
	for _, interval := range idx[date.Format(dateKeyLayout)] {
		if interval.FullBlock() {
			blocks = append(blocks, interval)
		}
	}
	return blocks
}

// StudyWindowsOn returns the study time windows attached to the date.
func (idx DateIndex) StudyWindowsOn(date time.Time) []TimeWindow {
	var windows []TimeWindow
	key := date.Format(dateKeyLayout)
	for _, interval := range idx[key] {
		if interval.Category != CategoryEstudio {
			continue
		}
		for _, window := range interval.Windows {
			if window.Date.Format(dateKeyLayout) == key {
				windows = append(windows, window)
			}
		}
	}
	return windows
}
