package jump

import "time"

// Improvement reports how much the latest per-day best differs from the
// baseline of a trailing window of the given number of months. The series must
// be a day-ascending per-day-max aggregation; the baseline is the earliest
// entry at or after the window boundary. Returns nil when the series has fewer
// than two days or the window holds no entries.
func Improvement(series []Entry, now time.Time, months int) *float64 {
	if len(series) < 2 {
		return nil
	}
	boundary := LocalDay(now.AddDate(0, -months, 0), 0)

	baselineIdx := -1
	for i, e := range series {
		if !e.Day.Before(boundary) {
			baselineIdx = i
			break
		}
	}
	if baselineIdx == -1 {
		return nil
	}

	diff := series[len(series)-1].Height - series[baselineIdx].Height
	return &diff
}
