package times

import (
	"fmt"
	"sort"
	"time"
)

const (
	YearMonthDayLayout = "2006-01-02"
	DisplayDayLayout   = "2 Jan 2006"
)

const (
	DayDuration = 24 * time.Hour
)

// DayUTC truncates the timestamp to midnight UTC.
func DayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SortedUniqueDays normalizes timestamps to midnight UTC, removes duplicates
// and returns them in ascending order.
func SortedUniqueDays(days []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(days))

	result := make([]time.Time, 0, len(days))

	for _, d := range days {
		day := DayUTC(d)
		if _, ok := seen[day]; ok {
			continue
		}

		seen[day] = struct{}{}

		result = append(result, day)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Before(result[j])
	})

	return result
}

// FormatDateRange renders the date part of an invoice line description.
// Multi-day engagements render as "{start} - {end} (N days)", a single day
// renders as the formatted day alone.
func FormatDateRange(start, end time.Time, totalDays int) string {
	if totalDays > 1 {
		return fmt.Sprintf("%s - %s (%d days)", start.Format(DisplayDayLayout), end.Format(DisplayDayLayout), totalDays)
	}

	return start.Format(DisplayDayLayout)
}
