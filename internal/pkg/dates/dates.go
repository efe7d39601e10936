package dates

import (
	"sort"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// NoData is returned by Summarize when there are no dates to display.
const NoData = "-"

// Summarize compresses a set of ISO dates ("2006-01-02") into a display
// string of contiguous ranges: "01/01–03/01, 05/01". Duplicates are
// collapsed and unparseable entries skipped. Ranges are rendered day/month
// with no year, so a range crossing a year boundary is ambiguous in output;
// this mirrors the report screens and is a known limitation.
func Summarize(dateStrs []string) string {
	seen := make(map[string]struct{}, len(dateStrs))
	days := make([]time.Time, 0, len(dateStrs))
	for _, s := range dateStrs {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		d, err := time.Parse(dayLayout, s)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return NoData
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var parts []string
	rangeStart := days[0]
	prev := days[0]

	// Iterate one past the end; the sentinel step has an infinite gap and
	// closes the final run.
	for i := 1; i <= len(days); i++ {
		gap := 2.0
		if i < len(days) {
			gap = days[i].Sub(prev).Hours() / 24
		}
		if gap > 1 {
			if rangeStart.Equal(prev) {
				parts = append(parts, formatDay(prev))
			} else {
				parts = append(parts, formatDay(rangeStart)+"–"+formatDay(prev))
			}
			if i < len(days) {
				rangeStart = days[i]
			}
		}
		if i < len(days) {
			prev = days[i]
		}
	}
	return strings.Join(parts, ", ")
}

// RangeDays returns every calendar date in [start, end] inclusive as ISO
// strings. An end before start yields an empty slice.
func RangeDays(start, end time.Time) []string {
	var out []string
	cur := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	for !cur.After(last) {
		out = append(out, cur.Format(dayLayout))
		cur = cur.AddDate(0, 0, 1)
	}
	return out
}

func formatDay(d time.Time) string {
	return d.Format("02/01")
}
