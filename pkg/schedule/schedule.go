// Package schedule derives the ordered day sequence of a trip from its
// date range. All functions are pure; the editor calls Generate every
// time the range changes and the generator carries user-entered events
// across unchanged dates.
package schedule

import (
	"time"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

// ParseDate parses a calendar date in the storage layout ("2026-10-02").
func ParseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, s)
}

// FormatDate renders a time as a storage-layout calendar date.
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// Generate produces one DayEntry per calendar date from start to end
// inclusive. Day numbers are 1-based and contiguous. For dates present
// in existing, the events are carried over verbatim so editing the date
// range never loses entered events. An absent or unparseable date, or
// end before start, yields an empty sequence rather than an error.
func Generate(start, end string, existing []models.DayEntry) []models.DayEntry {
	if start == "" || end == "" {
		return []models.DayEntry{}
	}

	startT, err := ParseDate(start)
	if err != nil {
		return []models.DayEntry{}
	}
	endT, err := ParseDate(end)
	if err != nil {
		return []models.DayEntry{}
	}
	if endT.Before(startT) {
		return []models.DayEntry{}
	}

	byDate := make(map[string][]models.Event, len(existing))
	for _, d := range existing {
		byDate[d.Date] = d.Events
	}

	n := int(endT.Sub(startT).Hours()/24) + 1
	days := make([]models.DayEntry, 0, n)
	for i := 0; i < n; i++ {
		date := FormatDate(startT.AddDate(0, 0, i))
		events := byDate[date]
		if events == nil {
			events = []models.Event{}
		}
		days = append(days, models.DayEntry{
			Day:    i + 1,
			Date:   date,
			Events: events,
		})
	}
	return days
}

// DayNumber resolves a calendar date to its 1-based day number relative
// to the trip's start date. Dates outside the trip range still resolve
// to their derived number (possibly < 1 or > length); assigned dates are
// not bounds-checked anywhere, matching the permissive data model.
// Returns 0 when either date does not parse.
func DayNumber(start, date string) int {
	startT, err := ParseDate(start)
	if err != nil {
		return 0
	}
	dateT, err := ParseDate(date)
	if err != nil {
		return 0
	}
	return int(dateT.Sub(startT).Hours()/24) + 1
}
