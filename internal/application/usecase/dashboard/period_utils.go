// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"
)

// Period selects the analytics window.
type Period string

const (
	PeriodWeek  Period = "WEEK"
	PeriodMonth Period = "MONTH"
	PeriodYear  Period = "YEAR"
)

// IsValid reports whether p is a known period.
func (p Period) IsValid() bool {
	return p == PeriodWeek || p == PeriodMonth || p == PeriodYear
}

// monthAbbreviations maps months to English abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// GetPeriodBounds returns the half-open window [start, end) for a period.
// WEEK runs from the most recent Sunday at midnight up to now; MONTH and YEAR
// use the selected month and year.
func GetPeriodBounds(period Period, now time.Time, month time.Month, year int) (start, end time.Time) {
	loc := now.Location()

	switch period {
	case PeriodWeek:
		start = getWeekStartDate(now)
		end = now.Add(time.Nanosecond)
	case PeriodYear:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	default:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	}
	return start, end
}

// GeneratePeriodLabel generates a human-readable label for a period.
// Formats:
// - Week: "Week of {day} {month_abbr}" (e.g., "Week of 10 Mar")
// - Month: "{month_abbr} {year}" (e.g., "Mar 2025")
// - Year: "{year}"
func GeneratePeriodLabel(period Period, start time.Time) string {
	switch period {
	case PeriodWeek:
		return fmt.Sprintf("Week of %d %s", start.Day(), monthAbbreviations[start.Month()])
	case PeriodYear:
		return fmt.Sprintf("%d", start.Year())
	default:
		return fmt.Sprintf("%s %d", monthAbbreviations[start.Month()], start.Year())
	}
}

// getWeekStartDate returns the Sunday of the week containing the given date.
func getWeekStartDate(date time.Time) time.Time {
	daysFromSunday := int(date.Weekday())
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromSunday, 0, 0, 0, 0, date.Location())
}
