// Package calendar holds the date arithmetic used to bucket generated
// records by day, week and month.
package calendar

import (
	"fmt"
	"time"
)

// DateLayout formats a calendar day.
const DateLayout = "2006-01-02"

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday of the week containing t, at midnight.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return Day(t).AddDate(0, 0, -offset)
}

// DaysIn returns the number of days in the given month. Day zero of the
// following month normalises to the last day of this one, which also covers
// December rolling into the next year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Days returns every day from start to end inclusive. It returns nil when
// end is before start.
func Days(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Days returns the number of days in m.
func (m Month) Days() int {
	return DaysIn(m.Year, m.Month)
}

// Number returns the zero-padded month number, e.g. "03".
func (m Month) Number() string {
	return fmt.Sprintf("%02d", int(m.Month))
}

// String returns the month as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%d-%02d", m.Year, int(m.Month))
}

// Months returns every month touched by the range start..end inclusive.
func Months(start, end time.Time) []Month {
	var months []Month
	for _, d := range Days(start, end) {
		m := MonthOf(d)
		if len(months) == 0 || months[len(months)-1] != m {
			months = append(months, m)
		}
	}
	return months
}
