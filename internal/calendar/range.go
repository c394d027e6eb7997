// Package calendar turns a selected date and a zoom granularity into
// concrete date ranges and render-ready session groupings. All boundary
// arithmetic is in the date's own location (local wall-clock time); no
// timezone conversion happens here.
package calendar

import "time"

// Granularity is the calendar zoom level.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
	Year  Granularity = "year"
)

// Granularities lists the zoom levels in switcher order.
var Granularities = []Granularity{Day, Week, Month, Year}

// StartOfDay returns midnight at the start of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

// StartOfWeek returns midnight of the most recent Sunday on or before t.
// Weeks start on Sunday; the Monday-first ordering some views use is a
// display decision, not a boundary change.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}

// EndOfWeek returns the end of the Saturday following StartOfWeek(t).
func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(t.AddDate(0, 0, 6-int(t.Weekday())))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Step shifts a selected date by delta units of the given granularity.
// Prev and next navigation are Step(-1) and Step(+1).
func Step(selected time.Time, g Granularity, delta int) time.Time {
	switch g {
	case Week:
		return selected.AddDate(0, 0, 7*delta)
	case Month:
		return selected.AddDate(0, delta, 0)
	case Year:
		return selected.AddDate(delta, 0, 0)
	default:
		return selected.AddDate(0, 0, delta)
	}
}

// Today resets navigation: the selected date becomes now and the
// granularity snaps back to day view.
func Today(now time.Time) (time.Time, Granularity) {
	return now, Day
}
