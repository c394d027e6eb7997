package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/tikk-app/tikk/internal/domain"
)

// DaySlot is one hour row of the day view.
type DaySlot struct {
	Hour     int
	Label    string // "00:00".."23:00"
	Sessions []*domain.Session
}

// DaySlots groups the sessions committed on the selected calendar day
// into 24 fixed hour slots. Sessions inside a slot keep chronological
// order; a session belongs to the slot of its commit hour regardless of
// its duration.
func DaySlots(sessions []*domain.Session, selected time.Time) []DaySlot {
	slots := make([]DaySlot, 24)
	for h := range slots {
		slots[h] = DaySlot{Hour: h, Label: fmt.Sprintf("%02d:00", h)}
	}

	var onDay []*domain.Session
	for _, s := range sessions {
		if SameDay(s.Timestamp, selected) {
			onDay = append(onDay, s)
		}
	}
	sort.SliceStable(onDay, func(i, j int) bool {
		return onDay[i].Timestamp.Before(onDay[j].Timestamp)
	})

	for _, s := range onDay {
		h := s.Timestamp.Hour()
		slots[h].Sessions = append(slots[h].Sessions, s)
	}
	return slots
}

// WeekDay is one day column of the week view: the calendar date plus a
// per-category duration total.
type WeekDay struct {
	Date       time.Time
	ByCategory map[string]time.Duration
}

// Categories returns the day's category names, largest total first,
// ties alphabetical.
func (d WeekDay) Categories() []string {
	names := make([]string, 0, len(d.ByCategory))
	for name := range d.ByCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := d.ByCategory[names[i]], d.ByCategory[names[j]]
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})
	return names
}

// WeekDays buckets sessions into the 7 calendar days of the week
// containing selected. The boundary week runs Sunday through Saturday,
// but the returned days are ordered Monday first for display.
func WeekDays(sessions []*domain.Session, selected time.Time) []WeekDay {
	start := StartOfWeek(selected)

	sundayFirst := make([]WeekDay, 7)
	for i := range sundayFirst {
		sundayFirst[i] = WeekDay{
			Date:       start.AddDate(0, 0, i),
			ByCategory: make(map[string]time.Duration),
		}
	}

	end := EndOfWeek(selected)
	for _, s := range sessions {
		if s.Timestamp.Before(start) || s.Timestamp.After(end) {
			continue
		}
		for i := range sundayFirst {
			if SameDay(s.Timestamp, sundayFirst[i].Date) {
				sundayFirst[i].ByCategory[s.Category] += s.Duration
				break
			}
		}
	}

	// Rotate Sunday to the end: Mon..Sat, Sun.
	ordered := make([]WeekDay, 0, 7)
	ordered = append(ordered, sundayFirst[1:]...)
	ordered = append(ordered, sundayFirst[0])
	return ordered
}

// MonthCell is one cell of the month grid. Blank padding cells have a
// zero Date and Day 0.
type MonthCell struct {
	Day   int
	Date  time.Time
	Today bool
}

// Blank reports whether the cell is grid padding.
func (c MonthCell) Blank() bool { return c.Day == 0 }

// MonthGrid holds the 7-column cell layout for one month.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []MonthCell
}

// MonthCells lays out the month containing selected as a 7-column grid:
// leading blanks align the 1st under its weekday (Sunday-first columns)
// and trailing blanks run to 6 minus the last day's weekday. Rows come
// out whole but the row count varies by month; the grid is not padded
// to a fixed six rows.
func MonthCells(selected, today time.Time) MonthGrid {
	first := StartOfMonth(selected)
	last := first.AddDate(0, 1, -1)

	cells := make([]MonthCell, 0, 42)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, MonthCell{})
	}
	for d := 1; d <= last.Day(); d++ {
		date := time.Date(selected.Year(), selected.Month(), d, 0, 0, 0, 0, selected.Location())
		cells = append(cells, MonthCell{Day: d, Date: date, Today: SameDay(date, today)})
	}
	for i := 0; i < 6-int(last.Weekday()); i++ {
		cells = append(cells, MonthCell{})
	}

	return MonthGrid{Year: selected.Year(), Month: selected.Month(), Cells: cells}
}

// YearGrids returns the 12 month grids of selected's year, January
// first. Each day cell is navigable back to the day view.
func YearGrids(selected, today time.Time) []MonthGrid {
	grids := make([]MonthGrid, 0, 12)
	for m := time.January; m <= time.December; m++ {
		ref := time.Date(selected.Year(), m, 1, 0, 0, 0, 0, selected.Location())
		grids = append(grids, MonthCells(ref, today))
	}
	return grids
}
