package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/tikk-app/tikk/internal/calendar"
	"github.com/tikk-app/tikk/internal/domain"
)

// RenderDaySlots renders the 24 hour slots of one day, sessions listed
// under the slot they were committed in. Empty slots collapse to a
// single dimmed line.
func RenderDaySlots(slots []calendar.DaySlot) string {
	var b strings.Builder
	empty := 0
	for _, slot := range slots {
		if len(slot.Sessions) == 0 {
			empty++
			continue
		}
		if empty > 0 {
			b.WriteString(StyleDim.Render(fmt.Sprintf("  ⋯ %d empty hours", empty)) + "\n")
			empty = 0
		}
		b.WriteString(StyleHeader.Render(slot.Label) + "\n")
		for _, s := range slot.Sessions {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleFg.Render(Truncate(s.Description, 32)),
				StyleDim.Render(Truncate(s.Category, 16)),
				domain.FormatDurationExact(s.Duration),
			))
		}
	}
	if empty > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  ⋯ %d empty hours", empty)) + "\n")
	}
	if b.Len() == 0 {
		return Dim("Nothing tracked on this day.")
	}
	return b.String()
}

// RenderWeek renders seven day columns, Monday first, each with its
// per-category totals largest first.
func RenderWeek(days []calendar.WeekDay) string {
	var b strings.Builder
	for _, d := range days {
		label := d.Date.Format("Mon Jan 2")
		b.WriteString(StyleHeader.Render(label))

		cats := d.Categories()
		if len(cats) == 0 {
			b.WriteString("  " + StyleDim.Render("-") + "\n")
			continue
		}
		b.WriteString("\n")
		for _, name := range cats {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				StyleFg.Render(PadRight(Truncate(name, 18), 18)),
				StyleDim.Render(domain.FormatDuration(d.ByCategory[name])),
			))
		}
	}
	return b.String()
}

// RenderMonth renders the month grid, seven columns Sunday-first to
// match the cell layout, with today highlighted.
func RenderMonth(grid calendar.MonthGrid, selected time.Time) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", grid.Month, grid.Year)
	b.WriteString(StyleHeader.Render(title) + "\n")
	b.WriteString(StyleDim.Render("Su Mo Tu We Th Fr Sa") + "\n")

	for i, cell := range grid.Cells {
		switch {
		case cell.Blank():
			b.WriteString("   ")
		case cell.Today:
			b.WriteString(StyleGreen.Render(fmt.Sprintf("%2d", cell.Day)) + " ")
		case calendar.SameDay(cell.Date, selected):
			b.WriteString(StyleBold.Render(fmt.Sprintf("%2d", cell.Day)) + " ")
		default:
			b.WriteString(StyleFg.Render(fmt.Sprintf("%2d", cell.Day)) + " ")
		}
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderYear renders all twelve month grids in four rows of three.
func RenderYear(grids []calendar.MonthGrid, selected time.Time) string {
	var b strings.Builder
	for row := 0; row < 4; row++ {
		months := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			months = append(months, RenderMonth(grids[row*3+col], selected))
		}
		b.WriteString(joinColumns(months, 24))
		b.WriteString("\n")
	}
	return b.String()
}

func joinColumns(cols []string, width int) string {
	split := make([][]string, len(cols))
	maxLines := 0
	for i, c := range cols {
		split[i] = strings.Split(c, "\n")
		if len(split[i]) > maxLines {
			maxLines = len(split[i])
		}
	}

	var b strings.Builder
	for line := 0; line < maxLines; line++ {
		for i := range split {
			cell := ""
			if line < len(split[i]) {
				cell = split[i][line]
			}
			b.WriteString(PadRight(cell, width))
		}
		b.WriteString("\n")
	}
	return b.String()
}
