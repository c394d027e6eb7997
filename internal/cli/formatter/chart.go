package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/stats"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCategoryBars renders the per-category breakdown as horizontal
// bars scaled against the largest total, one category per line.
func RenderCategoryBars(totals []stats.CategoryTotal, width int) string {
	if len(totals) == 0 {
		return Dim("No sessions in this range.")
	}
	if width < 10 {
		width = 10
	}

	nameWidth := 0
	var longest time.Duration
	for _, ct := range totals {
		if n := len([]rune(ct.Name)); n > nameWidth {
			nameWidth = n
		}
		if ct.Duration > longest {
			longest = ct.Duration
		}
	}
	if nameWidth > 18 {
		nameWidth = 18
	}

	var b strings.Builder
	for _, ct := range totals {
		filled := 0
		if longest > 0 {
			filled = int(int64(width) * int64(ct.Duration) / int64(longest))
		}
		if filled > width {
			filled = width
		}
		bar := CategoryStyle(ct.Color).Render(strings.Repeat(filledBlock, filled)) +
			StyleDim.Render(strings.Repeat(emptyBlock, width-filled))

		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			StyleFg.Render(PadRight(Truncate(ct.Name, nameWidth), nameWidth)),
			bar,
			PadRight(domain.FormatDuration(ct.Duration), 7),
			StyleDim.Render(fmt.Sprintf("%3d%%", ct.Percentage)),
		))
	}
	return b.String()
}

// RenderSeries renders the time-bucketed series as a vertical bar
// chart with axis labels under every few buckets.
func RenderSeries(series []stats.Bucket, height int) string {
	if len(series) == 0 {
		return ""
	}
	if height < 2 {
		height = 2
	}

	var peak time.Duration
	for _, bkt := range series {
		if bkt.Duration > peak {
			peak = bkt.Duration
		}
	}
	if peak == 0 {
		return Dim("No activity in this range.")
	}

	// Column heights, minimum one block for any non-zero bucket.
	levels := make([]int, len(series))
	for i, bkt := range series {
		if bkt.Duration == 0 {
			continue
		}
		levels[i] = int(int64(height) * int64(bkt.Duration) / int64(peak))
		if levels[i] == 0 {
			levels[i] = 1
		}
	}

	colWidth := labelStride(series)
	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i := range series {
			cell := " "
			if levels[i] >= row {
				cell = StyleFg.Render(filledBlock)
			}
			b.WriteString(PadRight(cell, colWidth))
		}
		b.WriteString("\n")
	}

	// Axis: label every few columns to avoid crowding.
	step := len(series) / 6
	if step < 1 {
		step = 1
	}
	var axis strings.Builder
	for i := 0; i < len(series); i += step {
		label := Truncate(series[i].Label, colWidth*step-1)
		axis.WriteString(PadRight(label, colWidth*step))
	}
	b.WriteString(StyleDim.Render(axis.String()))
	return b.String()
}

func labelStride(series []stats.Bucket) int {
	// Daily series carries three-letter weekday labels; give those
	// columns room. Hourly series packs tighter.
	if len(series) <= 7 {
		return 5
	}
	return 2
}
