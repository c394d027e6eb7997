package formatter

import (
	"time"

	"github.com/tikk-app/tikk/internal/domain"
)

// RenderClock renders the live stopwatch readout: bold HH:MM:SS with a
// dimmed centisecond tail.
func RenderClock(d time.Duration) string {
	p := domain.FormatClock(d)
	return StyleBold.Render(p.Hours+":"+p.Minutes+":"+p.Seconds) +
		StyleDim.Render("."+p.Centis)
}

// RenderDuration renders a summary duration, dimmed when zero.
func RenderDuration(d time.Duration) string {
	if d == 0 {
		return StyleDim.Render(domain.FormatDuration(d))
	}
	return StyleFg.Render(domain.FormatDuration(d))
}
