package domain

import (
	"fmt"
	"time"
)

// ClockParts is a wall-clock decomposition of a duration for display.
// Centis holds the leading two digits of the millisecond component.
type ClockParts struct {
	Hours   string
	Minutes string
	Seconds string
	Centis  string
}

// FormatClock decomposes a non-negative duration into zero-padded
// HH/MM/SS parts plus a truncated two-digit millisecond field.
func FormatClock(d time.Duration) ClockParts {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return ClockParts{
		Hours:   fmt.Sprintf("%02d", hours),
		Minutes: fmt.Sprintf("%02d", minutes),
		Seconds: fmt.Sprintf("%02d", seconds),
		Centis:  fmt.Sprintf("%02d", (ms%1000)/10),
	}
}

// FormatDuration renders a duration as "Xh Ym" or "Ym" for summaries.
func FormatDuration(d time.Duration) string {
	totalSeconds := d.Milliseconds() / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatDurationExact renders a duration as the largest non-zero units,
// down to seconds, e.g. "1h 5m", "12m 3s", "45s", "0s".
func FormatDurationExact(d time.Duration) string {
	totalSeconds := d.Milliseconds() / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 && hours == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	if len(parts) == 0 {
		return "0s"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}
