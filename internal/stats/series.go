package stats

import (
	"fmt"
	"time"

	"github.com/tikk-app/tikk/internal/domain"
)

// hourlySeries builds 24 hour-of-day buckets covering the rolling window
// ending at now's hour, oldest first. Labels use the 12-hour clock with
// an explicit AM/PM marker so hours on either side of noon never share a
// label.
func hourlySeries(sessions []*domain.Session, now time.Time) []Bucket {
	buckets := make([]Bucket, 24)
	index := make(map[int]int, 24) // hour of day -> bucket position

	for i := 0; i < 24; i++ {
		hour := (now.Hour() - 23 + i + 24) % 24
		buckets[i] = Bucket{Label: hourLabel(hour)}
		index[hour] = i
	}

	for _, s := range sessions {
		buckets[index[s.Timestamp.Hour()]].Duration += s.Duration
	}
	return buckets
}

// hourLabel renders an hour of day (0..23) in 12-hour clock form.
func hourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour == 12:
		return "12 PM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// dailySeries builds 7 weekday buckets covering the 7 calendar days
// ending today, oldest first. Because the window is exactly 7 days, no
// two buckets share a weekday.
func dailySeries(sessions []*domain.Session, now time.Time) []Bucket {
	buckets := make([]Bucket, 7)
	index := make(map[time.Weekday]int, 7)

	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		buckets[i] = Bucket{Label: day.Weekday().String()[:3]}
		index[day.Weekday()] = i
	}

	for _, s := range sessions {
		if i, ok := index[s.Timestamp.Weekday()]; ok {
			buckets[i].Duration += s.Duration
		}
	}
	return buckets
}
