// Package stats computes dashboard summaries from the session log.
// Every function is pure: the reference time is injected so results are
// reproducible in tests.
package stats

import (
	"math"
	"time"

	"github.com/tikk-app/tikk/internal/domain"
)

// Range selects the rolling lookback window for a summary.
type Range string

const (
	Last24Hours Range = "24h"
	LastWeek    Range = "1w"
	AllTime     Range = "all" // unbounded window
)

// Window returns the lookback duration for the range, or 0 for an
// unbounded window.
func (r Range) Window() time.Duration {
	switch r {
	case Last24Hours:
		return 24 * time.Hour
	case LastWeek:
		return 7 * 24 * time.Hour
	default:
		return 0
	}
}

// Palette is the fixed chart palette, cycled by first-seen category order.
var Palette = []string{"#2B2B2B", "#4A4A4A", "#707070", "#A0A0A0", "#D0D0D0"}

// CategoryTotal is one row of the per-category breakdown.
type CategoryTotal struct {
	Name       string
	Duration   time.Duration
	Percentage int // round(100 * Duration / Total); 0 when Total is 0
	Color      string
}

// Bucket is one point of the time-bucketed series.
type Bucket struct {
	Label    string
	Duration time.Duration
}

// Summary is the full dashboard payload for one range.
type Summary struct {
	Total      time.Duration
	ByCategory []CategoryTotal
	Series     []Bucket
}

// Option adjusts how Summarize builds its output.
type Option func(*options)

type options struct {
	categoryFilter string
}

// WithCategoryFilter restricts the sessions feeding Series to one
// category. Total and ByCategory always cover all categories.
func WithCategoryFilter(name string) Option {
	return func(o *options) { o.categoryFilter = name }
}

// Summarize filters sessions to the rolling window ending at now and
// produces the total, the per-category breakdown, and the bucketed
// series for charting.
func Summarize(sessions []*domain.Session, r Range, now time.Time, opts ...Option) Summary {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	included := filterByWindow(sessions, r, now)

	var total time.Duration
	for _, s := range included {
		total += s.Duration
	}

	byCategory := groupByCategory(included, total)

	seriesInput := included
	if o.categoryFilter != "" {
		seriesInput = filterByCategory(included, o.categoryFilter)
	}

	var series []Bucket
	switch r {
	case LastWeek:
		series = dailySeries(seriesInput, now)
	case Last24Hours:
		series = hourlySeries(seriesInput, now)
	}

	return Summary{Total: total, ByCategory: byCategory, Series: series}
}

// filterByWindow keeps sessions whose commit timestamp falls inside the
// rolling window. An unbounded range keeps everything.
func filterByWindow(sessions []*domain.Session, r Range, now time.Time) []*domain.Session {
	window := r.Window()
	if window == 0 {
		return sessions
	}
	var out []*domain.Session
	for _, s := range sessions {
		if now.Sub(s.Timestamp) <= window {
			out = append(out, s)
		}
	}
	return out
}

func filterByCategory(sessions []*domain.Session, category string) []*domain.Session {
	var out []*domain.Session
	for _, s := range sessions {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// groupByCategory sums durations per category name (exact, case
// sensitive) in first-seen order and assigns palette colors by that
// order, cycling when categories outnumber the palette.
func groupByCategory(sessions []*domain.Session, total time.Duration) []CategoryTotal {
	sums := make(map[string]time.Duration)
	var order []string
	for _, s := range sessions {
		if _, seen := sums[s.Category]; !seen {
			order = append(order, s.Category)
		}
		sums[s.Category] += s.Duration
	}

	out := make([]CategoryTotal, 0, len(order))
	for i, name := range order {
		d := sums[name]
		pct := 0
		if total > 0 {
			pct = int(math.Round(100 * float64(d) / float64(total)))
		}
		out = append(out, CategoryTotal{
			Name:       name,
			Duration:   d,
			Percentage: pct,
			Color:      Palette[i%len(Palette)],
		})
	}
	return out
}
