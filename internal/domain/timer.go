package domain

import "time"

// Timer tracks the single in-flight session. It holds no committed
// duration: elapsed time is always recomputed from StartedAt, and the
// final duration is computed exactly once when the timer stops.
type Timer struct {
	Running     bool
	StartedAt   time.Time
	Description string
	Category    string
}

// Start transitions an idle timer to running. Starting with no category
// selects the Uncategorized sentinel. Starting while already running is
// a no-op.
func (t *Timer) Start(category string, now time.Time) {
	if t.Running {
		return
	}
	if category != "" {
		t.Category = category
	} else if t.Category == "" {
		t.Category = Uncategorized
	}
	t.StartedAt = now
	t.Running = true
}

// Stop transitions a running timer to idle and returns the interval it
// covered. The second return is false when the timer was not running.
func (t *Timer) Stop(now time.Time) (Span, bool) {
	if !t.Running {
		return Span{}, false
	}
	span := Span{Start: t.StartedAt, End: now, Duration: now.Sub(t.StartedAt)}
	t.Running = false
	t.StartedAt = time.Time{}
	t.Description = ""
	t.Category = ""
	return span, true
}

// SwitchCategory reassigns a running timer's category without stopping.
// Only permitted while the current category is the Uncategorized
// sentinel; any other switch must go through Stop + Start so the
// finished interval is committed first.
func (t *Timer) SwitchCategory(category string) bool {
	if !t.Running || t.Category != Uncategorized {
		return false
	}
	t.Category = category
	return true
}

// Resume pre-seeds the timer from a past session and starts it. The
// caller is responsible for stopping (and committing) any running timer
// first.
func (t *Timer) Resume(s *Session, now time.Time) {
	t.Description = s.Description
	t.Category = s.Category
	t.StartedAt = now
	t.Running = true
}

// Elapsed returns the display elapsed time, zero while idle. This value
// is cosmetic; committed durations come from Stop.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	if !t.Running {
		return 0
	}
	return now.Sub(t.StartedAt)
}
