package domain

import "time"

// Sentinel values substituted when the user leaves a field blank.
const (
	DefaultDescription = "Untitled"
	Uncategorized      = "Uncategorized"
)

// Span is one contiguous tracked interval inside a Session.
// A Session always carries exactly one Span at commit time; the slice
// shape leaves room for merging sessions later.
type Span struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// Session is one completed, timed activity.
// Category is a denormalized name copy, not a reference: renaming or
// deleting a category leaves historical sessions untouched.
type Session struct {
	ID          string
	Description string
	Category    string
	Duration    time.Duration
	Timestamp   time.Time // commit time, not start time
	Spans       []Span
}

// NewSession builds a committed session from a tracked interval,
// substituting defaults for blank description and category.
func NewSession(id, description, category string, start, end time.Time) *Session {
	if description == "" {
		description = DefaultDescription
	}
	if category == "" {
		category = Uncategorized
	}
	d := end.Sub(start)
	if d < 0 {
		d = 0
	}
	return &Session{
		ID:          id,
		Description: description,
		Category:    category,
		Duration:    d,
		Timestamp:   end,
		Spans:       []Span{{Start: start, End: end, Duration: d}},
	}
}

// Edit updates the mutable fields, keeping defaults for blank values.
func (s *Session) Edit(description, category string) {
	if description == "" {
		description = DefaultDescription
	}
	if category == "" {
		category = Uncategorized
	}
	s.Description = description
	s.Category = category
}

// Span0 returns the sole tracked interval, or a zero Span when absent.
func (s *Session) Span0() Span {
	if len(s.Spans) == 0 {
		return Span{}
	}
	return s.Spans[0]
}
