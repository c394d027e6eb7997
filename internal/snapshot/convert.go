package snapshot

import (
	"time"

	"github.com/google/uuid"
	"github.com/tikk-app/tikk/internal/domain"
)

// Build assembles a snapshot from live domain objects.
func Build(sessions []*domain.Session, categories []*domain.Category) *Snapshot {
	snap := &Snapshot{
		Logs:       make([]LogEntry, 0, len(sessions)),
		Categories: make([]CategoryEntry, 0, len(categories)),
	}
	for _, s := range sessions {
		entry := LogEntry{
			ID:          wireID(s.ID),
			Description: s.Description,
			Category:    s.Category,
			DurationMs:  s.Duration.Milliseconds(),
			Timestamp:   wireTime{s.Timestamp},
			Spans:       make([]SpanEntry, 0, len(s.Spans)),
		}
		for _, sp := range s.Spans {
			entry.Spans = append(entry.Spans, SpanEntry{
				Start:      wireTime{sp.Start},
				End:        wireTime{sp.End},
				DurationMs: sp.Duration.Milliseconds(),
			})
		}
		snap.Logs = append(snap.Logs, entry)
	}
	for _, c := range categories {
		snap.Categories = append(snap.Categories, CategoryEntry{
			ID:   wireID(c.ID),
			Name: c.Name,
			Icon: string(c.Icon),
		})
	}
	return snap
}

// Sessions converts the log entries back to domain sessions. Blank
// fields fall back to the usual defaults; entries without an id get a
// fresh one.
func (s *Snapshot) Sessions() []*domain.Session {
	out := make([]*domain.Session, 0, len(s.Logs))
	for _, e := range s.Logs {
		sess := &domain.Session{
			ID:          string(e.ID),
			Description: e.Description,
			Category:    e.Category,
			Duration:    time.Duration(e.DurationMs) * time.Millisecond,
			Timestamp:   e.Timestamp.Time,
		}
		if sess.ID == "" {
			sess.ID = uuid.New().String()
		}
		if sess.Description == "" {
			sess.Description = domain.DefaultDescription
		}
		if sess.Category == "" {
			sess.Category = domain.Uncategorized
		}
		if sess.Duration < 0 {
			sess.Duration = 0
		}
		for _, sp := range e.Spans {
			sess.Spans = append(sess.Spans, domain.Span{
				Start:    sp.Start.Time,
				End:      sp.End.Time,
				Duration: time.Duration(sp.DurationMs) * time.Millisecond,
			})
		}
		if len(sess.Spans) == 0 {
			sess.Spans = []domain.Span{{
				Start:    e.Timestamp.Add(-sess.Duration),
				End:      e.Timestamp.Time,
				Duration: sess.Duration,
			}}
		}
		out = append(out, sess)
	}
	return out
}

// DomainCategories converts the registry entries back to domain
// categories, dropping blanks and anything past the registry limit.
func (s *Snapshot) DomainCategories() []*domain.Category {
	out := make([]*domain.Category, 0, len(s.Categories))
	for _, e := range s.Categories {
		if len(out) >= domain.MaxCategories {
			break
		}
		id := string(e.ID)
		if id == "" {
			id = uuid.New().String()
		}
		c := domain.NewCategory(id, e.Name, domain.IconName(e.Icon))
		if c == nil {
			continue
		}
		out = append(out, c)
	}
	return out
}
