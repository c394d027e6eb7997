package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/tikk-app/tikk/internal/domain"
)

// SessionOption customizes a test session.
type SessionOption func(*domain.Session)

func WithCategory(name string) SessionOption {
	return func(s *domain.Session) { s.Category = name }
}

func WithDescription(desc string) SessionOption {
	return func(s *domain.Session) { s.Description = desc }
}

func WithTimestamp(ts time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Timestamp = ts
		if len(s.Spans) == 1 {
			s.Spans[0].End = ts
			s.Spans[0].Start = ts.Add(-s.Duration)
		}
	}
}

// NewTestSession builds a committed session of the given duration
// ending now, truncated to millisecond precision to match storage.
func NewTestSession(d time.Duration, opts ...SessionOption) *domain.Session {
	end := time.Now().Truncate(time.Millisecond)
	s := domain.NewSession(uuid.New().String(), "test session", "Test", end.Add(-d), end)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestCategory builds a category with a fresh id.
func NewTestCategory(name string, icon domain.IconName) *domain.Category {
	return &domain.Category{ID: uuid.New().String(), Name: name, Icon: icon}
}
