package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Defaults(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	end := start.Add(25 * time.Minute)

	s := NewSession("id-1", "", "", start, end)

	assert.Equal(t, DefaultDescription, s.Description)
	assert.Equal(t, Uncategorized, s.Category)
	assert.Equal(t, 25*time.Minute, s.Duration)
	assert.Equal(t, end, s.Timestamp, "timestamp is the commit time")
}

func TestNewSession_SpanInvariant(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	end := start.Add(90 * time.Second)

	s := NewSession("id-1", "reading", "Study", start, end)

	require.Len(t, s.Spans, 1)
	span := s.Span0()
	assert.Equal(t, start, span.Start)
	assert.Equal(t, end, span.End)
	assert.Equal(t, s.Duration, span.End.Sub(span.Start))
}

func TestNewSession_InstantStopYieldsZeroDuration(t *testing.T) {
	now := time.Now()

	s := NewSession("id-1", "blink", "", now, now)

	assert.Equal(t, time.Duration(0), s.Duration)
	assert.Equal(t, s.Spans[0].Start, s.Spans[0].End)
}

func TestNewSession_NegativeDurationClamped(t *testing.T) {
	end := time.Now()
	start := end.Add(time.Minute) // clock went backwards

	s := NewSession("id-1", "x", "y", start, end)

	assert.Equal(t, time.Duration(0), s.Duration)
}

func TestSession_Edit(t *testing.T) {
	s := NewSession("id-1", "draft", "Work", time.Now(), time.Now())

	s.Edit("final", "Deep Work")
	assert.Equal(t, "final", s.Description)
	assert.Equal(t, "Deep Work", s.Category)

	// Blanks fall back to sentinels rather than clearing.
	s.Edit("", "")
	assert.Equal(t, DefaultDescription, s.Description)
	assert.Equal(t, Uncategorized, s.Category)
}

func TestSpan0_Empty(t *testing.T) {
	s := &Session{}
	assert.Equal(t, Span{}, s.Span0())
}
