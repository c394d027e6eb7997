package stats

import (
	"testing"
	"time"

	"github.com/tikk-app/tikk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour  int
		label string
	}{
		{0, "12 AM"},
		{1, "1 AM"},
		{11, "11 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{23, "11 PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, hourLabel(tt.hour))
	}
}

func TestHourlySeries_RollingWindowEndsAtCurrentHour(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 30, 0, 0, time.Local) // 3:30 PM

	series := hourlySeries(nil, now)

	require.Len(t, series, 24)
	assert.Equal(t, "4 PM", series[0].Label, "oldest bucket is 23 hours back")
	assert.Equal(t, "3 PM", series[23].Label, "newest bucket is the current hour")
}

func TestHourlySeries_BucketsByHourOfDay(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 30, 0, 0, time.Local)
	sessions := []*domain.Session{
		sessionAt("A", 10*time.Minute, time.Date(2025, 3, 12, 14, 32, 0, 0, time.Local)),
		sessionAt("A", 5*time.Minute, time.Date(2025, 3, 12, 14, 5, 0, 0, time.Local)),
		sessionAt("A", 20*time.Minute, time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local)),
	}

	series := hourlySeries(sessions, now)

	byLabel := make(map[string]time.Duration)
	for _, b := range series {
		byLabel[b.Label] = b.Duration
	}
	assert.Equal(t, 15*time.Minute, byLabel["2 PM"])
	assert.Equal(t, 20*time.Minute, byLabel["9 AM"])
}

// 2 AM and 2 PM share a 12-hour digit but must land in distinct buckets.
func TestHourlySeries_NoAMPMCollision(t *testing.T) {
	now := time.Date(2025, 3, 12, 23, 0, 0, 0, time.Local)
	sessions := []*domain.Session{
		sessionAt("A", time.Minute, time.Date(2025, 3, 12, 2, 0, 0, 0, time.Local)),
		sessionAt("A", time.Hour, time.Date(2025, 3, 12, 14, 0, 0, 0, time.Local)),
	}

	series := hourlySeries(sessions, now)

	byLabel := make(map[string]time.Duration)
	for _, b := range series {
		byLabel[b.Label] = b.Duration
	}
	assert.Equal(t, time.Minute, byLabel["2 AM"])
	assert.Equal(t, time.Hour, byLabel["2 PM"])
}

func TestDailySeries_SevenDaysEndingToday(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.Local)

	series := dailySeries(nil, now)

	require.Len(t, series, 7)
	assert.Equal(t, "Thu", series[0].Label, "oldest bucket is six days back")
	assert.Equal(t, "Wed", series[6].Label, "newest bucket is today")
}

func TestDailySeries_BucketsByWeekday(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.Local) // Wednesday
	sessions := []*domain.Session{
		sessionAt("A", time.Hour, time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)),  // Monday
		sessionAt("A", 30*time.Minute, time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)),
		sessionAt("A", 15*time.Minute, time.Date(2025, 3, 12, 8, 0, 0, 0, time.Local)), // today
	}

	series := dailySeries(sessions, now)

	byLabel := make(map[string]time.Duration)
	for _, b := range series {
		byLabel[b.Label] = b.Duration
	}
	assert.Equal(t, 90*time.Minute, byLabel["Mon"])
	assert.Equal(t, 15*time.Minute, byLabel["Wed"])
	assert.Equal(t, time.Duration(0), byLabel["Sun"])
}
