package domain

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock_Decomposition(t *testing.T) {
	tests := []struct {
		name    string
		d       time.Duration
		hours   string
		minutes string
		seconds string
		centis  string
	}{
		{"zero", 0, "00", "00", "00", "00"},
		{"under a second", 990 * time.Millisecond, "00", "00", "00", "99"},
		{"one second", time.Second, "00", "00", "01", "00"},
		{"minute boundary", 60 * time.Second, "00", "01", "00", "00"},
		{"hour boundary", time.Hour, "01", "00", "00", "00"},
		{"mixed", time.Hour + 23*time.Minute + 45*time.Second + 670*time.Millisecond, "01", "23", "45", "67"},
		{"negative clamps to zero", -5 * time.Second, "00", "00", "00", "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := FormatClock(tt.d)
			assert.Equal(t, tt.hours, parts.Hours)
			assert.Equal(t, tt.minutes, parts.Minutes)
			assert.Equal(t, tt.seconds, parts.Seconds)
			assert.Equal(t, tt.centis, parts.Centis)
		})
	}
}

// The decomposed parts must reassemble to the original millisecond count
// within the two-digit millisecond truncation.
func TestFormatClock_RoundTripIdentity(t *testing.T) {
	for _, ms := range []int64{0, 1, 9, 10, 999, 1000, 61_000, 3_599_999, 3_600_000, 86_399_990} {
		parts := FormatClock(time.Duration(ms) * time.Millisecond)

		h, err := strconv.ParseInt(parts.Hours, 10, 64)
		require.NoError(t, err)
		m, err := strconv.ParseInt(parts.Minutes, 10, 64)
		require.NoError(t, err)
		s, err := strconv.ParseInt(parts.Seconds, 10, 64)
		require.NoError(t, err)
		c, err := strconv.ParseInt(parts.Centis, 10, 64)
		require.NoError(t, err)

		rebuilt := (h*3600+m*60+s)*1000 + c*10
		assert.Equal(t, ms-ms%10, rebuilt, "ms=%d", ms)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "59m", FormatDuration(59*time.Minute+59*time.Second))
	assert.Equal(t, "2h 5m", FormatDuration(2*time.Hour+5*time.Minute))
}

func TestFormatDurationExact(t *testing.T) {
	assert.Equal(t, "0s", FormatDurationExact(0))
	assert.Equal(t, "45s", FormatDurationExact(45*time.Second))
	assert.Equal(t, "12m 3s", FormatDurationExact(12*time.Minute+3*time.Second))
	// Seconds are suppressed once hours appear.
	assert.Equal(t, "1h 5m", FormatDurationExact(time.Hour+5*time.Minute+30*time.Second))
}
