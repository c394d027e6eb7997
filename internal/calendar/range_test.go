package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.Local)
}

func TestStartOfWeek_MostRecentSunday(t *testing.T) {
	// 2025-03-12 is a Wednesday; the week's Sunday is 2025-03-09.
	got := StartOfWeek(date(2025, 3, 12))
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local), got)

	// A Sunday is its own week start.
	got = StartOfWeek(date(2025, 3, 9))
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local), got)
}

func TestEndOfWeek_FollowingSaturday(t *testing.T) {
	got := EndOfWeek(date(2025, 3, 12))
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999_000_000, time.Local), got)
}

func TestStartEndOfDay(t *testing.T) {
	d := date(2025, 3, 12)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local), StartOfDay(d))
	assert.Equal(t, time.Date(2025, 3, 12, 23, 59, 59, 999_000_000, time.Local), EndOfDay(d))
}

func TestEndOfMonth(t *testing.T) {
	assert.Equal(t, 28, EndOfMonth(date(2025, 2, 10)).Day())
	assert.Equal(t, 29, EndOfMonth(date(2024, 2, 10)).Day(), "leap year")
	assert.Equal(t, 31, EndOfMonth(date(2025, 3, 1)).Day())
}

func TestStep(t *testing.T) {
	d := date(2025, 3, 12)

	assert.Equal(t, 13, Step(d, Day, 1).Day())
	assert.Equal(t, 11, Step(d, Day, -1).Day())
	assert.Equal(t, 19, Step(d, Week, 1).Day())
	assert.Equal(t, time.April, Step(d, Month, 1).Month())
	assert.Equal(t, 2026, Step(d, Year, 1).Year())
	assert.Equal(t, 2024, Step(d, Year, -1).Year())
}

func TestStep_MonthBoundary(t *testing.T) {
	// Stepping a month from Jan 31 overflows into March, matching
	// calendar arithmetic elsewhere in the stdlib.
	d := time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.March, Step(d, Month, 1).Month())
}

func TestToday_ResetsToDayView(t *testing.T) {
	now := time.Now()
	sel, g := Today(now)
	assert.Equal(t, now, sel)
	assert.Equal(t, Day, g)
}
