package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestComputeStreak(t *testing.T) {
	t.Run("First ever activity starts a streak of one", func(t *testing.T) {
		result := ComputeStreak(nil, date(2024, 3, 10, 9), 0, time.UTC)

		assert.Equal(t, 1, result.NewStreak)
		assert.False(t, result.PenaltyDue)
		assert.Equal(t, 0, result.DaysMissed)
	})

	t.Run("Consecutive day extends the streak", func(t *testing.T) {
		last := date(2024, 3, 10, 23)
		result := ComputeStreak(&last, date(2024, 3, 11, 0), 4, time.UTC)

		assert.Equal(t, 5, result.NewStreak)
		assert.False(t, result.PenaltyDue)
	})

	t.Run("Gap resets the streak and flags a penalty", func(t *testing.T) {
		last := date(2024, 3, 10, 12)
		result := ComputeStreak(&last, date(2024, 3, 13, 12), 7, time.UTC)

		assert.Equal(t, 1, result.NewStreak)
		assert.True(t, result.PenaltyDue)
		assert.Equal(t, 2, result.DaysMissed)
	})

	t.Run("Same day leaves the streak unchanged", func(t *testing.T) {
		last := date(2024, 3, 10, 8)
		result := ComputeStreak(&last, date(2024, 3, 10, 22), 3, time.UTC)

		assert.Equal(t, 3, result.NewStreak)
		assert.False(t, result.PenaltyDue)
	})

	t.Run("Calendar days not rolling 24h windows", func(t *testing.T) {
		// 23:30 to 00:30 is one hour apart but a new calendar day
		last := date(2024, 3, 10, 23).Add(30 * time.Minute)
		result := ComputeStreak(&last, date(2024, 3, 11, 0).Add(30*time.Minute), 2, time.UTC)

		assert.Equal(t, 3, result.NewStreak)
	})

	t.Run("Month boundary counts as consecutive", func(t *testing.T) {
		last := date(2024, 2, 29, 12)
		result := ComputeStreak(&last, date(2024, 3, 1, 12), 10, time.UTC)

		assert.Equal(t, 11, result.NewStreak)
	})
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(2024, 3, 10, 1), date(2024, 3, 10, 23), time.UTC))
	assert.Equal(t, 1, DaysBetween(date(2024, 3, 10, 23), date(2024, 3, 11, 1), time.UTC))
	assert.Equal(t, 3, DaysBetween(date(2024, 3, 10, 12), date(2024, 3, 13, 12), time.UTC))
	assert.Equal(t, -1, DaysBetween(date(2024, 3, 11, 0), date(2024, 3, 10, 23), time.UTC))
}

func TestDaysBetweenRespectsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)

	// Mar 10 20:00 UTC and Mar 11 02:00 UTC are different UTC days, but
	// in UTC+5 both fall on Mar 11
	a := date(2024, 3, 10, 20)
	b := date(2024, 3, 11, 2)

	assert.Equal(t, 1, DaysBetween(a, b, time.UTC))
	assert.Equal(t, 0, DaysBetween(a, b, loc))
}

func TestDaysBetweenAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("Spring forward day still counts as one day", func(t *testing.T) {
		// Mar 10 2024: only 23h between the local midnights
		a := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)
		b := time.Date(2024, 3, 11, 12, 0, 0, 0, loc)
		assert.Equal(t, 1, DaysBetween(a, b, loc))
	})

	t.Run("Fall back day still counts as one day", func(t *testing.T) {
		// Nov 3 2024: 25h between the local midnights
		a := time.Date(2024, 11, 3, 12, 0, 0, 0, loc)
		b := time.Date(2024, 11, 4, 12, 0, 0, 0, loc)
		assert.Equal(t, 1, DaysBetween(a, b, loc))
	})

	t.Run("Gap spanning the transition counts every day", func(t *testing.T) {
		a := time.Date(2024, 3, 9, 12, 0, 0, 0, loc)
		b := time.Date(2024, 3, 12, 12, 0, 0, 0, loc)
		assert.Equal(t, 3, DaysBetween(a, b, loc))
	})

	t.Run("Streak advances over the spring forward day", func(t *testing.T) {
		last := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)
		result := ComputeStreak(&last, time.Date(2024, 3, 11, 12, 0, 0, 0, loc), 3, loc)

		assert.Equal(t, 4, result.NewStreak)
		assert.False(t, result.PenaltyDue)
	})
}

func TestSameCalendarDay(t *testing.T) {
	assert.True(t, SameCalendarDay(date(2024, 3, 10, 0), date(2024, 3, 10, 23), time.UTC))
	assert.False(t, SameCalendarDay(date(2024, 3, 10, 23), date(2024, 3, 11, 0), time.UTC))
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(date(2024, 3, 10, 17).Add(42*time.Minute), time.UTC)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)
}
