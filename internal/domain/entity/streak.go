package entity

import "time"

// StreakResult is the outcome of advancing a streak to a new activity day
type StreakResult struct {
	NewStreak  int  // streak length after today's activity
	PenaltyDue bool // true when the previous streak was broken
	DaysMissed int  // number of whole calendar days skipped
}

// ComputeStreak advances a consecutive-day streak given the date of the last
// activity and today's date. Days are compared at calendar-day granularity in
// loc, not as rolling 24h windows. The same-day case (zero days difference)
// is the caller's responsibility: reject it (bonus claims) or skip the streak
// update (quiz resubmissions) before calling.
func ComputeStreak(lastDate *time.Time, today time.Time, currentStreak int, loc *time.Location) StreakResult {
	if lastDate == nil {
		// First-ever activity
		return StreakResult{NewStreak: 1}
	}

	diff := DaysBetween(*lastDate, today, loc)
	switch {
	case diff == 1:
		return StreakResult{NewStreak: currentStreak + 1}
	case diff > 1:
		return StreakResult{NewStreak: 1, PenaltyDue: true, DaysMissed: diff - 1}
	default:
		// diff <= 0: same day or clock skew backwards; streak unchanged
		return StreakResult{NewStreak: currentStreak}
	}
}

// DaysBetween returns the number of calendar days from a to b in loc.
// Negative when b precedes a. The dates are re-anchored in UTC before
// subtracting so a DST transition (a 23h or 25h day in loc) never skews
// the count.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}

// SameCalendarDay reports whether a and b fall on the same calendar day in loc
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// startOfDay returns midnight of t's calendar day in loc
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// StartOfDay exposes the day boundary used for "today" comparisons, e.g. when
// querying for quiz results recorded since midnight.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	return startOfDay(t, loc)
}
