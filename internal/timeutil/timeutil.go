// Package timeutil provides the pure time arithmetic for the timer engine
// and helpers for working with time values and store keys.
package timeutil

import "time"

// Period represents a reporting period for listing recorded sessions.
type Period string

const (
	PeriodAllTime Period = "all-time"
	PeriodToday   Period = "today"
	Period7Days   Period = "7days"
	Period30Days  Period = "30days"
)

// Range maps a period to its offset in days from today.
var Range = map[Period]int{
	PeriodAllTime: 0,
	PeriodToday:   0,
	Period7Days:   -6,
	Period30Days:  -29,
}

// PeriodCollection is the set of valid reporting periods.
var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	Period7Days,
	Period30Days,
}

// Elapsed returns the whole seconds elapsed between start and now. The
// result is floored and never negative. now is always an explicit input so
// that callers remain deterministic under test.
func Elapsed(start, now time.Time) time.Duration {
	if now.Before(start) {
		return 0
	}

	return now.Sub(start).Truncate(time.Second)
}

// Remaining returns the time left until target is reached, floored at zero.
func Remaining(start, now time.Time, target time.Duration) time.Duration {
	remaining := target - Elapsed(start, now)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// IsOvertime reports whether the elapsed time has exceeded the target.
func IsOvertime(start, now time.Time, target time.Duration) bool {
	return Elapsed(start, now) > target
}

// Overtime returns the time elapsed beyond the target, floored at zero.
func Overtime(start, now time.Time, target time.Duration) time.Duration {
	overtime := Elapsed(start, now) - target
	if overtime < 0 {
		return 0
	}

	return overtime
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two time values fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}
