package utils

import "time"

// AddCalendarYears advances a date by n calendar years with month and day held
// fixed, so yearly cleaning dates stay stable across leap years (Feb 29
// normalizes to Mar 1 on non-leap years, per time.AddDate).
func AddCalendarYears(t time.Time, n int) time.Time {
	return t.AddDate(n, 0, 0)
}

// TruncateToDay drops the time-of-day component in UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(TruncateToDay(end).Sub(TruncateToDay(start)).Hours() / 24)
}
