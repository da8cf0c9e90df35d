package domain

import "time"

// Day returns the UTC midnight instant for the given calendar day.
// All schedule dates are stored at day precision in UTC.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayOf truncates t to UTC midnight of its calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts t by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// DaysBetween returns the whole calendar days from a to b,
// negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)) / (24 * time.Hour))
}

// BusinessDaysBetween counts the weekdays in the half-open range [from, to).
// Returns 0 when to is not after from.
func BusinessDaysBetween(from, to time.Time) int {
	count := 0
	end := DayOf(to)
	for d := DayOf(from); d.Before(end); d = AddDays(d, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}
