package analytics

import "time"

// Every function in this package takes the reference time explicitly; the
// real clock enters only at the HTTP layer. These helpers compare calendar
// components so timezone-equal timestamps on the same date always match.

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// previousMonth returns the year and month immediately before t's month,
// wrapping December to January across the year boundary.
func previousMonth(t time.Time) (int, time.Month) {
	if t.Month() == time.January {
		return t.Year() - 1, time.December
	}
	return t.Year(), t.Month() - 1
}

func inMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}
