package dateparse

import (
	"strconv"
	"strings"
	"time"
)

// Calendar helpers. Every function returns a new value; time.Time is never
// modified in place, so the reference passed to a recognizer stays intact.

func addDays(t time.Time, n int) time.Time   { return t.AddDate(0, 0, n) }
func addWeeks(t time.Time, n int) time.Time  { return t.AddDate(0, 0, n*7) }
func addMonths(t time.Time, n int) time.Time { return t.AddDate(0, n, 0) }
func addYears(t time.Time, n int) time.Time  { return t.AddDate(n, 0, 0) }

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek rolls back to Sunday.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(addDays(t, -int(t.Weekday())))
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// endOfDay returns 23:59:59.999, the last millisecond of t's day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// makeDate builds the start of the given day. month is either a number
// ("7") or a month name matched on its first three letters ("July", "jul").
// Dates that do not exist on the calendar (month 13, day 35, Feb 30)
// produce the zero Time; check with isValid.
func makeDate(year int, month string, day int, loc *time.Location) time.Time {
	m, err := strconv.Atoi(month)
	if err != nil || m == 0 {
		m = monthIndex(month) + 1
	}
	if m < 1 || m > 12 || day < 1 || day > 31 {
		return time.Time{}
	}

	t := time.Date(year, time.Month(m), day, 0, 0, 0, 0, loc)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject instead.
	if t.Year() != year || t.Month() != time.Month(m) || t.Day() != day {
		return time.Time{}
	}
	return t
}

// monthIndex returns the zero-based month for a name or abbreviation, or -1.
func monthIndex(name string) int {
	if len(name) < 3 {
		return -1
	}
	prefix := strings.ToLower(name[:3])
	for i, short := range shortMonths {
		if short == prefix {
			return i
		}
	}
	return -1
}

func isValid(t time.Time) bool {
	return !t.IsZero()
}
