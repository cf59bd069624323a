package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// recognizer matches one phrase family. It returns nil when the input is
// not part of that family. Dates are returned as computed; the orchestrator
// normalizes the time of day afterwards.
type recognizer func(input string, ref time.Time) []Result

// recognizers run in this order; output order for equal dates follows it.
var recognizers = []recognizer{
	relativeSpan,
	today,
	tomorrow,
	weekday,
	nthOfMonth,
	usDate,
	monthDayYear,
}

var (
	spanPattern         = regexp.MustCompile(`^in (\d+) ?([a-z]*)$`)
	weekdayPattern      = regexp.MustCompile(`^(this|next)? ?([a-z]*)$`)
	nthPattern          = regexp.MustCompile(`^(\d{1,2})([a-z]{1,2})?$`)
	usDatePattern       = regexp.MustCompile(`^(\d+)/(\d+)(?:/(\d*))?$`)
	monthDayYearPattern = regexp.MustCompile(`^(\w+) (\d+)([a-z]{1,2})?(?:,?\s*(\d*))?$`)
)

var spanAdders = map[string]func(time.Time, int) time.Time{
	"days":   addDays,
	"weeks":  addWeeks,
	"months": addMonths,
	"years":  addYears,
}

// relativeSpan handles "in 2 weeks", "in 2 w" and the bare "in 2", which
// expands to every unit.
func relativeSpan(input string, ref time.Time) []Result {
	m := spanPattern.FindStringSubmatch(input)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	var out []Result
	for _, unit := range prefixMatches(spans, m[2]) {
		out = append(out, Result{
			Date:  spanAdders[unit](ref, n),
			Match: fmt.Sprintf("in %d %s", n, pluralize(unit, n)),
			Input: input,
		})
	}
	return out
}

func today(input string, ref time.Time) []Result {
	if input == "" || !strings.HasPrefix("today", input) {
		return nil
	}
	return []Result{{Date: ref, Match: "today", Input: input}}
}

func tomorrow(input string, ref time.Time) []Result {
	if input == "" || !strings.HasPrefix("tomorrow", input) {
		return nil
	}
	return []Result{{Date: addDays(ref, 1), Match: "tomorrow", Input: input}}
}

// weekday resolves a day name within the reference week (Sunday first).
// Days already behind ref move to next week; "next" always does.
func weekday(input string, ref time.Time) []Result {
	m := weekdayPattern.FindStringSubmatch(input)
	if m == nil {
		return nil
	}
	modifier, name := m[1], m[2]
	if modifier == "" && name == "" {
		return nil
	}

	prefix := ""
	if modifier != "" {
		prefix = modifier + " "
	}

	week := startOfWeek(ref)
	var out []Result
	for idx, day := range weekdays {
		if !strings.HasPrefix(day, name) {
			continue
		}
		date := addDays(week, idx)
		if date.Before(ref) || modifier == "next" {
			date = addWeeks(date, 1)
		}
		out = append(out, Result{
			Date:  date,
			Match: prefix + capitalize(day),
			Input: input,
		})
	}
	return out
}

// nthOfMonth handles "15", "15t", "15th". A day already behind ref moves to
// the following month.
func nthOfMonth(input string, ref time.Time) []Result {
	m := nthPattern.FindStringSubmatch(input)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > 31 {
		return nil
	}
	if !suffixFits(n, m[2]) {
		return nil
	}

	date := addDays(startOfMonth(ref), n-1)
	if date.Before(ref) {
		date = addMonths(date, 1)
	}
	return []Result{{
		Date:  date,
		Match: strconv.Itoa(n) + ordinalSuffix(n),
		Input: input,
	}}
}

// usDate handles month/day[/year]. Years up to 2000 get 2000 added, so
// "19" is 2019 and "2020" stays 2020.
func usDate(input string, ref time.Time) []Result {
	m := usDatePattern.FindStringSubmatch(input)
	if m == nil {
		return nil
	}
	month, rawYear := m[1], m[3]
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	year, ok := yearOrDefault(rawYear, ref)
	if !ok {
		return nil
	}
	if year <= 2000 {
		year += 2000
	}

	date := makeDate(year, month, day, ref.Location())
	if !isValid(date) {
		return nil
	}
	if rawYear == "" && date.Before(ref) {
		date = addYears(date, 1)
	}

	return []Result{{
		Date:  date,
		Match: fmt.Sprintf("%d/%d/%d", int(date.Month()), date.Day(), date.Year()),
		Input: input,
	}}
}

// monthDayYear handles "May 12th", "jan 1st" and "Dec 29, 2019".
func monthDayYear(input string, ref time.Time) []Result {
	m := monthDayYearPattern.FindStringSubmatch(input)
	if m == nil {
		return nil
	}
	month, suffix, rawYear := m[1], m[3], m[4]
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	if !suffixFits(day, suffix) {
		return nil
	}
	if monthIndex(month) < 0 {
		return nil
	}
	year, ok := yearOrDefault(rawYear, ref)
	if !ok {
		return nil
	}
	if len(rawYear) <= 2 {
		year = expandShortYear(year)
	}

	date := makeDate(year, month, day, ref.Location())
	if !isValid(date) {
		return nil
	}
	if rawYear == "" && date.Before(ref) {
		date = addYears(date, 1)
	}

	match := fmt.Sprintf("%s %d%s, %d",
		capitalize(shortMonths[date.Month()-1]),
		date.Day(), ordinalSuffix(date.Day()),
		date.Year())
	return []Result{{Date: date, Match: match, Input: input}}
}

// expandShortYear maps a two-digit year onto 1950-2049. Full years pass
// through unchanged.
func expandShortYear(year int) int {
	switch {
	case year >= 100:
		return year
	case year < 50:
		return year + 2000
	default:
		return year + 1900
	}
}

// yearOrDefault parses a typed year. Missing or zero years fall back to the
// reference year. Numbers too large to parse reject the input.
func yearOrDefault(raw string, ref time.Time) (int, bool) {
	if raw == "" {
		return ref.Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if year == 0 {
		return ref.Year(), true
	}
	return year, true
}
