package dateparse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// pluralize fits a plural unit name ("days") to count: singular for 1,
// plural otherwise.
func pluralize(unit string, count int) string {
	base := strings.TrimSuffix(unit, "s")
	if count == 1 {
		return base
	}
	return base + "s"
}

// ordinalSuffix returns the English ordinal suffix for a day of the month.
func ordinalSuffix(n int) string {
	switch n {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}

// suffixFits reports whether a typed suffix is a prefix of the correct one,
// so "1", "1s" and "1st" fit while "1rd" does not.
func suffixFits(n int, typed string) bool {
	return strings.HasPrefix(ordinalSuffix(n), typed)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
