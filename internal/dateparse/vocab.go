package dateparse

import "strings"

// Ordered vocabularies. Order matters: prefix expansion emits candidates in
// table order, and weekday indexes double as offsets from Sunday.
var (
	spans = []string{"days", "weeks", "months", "years"}

	weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	months = []string{
		"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december",
	}

	shortMonths = func() []string {
		out := make([]string, len(months))
		for i, m := range months {
			out[i] = m[:3]
		}
		return out
	}()
)

// Vocabulary returns every full word the recognizers understand, in a
// stable order. Callers use it for spelling suggestions.
func Vocabulary() []string {
	words := []string{"in", "today", "tomorrow", "this", "next"}
	words = append(words, spans...)
	words = append(words, weekdays...)
	words = append(words, months...)
	return words
}

// prefixMatches returns the entries of vocab that start with prefix, in
// vocabulary order. An empty prefix matches every entry.
func prefixMatches(vocab []string, prefix string) []string {
	var out []string
	for _, word := range vocab {
		if strings.HasPrefix(word, prefix) {
			out = append(out, word)
		}
	}
	return out
}
