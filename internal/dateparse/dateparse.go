// Package dateparse turns short, informal due-date phrases ("tom",
// "in 2 weeks", "next fri", "15th", "7/12", "May 12th, 2017") into candidate
// calendar dates relative to a reference time.
//
// Each phrase family is handled by an independent recognizer. Recognizers
// accept partial input as it is typed, so "t" already yields today,
// tomorrow, Tuesday and Thursday. Every recognizer runs on every input and
// all candidates are returned, earliest first.
package dateparse

import (
	"fmt"
	"slices"
	"time"
)

// Result is one interpretation of an input phrase.
type Result struct {
	// Date is the resolved day, at 00:00:00.000 or 23:59:59.999 depending
	// on Options.EndOfDay.
	Date time.Time `json:"date"`
	// Match is the canonical rendering of what was recognized, e.g.
	// "in 2 days" for "in 2 d" or "Tuesday" for "tue".
	Match string `json:"match"`
	// Input is the raw phrase that produced this result.
	Input string `json:"string"`
}

// Options control a parse.
type Options struct {
	// Ref is the reference time phrases are resolved against. The zero
	// value means the current time.
	Ref time.Time
	// EndOfDay sets each result to the last millisecond of its day instead
	// of midnight.
	EndOfDay bool
}

// Parse returns every interpretation of input relative to the current time.
func Parse(input string) []Result {
	return ParseWith(input, Options{})
}

// ParseWith returns every interpretation of input, sorted by date. The
// result is never nil; unrecognized input gives an empty slice.
func ParseWith(input string, opts Options) []Result {
	ref := opts.Ref
	if ref.IsZero() {
		ref = time.Now()
	}

	out := []Result{}
	for _, recognize := range recognizers {
		out = append(out, recognize(input, ref)...)
	}

	for i := range out {
		out[i].Date = NormalizeDay(out[i].Date, opts.EndOfDay)
	}

	slices.SortStableFunc(out, func(a, b Result) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// NormalizeDay returns midnight of t's day, or its last millisecond
// (23:59:59.999) when atEnd is set. Every Result date passes through it.
func NormalizeDay(t time.Time, atEnd bool) time.Time {
	if atEnd {
		return endOfDay(t)
	}
	return startOfDay(t)
}

// ParseValue is ParseWith for callers holding an untyped value. Strings and
// non-nil string pointers are parsed; anything else yields an empty slice.
func ParseValue(v any, opts Options) []Result {
	switch s := v.(type) {
	case string:
		return ParseWith(s, opts)
	case *string:
		if s != nil {
			return ParseWith(*s, opts)
		}
	}
	return []Result{}
}

// First returns the earliest interpretation of input.
func First(input string, opts Options) (Result, bool) {
	results := ParseWith(input, opts)
	if len(results) == 0 {
		return Result{}, false
	}
	return results[0], true
}

// Resolve returns the earliest interpretation of input as an ISO 8601 date
// (YYYY-MM-DD).
func Resolve(input string, ref time.Time) (string, error) {
	if input == "" {
		return "", fmt.Errorf("empty date input")
	}
	r, ok := First(input, Options{Ref: ref})
	if !ok {
		return "", fmt.Errorf("unrecognized date format: %q", input)
	}
	return formatDate(r.Date), nil
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
