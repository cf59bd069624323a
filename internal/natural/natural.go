// Package natural is a lenient fallback for phrases the recognizers do not
// cover ("a week from now", "next month"), backed by go-naturaldate.
package natural

import (
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// nowPhrases are the only inputs allowed to resolve to the reference itself.
var nowPhrases = []string{"now", "right now", "currently"}

// Resolve interprets phrase relative to ref, preferring future dates. It
// reports false when the phrase could not be understood.
func Resolve(phrase string, ref time.Time) (time.Time, bool) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return time.Time{}, false
	}

	t, err := naturaldate.Parse(phrase, ref, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, false
	}

	// naturaldate returns ref unchanged for input it skipped over
	if t.Equal(ref) {
		lower := strings.ToLower(phrase)
		for _, p := range nowPhrases {
			if lower == p {
				return t, true
			}
		}
		return time.Time{}, false
	}
	return t, true
}
