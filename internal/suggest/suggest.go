// Package suggest provides fuzzy matching for CLI flag and phrase suggestions
// using Levenshtein distance.
package suggest

import (
	"sort"
	"strings"
	"unicode"
)

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Create matrix
	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	// Fill matrix
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type scored struct {
	value string
	score int
}

// closest returns up to limit candidates within maxDist of unknown, best
// first. Ties keep candidate order.
func closest(unknown string, candidates []string, maxDist, limit int) []string {
	var matches []scored
	for _, c := range candidates {
		if dist := levenshtein(unknown, c); dist <= maxDist {
			matches = append(matches, scored{c, dist})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	var result []string
	for i := 0; i < len(matches) && i < limit; i++ {
		result = append(result, matches[i].value)
	}
	return result
}

// Flag finds similar flags from a list of valid flags
// Returns suggestions sorted by similarity (best first)
func Flag(unknown string, validFlags []string) []string {
	// Normalize: strip leading dashes
	unknown = strings.TrimLeft(unknown, "-")

	normalized := make([]string, len(validFlags))
	for i, valid := range validFlags {
		normalized[i] = strings.TrimLeft(valid, "-")
	}

	// Only suggest if reasonably close (within 3 edits or 50% of length)
	maxDist := max(3, len(unknown)/2)
	matches := closest(unknown, normalized, maxDist, 3)

	// Map back to the spelling the caller passed in
	var result []string
	for _, m := range matches {
		for _, valid := range validFlags {
			if strings.TrimLeft(valid, "-") == m {
				result = append(result, valid)
				break
			}
		}
	}
	return result
}

// Word finds vocabulary words close to a misspelled word, best first.
// Short words allow a single edit; longer ones about a third of their length.
func Word(unknown string, vocabulary []string) []string {
	unknown = strings.ToLower(unknown)
	maxDist := max(1, len(unknown)/3)
	return closest(unknown, vocabulary, maxDist, 3)
}

// Phrase rewrites each misspelled word of a phrase with its closest
// vocabulary word. Numbers, punctuation and words already in the vocabulary
// are kept. Returns "" when nothing was corrected.
func Phrase(phrase string, vocabulary []string) string {
	known := make(map[string]bool, len(vocabulary))
	for _, w := range vocabulary {
		known[w] = true
	}

	words := strings.Fields(strings.ToLower(phrase))
	changed := false
	for i, w := range words {
		if known[w] || !isWord(w) {
			continue
		}
		if best := Word(w, vocabulary); len(best) > 0 {
			words[i] = best[0]
			changed = true
		}
	}
	if !changed {
		return ""
	}
	return strings.Join(words, " ")
}

// Phrases returns up to three corrections for a phrase nothing matched. A
// single word gets its closest vocabulary words; a longer phrase gets one
// rewrite with every misspelled word fixed.
func Phrases(phrase string, vocabulary []string) []string {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) == 1 && isWord(words[0]) {
		var out []string
		for _, w := range Word(words[0], vocabulary) {
			if w != words[0] {
				out = append(out, w)
			}
		}
		return out
	}
	if p := Phrase(phrase, vocabulary); p != "" {
		return []string{p}
	}
	return nil
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// CommonFlagAliases maps commonly attempted flags to their correct names
var CommonFlagAliases = map[string]string{
	// Reference date aliases
	"now":  "--ref",
	"from": "--ref",
	"base": "--ref",
	"date": "--ref",

	// End of day aliases
	"eod":      "--end-of-day",
	"deadline": "--end-of-day",

	// Output aliases
	"format": "--json",
	"output": "--json",

	// Fallback aliases
	"fuzzy":   "--natural",
	"lenient": "--natural",

	// Version
	"version": "use: due version",
	"v":       "use: due version",
}

// GetFlagHint returns a hint for a commonly misused flag
func GetFlagHint(flag string) string {
	// Normalize
	flag = strings.TrimLeft(flag, "-")
	flag = strings.ToLower(flag)

	if hint, ok := CommonFlagAliases[flag]; ok {
		return hint
	}
	return ""
}
