// Package textutil contains the word counting and normalization rules shared by
// every path that puts text into the source slot.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// DefaultWordLimit is the maximum number of words accepted in the source text.
const DefaultWordLimit = 500

// CountWords counts runs of non-whitespace characters. Blank text has zero words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// TruncateWords keeps the first limit words of text joined by single spaces.
// Text within the limit is returned unchanged and truncated is false.
func TruncateWords(text string, limit int) (result string, truncated bool) {
	if limit <= 0 {
		return text, false
	}
	words := strings.Fields(text)
	if len(words) <= limit {
		return text, false
	}
	return strings.Join(words[:limit], " "), true
}

var folder = cases.Fold()

// NormalizeWord strips surrounding punctuation and case-folds a clicked word so
// that "Hello," and "hello" share a cache entry.
func NormalizeWord(word string) string {
	trimmed := strings.TrimFunc(word, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r)
	})
	return folder.String(trimmed)
}
