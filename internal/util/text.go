package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var whitespace = regexp.MustCompile(`\s+`)

// Fold applies Unicode case folding. A Caser is stateful, so each call
// gets its own.
func Fold(s string) string { return cases.Fold().String(s) }

// NormalizeWhitespace trims and collapses whitespace to single spaces.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// ContainsFold reports whether substr is within s under Unicode case folding.
// An empty substr always matches.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(Fold(s), Fold(substr))
}

// ContainsAnyFold returns true if text contains any of the needles (case-insensitive).
func ContainsAnyFold(text string, needles []string) bool {
	ft := Fold(text)
	for _, n := range needles {
		if strings.Contains(ft, Fold(n)) {
			return true
		}
	}
	return false
}

// Tokenize splits on spaces and punctuation.
func Tokenize(s string) []string {
	s = Fold(s)
	repl := strings.NewReplacer(
		",", " ", ".", " ", "!", " ", "?", " ", ":", " ", ";", " ",
		"\n", " ", "\t", " ", "\r", " ", "(", " ", ")", " ", "[", " ", "]", " ",
		"&", " ", "-", " ", "/", " ", "\"", " ",
	)
	return strings.Fields(repl.Replace(s))
}
