package text

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text and removes the combining marks the
// decomposition exposes, turning "é" into "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeRune maps r to its accent-stripped, lowercased form for
// comparison. Characters whose decomposition is entirely combining
// marks normalize to themselves.
func NormalizeRune(r rune) rune {
	out, _, err := transform.String(stripMarks, string(r))
	if err != nil || out == "" {
		return unicode.ToLower(r)
	}
	for _, first := range out {
		return unicode.ToLower(first)
	}
	return unicode.ToLower(r)
}

// NormalizeQuery prepares a search query for matching against page
// text, returning one normalized rune per input rune.
func NormalizeQuery(query string) []rune {
	out := make([]rune, 0, len(query))
	for _, r := range query {
		out = append(out, NormalizeRune(r))
	}
	return out
}
