package text

import (
	"unicode"
)

// IsWordBreak reports whether r separates words. Whitespace, control
// characters, and the noncharacter U+FFFE (used by some text layers to
// mark unmapped glyphs) all break words.
func IsWordBreak(r rune) bool {
	return r == 0xFFFE || unicode.IsSpace(r) || unicode.IsControl(r)
}

// IsLineBreak reports whether r ends a line of text.
func IsLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

// IsSkippable reports whether r may be passed over while matching a
// search query against page text. Combining marks, soft hyphens, and
// zero-width characters never contribute to a match. Hyphens are
// skippable only when they follow a letter or digit, so that a word
// broken across lines ("exam-ple") still matches "example" while a
// leading minus sign does not vanish. prev is the preceding page
// character, or 0 at the start of the text.
func IsSkippable(r, prev rune) bool {
	if unicode.In(r, unicode.Mn, unicode.Me) {
		return true
	}
	switch r {
	case '\u00ad', '\u200b', '\u200c', '\u200d', '\ufeff':
		return true
	case '-', '\u2010', '\u2011':
		return unicode.IsLetter(prev) || unicode.IsDigit(prev)
	}
	return false
}
