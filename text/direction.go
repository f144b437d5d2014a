package text

import "unicode"

// Direction is the writing direction of a character or a run of text.
type Direction int

const (
	// LTR is left-to-right text.
	LTR Direction = iota
	// RTL is right-to-left text.
	RTL
	// Neutral covers characters with no strong direction of their own,
	// such as digits, punctuation, and whitespace.
	Neutral
)

func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	}
	return "Unknown"
}

// rtlRanges covers the right-to-left scripts a page's text layer can
// carry: Hebrew, Arabic, Syriac, Thaana, and N'Ko, including the
// Hebrew and Arabic presentation forms that shaped text decomposes to.
var rtlRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0590, Hi: 0x05FF, Stride: 1}, // Hebrew
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1}, // Arabic
		{Lo: 0x0700, Hi: 0x074F, Stride: 1}, // Syriac
		{Lo: 0x0750, Hi: 0x077F, Stride: 1}, // Arabic Supplement
		{Lo: 0x0780, Hi: 0x07BF, Stride: 1}, // Thaana
		{Lo: 0x07C0, Hi: 0x07FF, Stride: 1}, // NKo
		{Lo: 0x08A0, Hi: 0x08FF, Stride: 1}, // Arabic Extended-A
		{Lo: 0xFB1D, Hi: 0xFB4F, Stride: 1}, // Hebrew presentation forms
		{Lo: 0xFB50, Hi: 0xFDFF, Stride: 1}, // Arabic presentation forms A
		{Lo: 0xFE70, Hi: 0xFEFF, Stride: 1}, // Arabic presentation forms B
	},
}

// CharDirection returns the inherent direction of a single character.
// Digits, punctuation, whitespace, and symbols are Neutral; characters
// of a right-to-left script are RTL; everything else, including CJK,
// is treated as LTR.
func CharDirection(r rune) Direction {
	switch {
	case unicode.IsDigit(r), unicode.IsPunct(r), unicode.IsSpace(r), unicode.IsSymbol(r):
		return Neutral
	case unicode.Is(rtlRanges, r):
		return RTL
	}
	return LTR
}

// DetectDirection returns the dominant direction of s, judged by
// counting the characters with a strong direction on each side. Ties
// go to LTR. Text with no strong characters at all, including the
// empty string, is Neutral.
func DetectDirection(s string) Direction {
	ltr, rtl := 0, 0
	for _, r := range s {
		switch CharDirection(r) {
		case LTR:
			ltr++
		case RTL:
			rtl++
		}
	}
	switch {
	case ltr == 0 && rtl == 0:
		return Neutral
	case rtl > ltr:
		return RTL
	}
	return LTR
}
