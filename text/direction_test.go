package text

import "testing"

func TestCharDirection(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Direction
	}{
		{"Hebrew letter", 'ש', RTL},
		{"Hebrew presentation form", 'שׁ', RTL},
		{"Arabic letter", 'م', RTL},
		{"Arabic presentation form", 'ﺍ', RTL},
		{"Syriac letter", 'ܐ', RTL},
		{"Thaana letter", 'ހ', RTL},
		{"Latin letter", 'k', LTR},
		{"Accented Latin", 'é', LTR},
		{"Cyrillic letter", 'ж', LTR},
		{"Greek letter", 'λ', LTR},
		{"CJK ideograph", '水', LTR},
		{"Hangul syllable", '한', LTR},
		{"Digit", '7', Neutral},
		{"Punctuation", ';', Neutral},
		{"Space", ' ', Neutral},
		{"Currency symbol", '$', Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CharDirection(tt.r); got != tt.want {
				t.Errorf("CharDirection(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want Direction
	}{
		{"empty", "", Neutral},
		{"digits and punctuation only", "3.14, 2.71", Neutral},
		{"Latin sentence", "the quick brown fox", LTR},
		{"Hebrew word", "שלום", RTL},
		{"Arabic sentence", "صفحة جديدة", RTL},
		{"mostly Latin with Hebrew", "chapter שער one", LTR},
		{"mostly Hebrew with Latin", "שער ox שלום", RTL},
		{"tie goes left to right", "ab שם", LTR},
		{"strong chars outweigh digits", "123 שלום 456", RTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.s); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if got := LTR.String(); got != "LTR" {
		t.Errorf("LTR.String() = %q", got)
	}
	if got := Direction(99).String(); got != "Unknown" {
		t.Errorf("Direction(99).String() = %q", got)
	}
}
