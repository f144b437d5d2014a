package folio

import (
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/text"
)

// FindMatches returns the character ranges of every occurrence of
// query in the page text. Matching is case and accent insensitive, and
// skippable characters in the page text (soft hyphens, combining
// marks, zero-width characters, in-word hyphens) are passed over, so
// "example" matches a word hyphenated across a line break. Matches do
// not overlap; scanning resumes after each match. Only the printable
// range is scanned, so leading and trailing whitespace runs never host
// a match.
func (p *Page) FindMatches(query string) []model.TextRange {
	q := text.NormalizeQuery(query)
	if len(q) == 0 {
		return nil
	}
	first := p.FirstPrintableIndex()
	if first < 0 {
		return nil
	}
	n := p.LastPrintableIndex() + 1
	var out []model.TextRange
	for i := first; i < n; {
		if stop, ok := p.matchAt(i, q, n); ok {
			out = append(out, model.TextRange{Start: i, Stop: stop})
			i = stop
		} else {
			i++
		}
	}
	return out
}

// matchAt reports whether the normalized query q matches the page text
// starting at index start, returning the index just past the match.
// Skippable characters may only be passed over after the first query
// character has matched, so a match always begins on a real match.
func (p *Page) matchAt(start int, q []rune, n int) (int, bool) {
	pi, qi := start, 0
	for qi < len(q) {
		if n-pi < len(q)-qi {
			return 0, false
		}
		r := p.CharAt(pi)
		if text.NormalizeRune(r) == q[qi] {
			qi++
			pi++
			continue
		}
		if qi > 0 && text.IsSkippable(r, p.CharAt(pi-1)) {
			pi++
			continue
		}
		return 0, false
	}
	return pi, true
}

// MatchBounds holds the device-space rectangles of a set of search
// matches. Rects is the flat list of rectangles across all matches;
// MatchToRect[i] is the index into Rects of match i's first rectangle;
// CharIndexes[i] is the character index where match i starts. A match
// spanning multiple lines contributes one rectangle per line.
type MatchBounds struct {
	Rects       []model.DeviceRect
	MatchToRect []int
	CharIndexes []int
}

// BoundsOfMatches resolves the rectangles of matches, as returned by
// FindMatches. Matches with no visible extent are dropped.
func (p *Page) BoundsOfMatches(matches []model.TextRange) MatchBounds {
	var mb MatchBounds
	for _, m := range matches {
		rects := p.TextBounds(m.Start, m.Stop)
		if len(rects) == 0 {
			continue
		}
		mb.MatchToRect = append(mb.MatchToRect, len(mb.Rects))
		mb.CharIndexes = append(mb.CharIndexes, m.Start)
		mb.Rects = append(mb.Rects, rects...)
	}
	return mb
}

// TextDirection returns the dominant writing direction of the page
// text.
func (p *Page) TextDirection() text.Direction {
	return text.DetectDirection(p.Text())
}
