package memdoc

import (
	"fmt"

	"github.com/tsawler/folio/model"
)

// Char is one laid-out character of a text layer.
type Char struct {
	R      rune
	Box    model.Rect
	Origin model.Point
	Size   float64
}

// TextPage is an in-memory text layer.
type TextPage struct {
	chars []Char
}

// NewTextPage returns an empty text layer.
func NewTextPage() *TextPage {
	return &TextPage{}
}

// Append adds a single character to the layer.
func (t *TextPage) Append(c Char) {
	t.chars = append(t.chars, c)
}

// AppendLine lays text out left to right on a single baseline starting
// at (x, y), giving every character the same advance and box height.
// It is a convenience for building fixtures.
func (t *TextPage) AppendLine(text string, x, y, advance, height, fontSize float64) {
	for _, r := range text {
		t.chars = append(t.chars, Char{
			R:      r,
			Box:    model.RectFrom(x, y, x+advance, y+height),
			Origin: model.Point{X: x, Y: y},
			Size:   fontSize,
		})
		x += advance
	}
}

// CharCount returns the number of characters on the page.
func (t *TextPage) CharCount() int { return len(t.chars) }

// CharUnicode returns the character at index i, or 0 when i is out of
// range.
func (t *TextPage) CharUnicode(i int) rune {
	if i < 0 || i >= len(t.chars) {
		return 0
	}
	return t.chars[i].R
}

// CharBox returns the bounding box of the character at index i.
func (t *TextPage) CharBox(i int) (model.Rect, error) {
	if i < 0 || i >= len(t.chars) {
		return model.Rect{}, fmt.Errorf("memdoc: char index %d out of range", i)
	}
	return t.chars[i].Box, nil
}

// CharOrigin returns the baseline origin of the character at index i.
func (t *TextPage) CharOrigin(i int) (model.Point, error) {
	if i < 0 || i >= len(t.chars) {
		return model.Point{}, fmt.Errorf("memdoc: char index %d out of range", i)
	}
	return t.chars[i].Origin, nil
}

// CharIndexAtPoint returns the index of the character whose box
// contains p. When no box contains it, the nearest character within
// the tolerances wins. Returns -1 when nothing is close enough.
func (t *TextPage) CharIndexAtPoint(p model.Point, xTolerance, yTolerance float64) int {
	best := -1
	bestDist := 0.0
	for i, c := range t.chars {
		dx := axisDistance(p.X, c.Box.Left, c.Box.Right)
		dy := axisDistance(p.Y, c.Box.Top, c.Box.Bottom)
		if dx == 0 && dy == 0 {
			return i
		}
		if dx > xTolerance || dy > yTolerance {
			continue
		}
		if d := dx*dx + dy*dy; best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// axisDistance is the distance from v to the interval [lo, hi], zero
// when v lies inside it.
func axisDistance(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	}
	return 0
}

// FontSize returns the font size of the character at index i, or 0
// when i is out of range.
func (t *TextPage) FontSize(i int) float64 {
	if i < 0 || i >= len(t.chars) {
		return 0
	}
	return t.chars[i].Size
}
