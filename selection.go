package folio

import (
	"math"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/text"
)

// SelectionBoundary is a caret position between characters. Index is
// the character index the caret precedes, Point is the caret's device
// position, and IsRTL reports whether the surrounding word reads right
// to left.
type SelectionBoundary struct {
	Index int
	Point model.DevicePoint
	IsRTL bool
}

// SelectWordAt selects the word under the device point pt, within the
// configured finger tolerance. It reports false when the point is not
// over a word character.
func (p *Page) SelectWordAt(pt model.DevicePoint) (start, stop SelectionBoundary, ok bool) {
	p.ensureText()
	if p.textState < 0 {
		return SelectionBoundary{}, SelectionBoundary{}, false
	}
	charPoint := p.DeviceToPage(pt)
	index := p.text.CharIndexAtPoint(charPoint, p.fingerTolerance, p.fingerTolerance)
	if index < 0 || text.IsWordBreak(p.CharAt(index)) {
		return SelectionBoundary{}, SelectionBoundary{}, false
	}
	start = p.ConstrainBoundary(SelectionBoundary{Index: p.WordStartIndex(index)})
	stop = p.ConstrainBoundary(SelectionBoundary{Index: p.WordStopIndex(index)})
	return start, stop, true
}

// ConstrainBoundary snaps boundary to a well defined caret position.
// A boundary with a negative index is resolved from its point to the
// nearest caret; one with an index is clamped to the printable range
// and given the caret point at that index.
func (p *Page) ConstrainBoundary(boundary SelectionBoundary) SelectionBoundary {
	if boundary.Index < 0 {
		return p.BoundaryAtPoint(boundary.Point)
	}
	index := max(boundary.Index, p.FirstPrintableIndex())
	index = min(index, p.LastPrintableIndex()+1)
	return p.BoundaryAtIndex(index)
}

// BoundaryAtIndex returns the caret at the given character index,
// detecting the direction of the surrounding word.
func (p *Page) BoundaryAtIndex(index int) SelectionBoundary {
	return p.boundaryAtIndex(index, p.isRTLAt(index))
}

// isRTLAt reports whether the word containing index reads right to
// left, judged by comparing the positions of the word's end characters
// on the page. A word of one character gives no signal and is treated
// as left to right.
func (p *Page) isRTLAt(index int) bool {
	start := p.WordStartIndex(index)
	stop := p.WordStopIndex(index)
	if stop-start <= 1 {
		return false
	}
	startBounds := p.charDeviceBounds(start)
	stopBounds := p.charDeviceBounds(stop - 1)
	return startBounds.Center().X > stopBounds.Center().X
}

// boundaryAtIndex aligns the caret on the start edge of the character
// at index. Word breaks may have no useful bounding box, so when the
// next character is unprintable (or index is past the last character)
// the end edge of the previous character is used instead. The caret's
// y is the character's baseline, not the bottom of its box.
func (p *Page) boundaryAtIndex(index int, isRTL bool) SelectionBoundary {
	charIndex := index
	useEndEdge := false
	if index == p.CharCount() || text.IsWordBreak(p.CharAt(index)) {
		charIndex = index - 1
		useEndEdge = true
	}
	useRightEdge := useEndEdge != isRTL

	bounds := p.charDeviceBounds(charIndex)
	x := bounds.Left
	if useRightEdge {
		x = bounds.Right
	}
	return SelectionBoundary{
		Index: index,
		Point: model.DevicePoint{X: x, Y: p.charDeviceOrigin(charIndex).Y},
		IsRTL: isRTL,
	}
}

// BoundaryAtPoint returns the caret nearest to the device point pt,
// considering every caret position adjacent to a word character. Word
// direction is recomputed only at the start of each word.
func (p *Page) BoundaryAtPoint(pt model.DevicePoint) SelectionBoundary {
	best := SelectionBoundary{Index: 0, Point: pt}
	bestDistSq := math.MaxInt

	prevIsWordChar := false
	isRTL := false
	for index := p.FirstPrintableIndex(); index <= p.LastPrintableIndex()+1; index++ {
		curIsWordChar := index <= p.LastPrintableIndex() && !text.IsWordBreak(p.CharAt(index))
		if curIsWordChar && !prevIsWordChar {
			isRTL = p.isRTLAt(index)
		}
		if curIsWordChar || prevIsWordChar {
			boundary := p.boundaryAtIndex(index, isRTL)
			dx := boundary.Point.X - pt.X
			dy := boundary.Point.Y - pt.Y
			if distSq := dx*dx + dy*dy; distSq < bestDistSq {
				best = boundary
				bestDistSq = distSq
			}
		}
		prevIsWordChar = curIsWordChar
	}
	return best
}

// WordStartIndex returns the index of the first character of the word
// containing index.
func (p *Page) WordStartIndex(index int) int {
	for index > 0 && !text.IsWordBreak(p.CharAt(index-1)) {
		index--
	}
	return index
}

// WordStopIndex returns the index just past the last character of the
// word containing index.
func (p *Page) WordStopIndex(index int) int {
	n := p.CharCount()
	for index < n && !text.IsWordBreak(p.CharAt(index)) {
		index++
	}
	return index
}

// charDeviceBounds returns the device-space bounding box of the
// character at index i, clipped to the page.
func (p *Page) charDeviceBounds(i int) model.DeviceRect {
	return p.ToDeviceRect(p.charBox(i))
}

// charDeviceOrigin returns the device-space baseline origin of the
// character at index i.
func (p *Page) charDeviceOrigin(i int) model.DevicePoint {
	return p.PageToDevice(p.charOrigin(i))
}
