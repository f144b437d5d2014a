package folio

import (
	"strings"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/text"
)

// Width returns the page width in whole points.
func (p *Page) Width() int { return int(p.page.Width()) }

// Height returns the page height in whole points.
func (p *Page) Height() int { return int(p.page.Height()) }

// Dimensions returns the page as a device rectangle anchored at the
// origin.
func (p *Page) Dimensions() model.DeviceRect {
	return model.DeviceRect{Left: 0, Top: 0, Right: p.Width(), Bottom: p.Height()}
}

// ensureText loads the text layer on first use. A page whose backend
// has no text layer is remembered as failed and reports a character
// count of -1 from then on.
func (p *Page) ensureText() {
	if p.textState != 0 {
		return
	}
	t := p.page.Text()
	if t == nil {
		p.textState = -1
		p.log.Printf("folio: page has no text layer")
		return
	}
	p.textState = 1
	p.text = t
	p.charCount = t.CharCount()
}

// CharCount returns the number of characters on the page, or -1 when
// the page has no text layer.
func (p *Page) CharCount() int {
	p.ensureText()
	if p.textState < 0 {
		return -1
	}
	return p.charCount
}

// CharAt returns the character at index i, or 0 when i is out of range
// or the page has no text layer.
func (p *Page) CharAt(i int) rune {
	p.ensureText()
	if p.textState < 0 {
		return 0
	}
	return p.text.CharUnicode(i)
}

// FirstPrintableIndex returns the index of the first character that is
// not a word break, or -1 when the page has none. The result is
// computed once and cached.
func (p *Page) FirstPrintableIndex() int {
	if !p.firstScanned {
		p.firstScanned = true
		n := p.CharCount()
		i := 0
		for i < n && text.IsWordBreak(p.CharAt(i)) {
			i++
		}
		if i < n {
			p.firstPrintable = i
		}
	}
	return p.firstPrintable
}

// LastPrintableIndex returns the index of the last character that is
// not a word break, or -1 when the page has none. The result is
// computed once and cached.
func (p *Page) LastPrintableIndex() int {
	if !p.lastScanned {
		p.lastScanned = true
		i := p.CharCount() - 1
		for i >= 0 && text.IsWordBreak(p.CharAt(i)) {
			i--
		}
		if i >= 0 {
			p.lastPrintable = i
		}
	}
	return p.lastPrintable
}

// Text returns the page text between the first and last printable
// characters.
func (p *Page) Text() string {
	return p.TextBetween(p.FirstPrintableIndex(), p.LastPrintableIndex()+1)
}

// TextBetween returns the page characters in the half-open index range
// [start, stop).
func (p *Page) TextBetween(start, stop int) string {
	var b strings.Builder
	for i := start; i < stop; i++ {
		b.WriteRune(p.CharAt(i))
	}
	return b.String()
}

// FontSizeAt returns the font size of the character at index i in
// points, or 0 when the page has no text layer.
func (p *Page) FontSizeAt(i int) float64 {
	p.ensureText()
	if p.textState < 0 {
		return 0
	}
	return p.text.FontSize(i)
}

// charBox returns the page-space bounding box of the character at
// index i, or a zero rect when it cannot be read.
func (p *Page) charBox(i int) model.Rect {
	p.ensureText()
	if p.textState < 0 {
		return model.Rect{}
	}
	box, err := p.text.CharBox(i)
	if err != nil {
		p.log.Printf("folio: char box at %d: %v", i, err)
		return model.Rect{}
	}
	return box
}

// charOrigin returns the page-space baseline origin of the character
// at index i.
func (p *Page) charOrigin(i int) model.Point {
	p.ensureText()
	if p.textState < 0 {
		return model.Point{}
	}
	origin, err := p.text.CharOrigin(i)
	if err != nil {
		p.log.Printf("folio: char origin at %d: %v", i, err)
		return model.Point{}
	}
	return origin
}

// PageToDevice converts a page-space point to device space, flipping
// the y axis about the page height.
func (p *Page) PageToDevice(pt model.Point) model.DevicePoint {
	return model.DevicePoint{X: int(pt.X), Y: int(p.page.Height() - pt.Y)}
}

// DeviceToPage converts a device-space point back to page space.
func (p *Page) DeviceToPage(pt model.DevicePoint) model.Point {
	return model.Point{X: float64(pt.X), Y: p.page.Height() - float64(pt.Y)}
}

// pageToDeviceF is PageToDevice without the truncation to whole
// pixels.
func (p *Page) pageToDeviceF(pt model.Point) model.Point {
	return model.Point{X: pt.X, Y: p.page.Height() - pt.Y}
}

// ToDeviceRect converts a page-space rectangle to a device rectangle,
// clipped to the page.
func (p *Page) ToDeviceRect(r model.Rect) model.DeviceRect {
	a := p.pageToDeviceF(model.Point{X: r.Left, Y: r.Top})
	b := p.pageToDeviceF(model.Point{X: r.Right, Y: r.Bottom})
	dr := model.DeviceRectFrom(
		model.DevicePoint{X: int(a.X), Y: int(a.Y)},
		model.DevicePoint{X: int(b.X), Y: int(b.Y)},
	)
	return dr.Intersect(p.Dimensions())
}

// TextBounds returns the device-space rectangles covering the
// characters in [start, stop). A new rectangle is started at every
// line break so that a range spanning lines yields one box per line.
func (p *Page) TextBounds(start, stop int) []model.DeviceRect {
	var out []model.DeviceRect
	var cur model.Rect
	haveCur := false
	for i := start; i < stop; i++ {
		if text.IsLineBreak(p.CharAt(i)) {
			if haveCur {
				out = append(out, p.ToDeviceRect(cur))
				haveCur = false
			}
			continue
		}
		box := p.charBox(i)
		if box.IsEmpty() {
			continue
		}
		if haveCur {
			cur = cur.Union(box)
		} else {
			cur = box
			haveCur = true
		}
	}
	if haveCur {
		out = append(out, p.ToDeviceRect(cur))
	}
	return out
}

// NotifyInvalidRect merges the page-space rectangle rect into the
// accumulated invalidated region, converting it to device space
// first. Rectangles with a negative coordinate or without area are
// ignored. When no region is pending the first rectangle is stored
// as-is; unioning it with an empty rectangle would drag the region's
// corner to the origin.
func (p *Page) NotifyInvalidRect(rect model.Rect) {
	if rect.Left < 0 || rect.Top < 0 || rect.Right < 0 || rect.Bottom < 0 {
		return
	}
	if rect.Right <= rect.Left || rect.Bottom <= rect.Top {
		return
	}
	device := p.ToDeviceRect(rect)
	if p.hasInvalid {
		p.invalid = p.invalid.Union(device)
	} else {
		p.invalid = device
		p.hasInvalid = true
	}
}

// HasInvalidRect reports whether any invalidated region is pending.
func (p *Page) HasInvalidRect() bool { return p.hasInvalid }

// ConsumeInvalidRect returns the pending invalidated region and
// clears it.
func (p *Page) ConsumeInvalidRect() model.DeviceRect {
	r := p.invalid
	p.invalid = model.DeviceRect{}
	p.hasInvalid = false
	return r
}

// AltText returns the page's accessibility description, or "" when
// none is set.
func (p *Page) AltText() string {
	return p.page.AltText()
}
