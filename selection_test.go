package folio

import (
	"testing"

	"github.com/tsawler/folio/backend/memdoc"
	"github.com/tsawler/folio/model"
)

func TestSelectWordAt(t *testing.T) {
	_, _, p := newLetterPage("Hello World")

	// Center of 'W' (index 6): page (75, 705), device y = 792-705.
	start, stop, ok := p.SelectWordAt(model.DevicePoint{X: 75, Y: 87})
	if !ok {
		t.Fatal("SelectWordAt over a word = false")
	}
	if start.Index != 6 || stop.Index != 11 {
		t.Errorf("boundaries = [%d, %d), want [6, 11)", start.Index, stop.Index)
	}
	if start.IsRTL || stop.IsRTL {
		t.Error("IsRTL = true for English text")
	}
	// Start caret sits on the left edge of 'W' at its baseline.
	if start.Point.X != 70 || start.Point.Y != 92 {
		t.Errorf("start point = %+v, want {70 92}", start.Point)
	}
	// Stop is past the last char, so it uses the right edge of 'd'.
	if stop.Point.X != 120 {
		t.Errorf("stop point x = %d, want 120", stop.Point.X)
	}
}

func TestSelectWordAtWhitespaceFails(t *testing.T) {
	_, _, p := newLetterPage("Hello World")
	// Over the space between the words: page (65, 705).
	if _, _, ok := p.SelectWordAt(model.DevicePoint{X: 65, Y: 87}); ok {
		t.Error("SelectWordAt over whitespace = true, want false")
	}
}

func TestSelectWordAtNowhereFails(t *testing.T) {
	_, _, p := newLetterPage("Hello World")
	if _, _, ok := p.SelectWordAt(model.DevicePoint{X: 400, Y: 400}); ok {
		t.Error("SelectWordAt far from text = true, want false")
	}
}

func TestWordIndexes(t *testing.T) {
	_, _, p := newLetterPage("Hello World")
	tests := []struct {
		name      string
		index     int
		wantStart int
		wantStop  int
	}{
		{"Start of first word", 0, 0, 5},
		{"Middle of first word", 2, 0, 5},
		{"Middle of second word", 8, 6, 11},
		{"Last char", 10, 6, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.WordStartIndex(tt.index); got != tt.wantStart {
				t.Errorf("WordStartIndex(%d) = %d, want %d", tt.index, got, tt.wantStart)
			}
			if got := p.WordStopIndex(tt.index); got != tt.wantStop {
				t.Errorf("WordStopIndex(%d) = %d, want %d", tt.index, got, tt.wantStop)
			}
		})
	}
}

// rtlPage lays out a two character Hebrew word right to left: the
// first character in reading order sits to the right of the second.
func rtlPage() *Page {
	doc := memdoc.New()
	page := doc.AddPage(612, 792)
	tp := memdoc.NewTextPage()
	tp.Append(memdoc.Char{
		R:      'א',
		Box:    model.RectFrom(50, 700, 60, 710),
		Origin: model.Point{X: 50, Y: 700},
		Size:   12,
	})
	tp.Append(memdoc.Char{
		R:      'ב',
		Box:    model.RectFrom(40, 700, 50, 710),
		Origin: model.Point{X: 40, Y: 700},
		Size:   12,
	})
	page.SetText(tp)
	return New(doc, page)
}

func TestSelectWordRTL(t *testing.T) {
	p := rtlPage()
	start, stop, ok := p.SelectWordAt(model.DevicePoint{X: 55, Y: 87})
	if !ok {
		t.Fatal("SelectWordAt over RTL word = false")
	}
	if !start.IsRTL || !stop.IsRTL {
		t.Error("IsRTL = false for Hebrew word")
	}
	// In RTL the start caret sits on the right edge of the first
	// character, and the stop caret on the left edge of the last.
	if start.Index != 0 || start.Point.X != 60 {
		t.Errorf("start = index %d x %d, want index 0 x 60", start.Index, start.Point.X)
	}
	if stop.Index != 2 || stop.Point.X != 40 {
		t.Errorf("stop = index %d x %d, want index 2 x 40", stop.Index, stop.Point.X)
	}
}

func TestBoundaryAtPoint(t *testing.T) {
	_, _, p := newLetterPage("Hello World")
	// Nearest caret to a point just left of 'H' is index 0.
	b := p.BoundaryAtPoint(model.DevicePoint{X: 8, Y: 92})
	if b.Index != 0 {
		t.Errorf("BoundaryAtPoint near start: index %d, want 0", b.Index)
	}
	// Nearest caret to a point past the end is index 11.
	b = p.BoundaryAtPoint(model.DevicePoint{X: 130, Y: 92})
	if b.Index != 11 {
		t.Errorf("BoundaryAtPoint past end: index %d, want 11", b.Index)
	}
}

func TestConstrainBoundaryClamps(t *testing.T) {
	_, _, p := newLetterPage("Hello World")
	b := p.ConstrainBoundary(SelectionBoundary{Index: 99})
	if b.Index != 11 {
		t.Errorf("ConstrainBoundary(index 99) = %d, want 11", b.Index)
	}
	b = p.ConstrainBoundary(SelectionBoundary{Index: -1, Point: model.DevicePoint{X: 8, Y: 92}})
	if b.Index != 0 {
		t.Errorf("ConstrainBoundary(point near start) = %d, want 0", b.Index)
	}
}
