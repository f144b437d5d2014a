package memdoc

import (
	"fmt"

	"github.com/tsawler/folio/backend"
	"github.com/tsawler/folio/model"
)

// standardFonts lists the base-14 font names accepted by CreateText.
var standardFonts = map[string]bool{
	"Courier":               true,
	"Courier-Bold":          true,
	"Courier-Oblique":       true,
	"Courier-BoldOblique":   true,
	"Helvetica":             true,
	"Helvetica-Bold":        true,
	"Helvetica-Oblique":     true,
	"Helvetica-BoldOblique": true,
	"Times-Roman":           true,
	"Times-Bold":            true,
	"Times-Italic":          true,
	"Times-BoldItalic":      true,
	"Symbol":                true,
	"ZapfDingbats":          true,
}

// Document is an in-memory document. The zero value is empty and
// ready to use.
type Document struct {
	pages []*Page
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// AddPage appends a page with the given dimensions in points and
// returns it.
func (d *Document) AddPage(width, height float64) *Page {
	p := &Page{width: width, height: height}
	d.pages = append(d.pages, p)
	return p
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Page returns the page at index i, or nil if i is out of range.
func (d *Document) Page(i int) *Page {
	if i < 0 || i >= len(d.pages) {
		return nil
	}
	return d.pages[i]
}

// CreatePath builds an unowned path object from segments.
func (d *Document) CreatePath(segments []model.PathSegment) (backend.Object, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("memdoc: path needs at least one segment")
	}
	if segments[0].Command != model.SegmentMove {
		return nil, fmt.Errorf("memdoc: path must start with a move segment")
	}
	obj := &Object{
		kind:     backend.KindPath,
		matrix:   model.Identity(),
		segments: append([]model.PathSegment(nil), segments...),
		fillMode: true,
	}
	return obj, nil
}

// CreateImage builds an unowned image object from a bitmap.
func (d *Document) CreateImage(bitmap model.Bitmap) (backend.Object, error) {
	if bitmap.IsEmpty() {
		return nil, fmt.Errorf("memdoc: image bitmap is empty")
	}
	obj := &Object{
		kind:   backend.KindImage,
		matrix: model.Identity(),
		bitmap: bitmap,
	}
	return obj, nil
}

// CreateText builds an unowned text object. font must be one of the
// base-14 font names.
func (d *Document) CreateText(font string, fontSize float64, text string) (backend.Object, error) {
	if !standardFonts[font] {
		return nil, fmt.Errorf("memdoc: unknown font %q", font)
	}
	if fontSize <= 0 {
		return nil, fmt.Errorf("memdoc: font size %v out of range", fontSize)
	}
	obj := &Object{
		kind:       backend.KindText,
		matrix:     model.Identity(),
		text:       text,
		fontName:   font,
		fontSize:   fontSize,
		renderMode: model.RenderModeFill,
	}
	return obj, nil
}
