package memdoc

import (
	"fmt"

	"github.com/tsawler/folio/backend"
)

// Page is an in-memory page.
type Page struct {
	width, height float64
	text          *TextPage
	objects       []*Object
	annots        []*Annotation
	altText       string

	generations int

	// InsertErr, when set, is returned by InsertObject. Tests use it to
	// exercise failure paths.
	InsertErr error
}

// Width returns the page width in points.
func (p *Page) Width() float64 { return p.width }

// Height returns the page height in points.
func (p *Page) Height() float64 { return p.height }

// SetText installs a text layer on the page.
func (p *Page) SetText(t *TextPage) { p.text = t }

// SetAltText sets the page's accessibility description.
func (p *Page) SetAltText(s string) { p.altText = s }

// AltText returns the page's accessibility description.
func (p *Page) AltText() string { return p.altText }

// Text returns the page's text layer, or nil when none is installed.
func (p *Page) Text() backend.TextPage {
	if p.text == nil {
		return nil
	}
	return p.text
}

// ObjectCount returns the number of page objects.
func (p *Page) ObjectCount() int { return len(p.objects) }

// Object returns the page object at index i, or nil if i is out of
// range.
func (p *Page) Object(i int) backend.Object {
	if i < 0 || i >= len(p.objects) {
		return nil
	}
	return p.objects[i]
}

// InsertObject appends obj to the page content.
func (p *Page) InsertObject(obj backend.Object) error {
	if p.InsertErr != nil {
		return p.InsertErr
	}
	o, ok := obj.(*Object)
	if !ok || o == nil {
		return fmt.Errorf("memdoc: object is not a memdoc object")
	}
	if o.owned {
		return fmt.Errorf("memdoc: object is already owned")
	}
	o.owned = true
	p.objects = append(p.objects, o)
	return nil
}

// RemoveObject detaches obj from the page content.
func (p *Page) RemoveObject(obj backend.Object) error {
	o, ok := obj.(*Object)
	if !ok || o == nil {
		return fmt.Errorf("memdoc: object is not a memdoc object")
	}
	for i, cur := range p.objects {
		if cur == o {
			p.objects = append(p.objects[:i], p.objects[i+1:]...)
			o.owned = false
			return nil
		}
	}
	return fmt.Errorf("memdoc: object is not on this page")
}

// GenerateContent records that the content stream was rewritten.
func (p *Page) GenerateContent() error {
	p.generations++
	return nil
}

// Generations returns how many times GenerateContent has run. Tests
// use it to confirm edits were flushed.
func (p *Page) Generations() int { return p.generations }

// AnnotationCount returns the number of annotations on the page.
func (p *Page) AnnotationCount() int { return len(p.annots) }

// Annotation returns the annotation at index i, or nil if i is out of
// range.
func (p *Page) Annotation(i int) backend.Annotation {
	if i < 0 || i >= len(p.annots) {
		return nil
	}
	return p.annots[i]
}

// CreateAnnotation adds a new empty annotation of the given subtype.
func (p *Page) CreateAnnotation(subtype backend.AnnotationSubtype) (backend.Annotation, error) {
	switch subtype {
	case backend.SubtypeStamp, backend.SubtypeHighlight, backend.SubtypeFreeText:
	default:
		return nil, fmt.Errorf("memdoc: unsupported annotation subtype %d", subtype)
	}
	a := &Annotation{page: p, subtype: subtype}
	p.annots = append(p.annots, a)
	return a, nil
}

// AnnotationIndex returns the index of annot, or -1 if annot is not on
// this page.
func (p *Page) AnnotationIndex(annot backend.Annotation) int {
	a, ok := annot.(*Annotation)
	if !ok {
		return -1
	}
	for i, cur := range p.annots {
		if cur == a {
			return i
		}
	}
	return -1
}

// RemoveAnnotation deletes the annotation at index i.
func (p *Page) RemoveAnnotation(i int) error {
	if i < 0 || i >= len(p.annots) {
		return fmt.Errorf("memdoc: annotation index %d out of range", i)
	}
	p.annots[i].page = nil
	p.annots = append(p.annots[:i], p.annots[i+1:]...)
	return nil
}
