package memdoc

import (
	"fmt"

	"github.com/tsawler/folio/backend"
	"github.com/tsawler/folio/model"
)

// Annotation is an in-memory page annotation.
type Annotation struct {
	page    *Page
	subtype backend.AnnotationSubtype

	rect       model.Rect
	color      model.Color
	hasColor   bool
	contents   string
	textColor  model.Color
	background model.Color
	rich       string
	quads      []model.Quad
	objects    []*Object
}

// Subtype reports the annotation's kind.
func (a *Annotation) Subtype() backend.AnnotationSubtype { return a.subtype }

// Rect returns the annotation's bounding rectangle.
func (a *Annotation) Rect() (model.Rect, error) { return a.rect, nil }

// SetRect replaces the annotation's bounding rectangle.
func (a *Annotation) SetRect(r model.Rect) error {
	a.rect = r
	return nil
}

// Color returns the annotation's primary color. Reading a color that
// was never set is an error, matching renderers that distinguish a
// missing color entry from black.
func (a *Annotation) Color() (model.Color, error) {
	if !a.hasColor {
		return model.Color{}, fmt.Errorf("memdoc: annotation has no color")
	}
	return a.color, nil
}

// SetColor replaces the annotation's primary color.
func (a *Annotation) SetColor(c model.Color) error {
	a.color = c
	a.hasColor = true
	return nil
}

// Contents returns the annotation's text contents.
func (a *Annotation) Contents() (string, error) { return a.contents, nil }

// SetContents replaces the annotation's text contents.
func (a *Annotation) SetContents(text string) error {
	a.contents = text
	return nil
}

// TextColor returns the text color of a free text annotation.
func (a *Annotation) TextColor() (model.Color, error) { return a.textColor, nil }

// SetTextColor replaces the text color of a free text annotation.
func (a *Annotation) SetTextColor(c model.Color) error {
	a.textColor = c
	return nil
}

// BackgroundColor returns the fill color behind a free text annotation.
func (a *Annotation) BackgroundColor() (model.Color, error) { return a.background, nil }

// SetBackgroundColor replaces the fill color behind a free text
// annotation.
func (a *Annotation) SetBackgroundColor(c model.Color) error {
	a.background = c
	return nil
}

// RichContent returns the annotation's rich content markup.
func (a *Annotation) RichContent() (string, error) { return a.rich, nil }

// SetRichContent replaces the annotation's rich content markup.
func (a *Annotation) SetRichContent(markup string) error {
	a.rich = markup
	return nil
}

// QuadCount returns the number of attachment quads.
func (a *Annotation) QuadCount() int { return len(a.quads) }

// Quad returns the attachment quad at index i.
func (a *Annotation) Quad(i int) (model.Quad, error) {
	if i < 0 || i >= len(a.quads) {
		return model.Quad{}, fmt.Errorf("memdoc: quad index %d out of range", i)
	}
	return a.quads[i], nil
}

// SetQuad overwrites the attachment quad at index i.
func (a *Annotation) SetQuad(i int, q model.Quad) error {
	if i < 0 || i >= len(a.quads) {
		return fmt.Errorf("memdoc: quad index %d out of range", i)
	}
	a.quads[i] = q
	return nil
}

// AppendQuad adds a quad after the existing ones.
func (a *Annotation) AppendQuad(q model.Quad) error {
	a.quads = append(a.quads, q)
	return nil
}

// ObjectCount returns the number of page objects attached to the
// annotation.
func (a *Annotation) ObjectCount() int { return len(a.objects) }

// Object returns the attached object at index i, or nil if i is out
// of range.
func (a *Annotation) Object(i int) backend.Object {
	if i < 0 || i >= len(a.objects) {
		return nil
	}
	return a.objects[i]
}

// AppendObject attaches obj to the annotation.
func (a *Annotation) AppendObject(obj backend.Object) error {
	o, ok := obj.(*Object)
	if !ok || o == nil {
		return fmt.Errorf("memdoc: object is not a memdoc object")
	}
	if o.owned {
		return fmt.Errorf("memdoc: object is already owned")
	}
	o.owned = true
	a.objects = append(a.objects, o)
	return nil
}

// RemoveObject detaches and destroys the object at index i.
func (a *Annotation) RemoveObject(i int) error {
	if i < 0 || i >= len(a.objects) {
		return fmt.Errorf("memdoc: object index %d out of range", i)
	}
	a.objects[i].owned = false
	a.objects = append(a.objects[:i], a.objects[i+1:]...)
	return nil
}
