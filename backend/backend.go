package backend

import (
	"github.com/tsawler/folio/model"
)

// ObjectKind identifies the content type of a page object.
type ObjectKind int

const (
	// KindUnknown is reported for object types the engine does not handle.
	KindUnknown ObjectKind = iota
	// KindPath is a vector path built from move and line segments.
	KindPath
	// KindImage is a raster image placed on the page.
	KindImage
	// KindText is a run of text drawn with a named font.
	KindText
)

// AnnotationSubtype identifies the kind of a page annotation.
type AnnotationSubtype int

const (
	// SubtypeUnknown is reported for annotation subtypes the engine
	// does not handle.
	SubtypeUnknown AnnotationSubtype = iota
	// SubtypeStamp holds arbitrary page objects as its appearance.
	SubtypeStamp
	// SubtypeHighlight marks regions of text with a translucent color.
	SubtypeHighlight
	// SubtypeFreeText places free-standing text directly on the page.
	SubtypeFreeText
)

// Document creates page objects that can later be attached to a page
// or to a stamp annotation. A freshly created object is unowned until
// it is inserted; the caller must either insert it or close it.
type Document interface {
	// CreatePath builds a path object from segments. The first segment
	// of a subpath must be a move command.
	CreatePath(segments []model.PathSegment) (Object, error)

	// CreateImage builds an image object from a decoded bitmap.
	CreateImage(bitmap model.Bitmap) (Object, error)

	// CreateText builds a text object using a standard font name such
	// as "Helvetica-Bold".
	CreateText(font string, fontSize float64, text string) (Object, error)
}

// Page is a single page of the backing document.
type Page interface {
	// Width returns the page width in points.
	Width() float64

	// Height returns the page height in points.
	Height() float64

	// Text loads the page's text layer, or returns nil if the page has
	// none. The returned value stays valid for the life of the page.
	Text() TextPage

	// ObjectCount returns the number of page objects in the backing store.
	ObjectCount() int

	// Object returns the page object at index i, or nil if i is out of
	// range or the object cannot be loaded.
	Object(i int) Object

	// InsertObject appends obj to the page content. The page takes
	// ownership of obj.
	InsertObject(obj Object) error

	// RemoveObject detaches obj from the page content. The caller
	// regains ownership.
	RemoveObject(obj Object) error

	// GenerateContent rewrites the page content stream after object or
	// annotation edits.
	GenerateContent() error

	// AnnotationCount returns the number of annotations on the page.
	AnnotationCount() int

	// Annotation returns the annotation at index i, or nil if i is out
	// of range.
	Annotation(i int) Annotation

	// CreateAnnotation adds a new empty annotation of the given subtype
	// to the page and returns it.
	CreateAnnotation(subtype AnnotationSubtype) (Annotation, error)

	// AnnotationIndex returns the index of annot on the page, or -1 if
	// annot is not attached to this page.
	AnnotationIndex(annot Annotation) int

	// RemoveAnnotation deletes the annotation at index i.
	RemoveAnnotation(i int) error

	// AltText returns the page's accessibility description, or "" when
	// none is set.
	AltText() string
}

// TextPage exposes the character layer of a page. Characters are
// indexed in reading order; boxes and origins are in page space.
type TextPage interface {
	// CharCount returns the number of characters on the page.
	CharCount() int

	// CharUnicode returns the character at index i.
	CharUnicode(i int) rune

	// CharBox returns the tight bounding box of the character at index i.
	CharBox(i int) (model.Rect, error)

	// CharOrigin returns the baseline origin of the character at index i.
	CharOrigin(i int) (model.Point, error)

	// CharIndexAtPoint returns the index of the character whose box
	// contains p, searching within the given tolerances, or -1 when no
	// character is close enough.
	CharIndexAtPoint(p model.Point, xTolerance, yTolerance float64) int

	// FontSize returns the font size of the character at index i, in
	// points.
	FontSize(i int) float64
}

// Object is a single piece of page content. Kind-specific data is
// reached through the PathData, ImageData, and TextData extension
// interfaces.
type Object interface {
	// Kind reports the object's content type.
	Kind() ObjectKind

	// Bounds returns the object's bounding box in its own coordinate
	// space, before the object matrix is applied.
	Bounds() (model.Rect, error)

	// Matrix returns the object's current transformation matrix.
	Matrix() (model.Matrix, error)

	// SetMatrix replaces the object's transformation matrix.
	SetMatrix(m model.Matrix) error

	// Transform post-multiplies m onto the object's current matrix.
	Transform(m model.Matrix) error

	// FillColor returns the object's fill color.
	FillColor() (model.Color, error)

	// SetFillColor replaces the object's fill color.
	SetFillColor(c model.Color) error

	// StrokeColor returns the object's stroke color.
	StrokeColor() (model.Color, error)

	// SetStrokeColor replaces the object's stroke color.
	SetStrokeColor(c model.Color) error

	// StrokeWidth returns the object's stroke width in points.
	StrokeWidth() (float64, error)

	// SetStrokeWidth replaces the object's stroke width.
	SetStrokeWidth(w float64) error

	// Close releases an object that was created but never inserted.
	// Closing an owned object is an error.
	Close() error
}

// PathData is implemented by path objects.
type PathData interface {
	// Segments returns the path's segments in drawing order.
	Segments() ([]model.PathSegment, error)

	// SetSegments replaces the path's segments.
	SetSegments(segments []model.PathSegment) error

	// DrawMode reports whether the path is filled and whether it is
	// stroked.
	DrawMode() (fill, stroke bool, err error)

	// SetDrawMode sets whether the path is filled and stroked.
	SetDrawMode(fill, stroke bool) error
}

// ImageData is implemented by image objects.
type ImageData interface {
	// Bitmap returns the image's decoded pixels.
	Bitmap() (model.Bitmap, error)

	// SetBitmap replaces the image's pixels.
	SetBitmap(bitmap model.Bitmap) error
}

// TextData is implemented by text objects.
type TextData interface {
	// Text returns the object's text content.
	Text() (string, error)

	// SetText replaces the object's text content.
	SetText(text string) error

	// FontName returns the PostScript name of the object's font.
	FontName() (string, error)

	// FontSize returns the object's font size in points.
	FontSize() (float64, error)

	// RenderMode returns how the text is painted.
	RenderMode() (model.TextRenderMode, error)

	// SetRenderMode replaces how the text is painted.
	SetRenderMode(mode model.TextRenderMode) error
}

// Annotation is a single page annotation. Quad and object accessors
// are only meaningful for the subtypes that carry them: highlights
// store quads, stamps store page objects.
type Annotation interface {
	// Subtype reports the annotation's kind.
	Subtype() AnnotationSubtype

	// Rect returns the annotation's bounding rectangle in page space.
	Rect() (model.Rect, error)

	// SetRect replaces the annotation's bounding rectangle.
	SetRect(r model.Rect) error

	// Color returns the annotation's primary color.
	Color() (model.Color, error)

	// SetColor replaces the annotation's primary color.
	SetColor(c model.Color) error

	// Contents returns the annotation's text contents.
	Contents() (string, error)

	// SetContents replaces the annotation's text contents.
	SetContents(text string) error

	// TextColor returns the text color of a free text annotation.
	TextColor() (model.Color, error)

	// SetTextColor replaces the text color of a free text annotation.
	SetTextColor(c model.Color) error

	// BackgroundColor returns the fill color behind a free text
	// annotation.
	BackgroundColor() (model.Color, error)

	// SetBackgroundColor replaces the fill color behind a free text
	// annotation.
	SetBackgroundColor(c model.Color) error

	// RichContent returns the annotation's rich content markup, or ""
	// when none is set.
	RichContent() (string, error)

	// SetRichContent replaces the annotation's rich content markup.
	SetRichContent(markup string) error

	// QuadCount returns the number of attachment quads.
	QuadCount() int

	// Quad returns the attachment quad at index i.
	Quad(i int) (model.Quad, error)

	// SetQuad overwrites the attachment quad at index i.
	SetQuad(i int, q model.Quad) error

	// AppendQuad adds a quad after the existing ones.
	AppendQuad(q model.Quad) error

	// ObjectCount returns the number of page objects attached to the
	// annotation.
	ObjectCount() int

	// Object returns the attached object at index i, or nil if i is
	// out of range.
	Object(i int) Object

	// AppendObject attaches obj to the annotation, which takes
	// ownership of it.
	AppendObject(obj Object) error

	// RemoveObject detaches and destroys the object at index i.
	RemoveObject(i int) error
}
