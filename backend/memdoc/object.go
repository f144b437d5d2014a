package memdoc

import (
	"fmt"

	"github.com/tsawler/folio/backend"
	"github.com/tsawler/folio/model"
)

// Object is an in-memory page object.
type Object struct {
	kind   backend.ObjectKind
	matrix model.Matrix
	fill   model.Color
	stroke model.Color
	width  float64
	owned  bool
	closed bool

	segments   []model.PathSegment
	fillMode   bool
	strokeMode bool

	bitmap model.Bitmap

	text       string
	fontName   string
	fontSize   float64
	renderMode model.TextRenderMode
}

// Kind reports the object's content type.
func (o *Object) Kind() backend.ObjectKind { return o.kind }

// Bounds returns the object's untransformed bounding box. Path bounds
// span the segment coordinates, image bounds span the bitmap in unit
// pixels, and text bounds are estimated from the font metrics.
func (o *Object) Bounds() (model.Rect, error) {
	switch o.kind {
	case backend.KindPath:
		if len(o.segments) == 0 {
			return model.Rect{}, nil
		}
		left, top := o.segments[0].X, o.segments[0].Y
		right, bottom := left, top
		for _, s := range o.segments[1:] {
			left = min(left, s.X)
			right = max(right, s.X)
			top = min(top, s.Y)
			bottom = max(bottom, s.Y)
		}
		return model.RectFrom(left, top, right, bottom), nil
	case backend.KindImage:
		return model.RectFrom(0, 0, float64(o.bitmap.Width), float64(o.bitmap.Height)), nil
	case backend.KindText:
		width := 0.6 * o.fontSize * float64(len([]rune(o.text)))
		return model.RectFrom(0, 0, width, o.fontSize), nil
	}
	return model.Rect{}, fmt.Errorf("memdoc: object has no bounds")
}

// Matrix returns the object's transformation matrix.
func (o *Object) Matrix() (model.Matrix, error) { return o.matrix, nil }

// SetMatrix replaces the object's transformation matrix.
func (o *Object) SetMatrix(m model.Matrix) error {
	o.matrix = m
	return nil
}

// Transform post-multiplies m onto the object's current matrix.
func (o *Object) Transform(m model.Matrix) error {
	o.matrix = o.matrix.Mul(m)
	return nil
}

// FillColor returns the object's fill color.
func (o *Object) FillColor() (model.Color, error) { return o.fill, nil }

// SetFillColor replaces the object's fill color.
func (o *Object) SetFillColor(c model.Color) error {
	o.fill = c
	return nil
}

// StrokeColor returns the object's stroke color.
func (o *Object) StrokeColor() (model.Color, error) { return o.stroke, nil }

// SetStrokeColor replaces the object's stroke color.
func (o *Object) SetStrokeColor(c model.Color) error {
	o.stroke = c
	return nil
}

// StrokeWidth returns the object's stroke width.
func (o *Object) StrokeWidth() (float64, error) { return o.width, nil }

// SetStrokeWidth replaces the object's stroke width.
func (o *Object) SetStrokeWidth(w float64) error {
	o.width = w
	return nil
}

// Close releases an unowned object.
func (o *Object) Close() error {
	if o.owned {
		return fmt.Errorf("memdoc: cannot close an owned object")
	}
	if o.closed {
		return fmt.Errorf("memdoc: object already closed")
	}
	o.closed = true
	return nil
}

// Segments returns the path's segments.
func (o *Object) Segments() ([]model.PathSegment, error) {
	if o.kind != backend.KindPath {
		return nil, fmt.Errorf("memdoc: not a path object")
	}
	return append([]model.PathSegment(nil), o.segments...), nil
}

// SetSegments replaces the path's segments.
func (o *Object) SetSegments(segments []model.PathSegment) error {
	if o.kind != backend.KindPath {
		return fmt.Errorf("memdoc: not a path object")
	}
	if len(segments) == 0 || segments[0].Command != model.SegmentMove {
		return fmt.Errorf("memdoc: path must start with a move segment")
	}
	o.segments = append([]model.PathSegment(nil), segments...)
	return nil
}

// DrawMode reports whether the path is filled and stroked.
func (o *Object) DrawMode() (fill, stroke bool, err error) {
	if o.kind != backend.KindPath {
		return false, false, fmt.Errorf("memdoc: not a path object")
	}
	return o.fillMode, o.strokeMode, nil
}

// SetDrawMode sets whether the path is filled and stroked.
func (o *Object) SetDrawMode(fill, stroke bool) error {
	if o.kind != backend.KindPath {
		return fmt.Errorf("memdoc: not a path object")
	}
	o.fillMode, o.strokeMode = fill, stroke
	return nil
}

// Bitmap returns the image's pixels.
func (o *Object) Bitmap() (model.Bitmap, error) {
	if o.kind != backend.KindImage {
		return model.Bitmap{}, fmt.Errorf("memdoc: not an image object")
	}
	return o.bitmap, nil
}

// SetBitmap replaces the image's pixels.
func (o *Object) SetBitmap(bitmap model.Bitmap) error {
	if o.kind != backend.KindImage {
		return fmt.Errorf("memdoc: not an image object")
	}
	if bitmap.IsEmpty() {
		return fmt.Errorf("memdoc: image bitmap is empty")
	}
	o.bitmap = bitmap
	return nil
}

// Text returns the object's text content.
func (o *Object) Text() (string, error) {
	if o.kind != backend.KindText {
		return "", fmt.Errorf("memdoc: not a text object")
	}
	return o.text, nil
}

// SetText replaces the object's text content.
func (o *Object) SetText(text string) error {
	if o.kind != backend.KindText {
		return fmt.Errorf("memdoc: not a text object")
	}
	o.text = text
	return nil
}

// FontName returns the PostScript name of the object's font.
func (o *Object) FontName() (string, error) {
	if o.kind != backend.KindText {
		return "", fmt.Errorf("memdoc: not a text object")
	}
	return o.fontName, nil
}

// FontSize returns the object's font size.
func (o *Object) FontSize() (float64, error) {
	if o.kind != backend.KindText {
		return 0, fmt.Errorf("memdoc: not a text object")
	}
	return o.fontSize, nil
}

// RenderMode returns how the text is painted.
func (o *Object) RenderMode() (model.TextRenderMode, error) {
	if o.kind != backend.KindText {
		return model.RenderModeUnknown, fmt.Errorf("memdoc: not a text object")
	}
	return o.renderMode, nil
}

// SetRenderMode replaces how the text is painted.
func (o *Object) SetRenderMode(mode model.TextRenderMode) error {
	if o.kind != backend.KindText {
		return fmt.Errorf("memdoc: not a text object")
	}
	switch mode {
	case model.RenderModeFill, model.RenderModeStroke, model.RenderModeFillStroke:
	default:
		return fmt.Errorf("memdoc: unsupported text render mode %d", mode)
	}
	o.renderMode = mode
	return nil
}
