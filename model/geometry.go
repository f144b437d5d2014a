package model

// Point is a location in page space.
type Point struct {
	X, Y float64
}

// DevicePoint is a location in device space.
type DevicePoint struct {
	X, Y int
}

// Rect is a rectangle in page space. It is kept in a normalized form where
// Left <= Right and Top <= Bottom numerically; because page space is y-up,
// Top holds the smaller y value. Use RectFrom to build a normalized Rect
// from arbitrary corner coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFrom returns the normalized rectangle spanning the two corner points
// (x1, y1) and (x2, y2).
func RectFrom(x1, y1, x2, y2 float64) Rect {
	return Rect{
		Left:   min(x1, x2),
		Top:    min(y1, y2),
		Right:  max(x1, x2),
		Bottom: max(y1, y2),
	}
}

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Left == r.Right || r.Top == r.Bottom
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Union returns the smallest rectangle containing both r and o. Callers are
// responsible for excluding empty rectangles; unioning with an empty
// rectangle at the origin would wrongly drag the result's corner to (0,0).
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// DeviceRect is a rectangle in device space, normalized so that
// Left <= Right and Top <= Bottom. An empty rectangle is one whose left and
// right or top and bottom edges coincide.
type DeviceRect struct {
	Left, Top, Right, Bottom int
}

// DeviceRectFrom returns the normalized rectangle spanning two device
// points.
func DeviceRectFrom(p1, p2 DevicePoint) DeviceRect {
	return DeviceRect{
		Left:   min(p1.X, p2.X),
		Top:    min(p1.Y, p2.Y),
		Right:  max(p1.X, p2.X),
		Bottom: max(p1.Y, p2.Y),
	}
}

// IsEmpty reports whether the rectangle has zero area.
func (r DeviceRect) IsEmpty() bool {
	return r.Left == r.Right || r.Top == r.Bottom
}

// Width returns the horizontal extent.
func (r DeviceRect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent.
func (r DeviceRect) Height() int { return r.Bottom - r.Top }

// Center returns the center point of the rectangle.
func (r DeviceRect) Center() DevicePoint {
	return DevicePoint{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Union returns the smallest rectangle containing both r and o. As with
// Rect.Union, empty rectangles must be excluded by the caller.
func (r DeviceRect) Union(o DeviceRect) DeviceRect {
	return DeviceRect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// Intersect returns the overlap of r and o, or the zero rectangle when they
// are disjoint.
func (r DeviceRect) Intersect(o DeviceRect) DeviceRect {
	out := DeviceRect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
	if out.Left > out.Right || out.Top > out.Bottom {
		return DeviceRect{}
	}
	return out
}

// TextRange is a half-open interval [Start, Stop) over a page's character
// index space.
type TextRange struct {
	Start, Stop int
}

// Quad is a quadrilateral in page space, given by its four corners in the
// order x1 y1 (top-left), x2 y2 (top-right), x3 y3 (bottom-left),
// x4 y4 (bottom-right) as attachment points are stored in the document.
type Quad struct {
	P1, P2, P3, P4 Point
}

// QuadFromRect builds an axis-aligned quadrilateral covering r.
func QuadFromRect(r Rect) Quad {
	return Quad{
		P1: Point{X: r.Left, Y: r.Top},
		P2: Point{X: r.Right, Y: r.Top},
		P3: Point{X: r.Left, Y: r.Bottom},
		P4: Point{X: r.Right, Y: r.Bottom},
	}
}

// Rect returns the axis-aligned rectangle spanned by the quadrilateral's
// first and last corners.
func (q Quad) Rect() Rect {
	return RectFrom(q.P1.X, q.P1.Y, q.P2.X, q.P4.Y)
}

// IsZero reports whether all four corners sit at the origin, the degenerate
// form used to blank out surplus attachment-point slots.
func (q Quad) IsZero() bool {
	return q == Quad{}
}
