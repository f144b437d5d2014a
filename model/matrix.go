package model

// Matrix is an affine transform. A point (x, y) maps to
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// Every content object carries the same transform in two flavors: the page
// matrix stored in the document (page space, y-up, offset by the object's
// own bounds) and the device matrix exposed to callers (device space, y-down,
// anchored to the page height). ObjectDeviceMatrix and PageMatrixSteps
// convert between the two.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Mul returns the transform that applies m first and then o.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
		E: m.E*o.A + m.F*o.C + o.E,
		F: m.E*o.B + m.F*o.D + o.F,
	}
}

// Apply transforms the point p.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// FlipAbout returns the transform mapping y to k-y while leaving x
// unchanged: a vertical flip about the horizontal line at k/2.
func FlipAbout(k float64) Matrix {
	return Matrix{A: 1, D: -1, F: k}
}

// ObjectDeviceMatrix derives the device matrix an object exposes to callers
// from the page matrix stored in the document. bounds is the object's own
// bounding box in page space (the zero Rect for objects positioned relative
// to the whole page, such as paths) and pageHeight is the page's vertical
// extent in points.
//
// The vertical flip is re-centered about the object's own vertical extent:
// when bounds.Top+bounds.Bottom is zero the correction vanishes and the
// derivation reduces to a pure flip about the page height.
func ObjectDeviceMatrix(page Matrix, bounds Rect, pageHeight float64) Matrix {
	tb := bounds.Top + bounds.Bottom
	out := Matrix{A: page.A, B: page.B, C: page.C, D: page.D}
	if out.B != 0 {
		out.B = -out.B
	}
	if out.C != 0 {
		out.C = -out.C
	}
	out.E = page.E + tb*page.C
	out.F = pageHeight - page.F - tb*page.D
	return out
}

// TransformStep is one stage of an ordered transform pipeline applied to a
// backing object whose transform primitive post-multiplies against current
// state.
type TransformStep struct {
	Name string
	M    Matrix
}

// PageMatrixSteps returns the ordered pipeline that installs the given
// device matrix onto a backing object as its page matrix: reset the object
// to identity, then apply each step in order with the backing store's
// relative transform operation. The order is part of the contract;
// reordering the steps changes the result.
func PageMatrixSteps(device Matrix, bounds Rect, pageHeight float64) []TransformStep {
	tb := bounds.Top + bounds.Bottom
	return []TransformStep{
		{Name: "flip-bounds", M: FlipAbout(tb)},
		{Name: "apply-device", M: device},
		{Name: "flip-page", M: FlipAbout(pageHeight)},
	}
}
