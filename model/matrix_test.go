package model

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func matrixNear(a, b Matrix) bool {
	return math.Abs(a.A-b.A) < tolerance &&
		math.Abs(a.B-b.B) < tolerance &&
		math.Abs(a.C-b.C) < tolerance &&
		math.Abs(a.D-b.D) < tolerance &&
		math.Abs(a.E-b.E) < tolerance &&
		math.Abs(a.F-b.F) < tolerance
}

// applySteps mimics a backing object's transform primitive: start from
// identity and post-multiply each step in order.
func applySteps(steps []TransformStep) Matrix {
	m := Identity()
	for _, s := range steps {
		m = m.Mul(s.M)
	}
	return m
}

func TestObjectDeviceMatrixPureFlip(t *testing.T) {
	// Zero bounds (a path object): the derivation is a pure vertical flip
	// about the page height.
	page := Matrix{A: 1, D: 1, E: 30, F: 40}
	got := ObjectDeviceMatrix(page, Rect{}, 792)
	want := Matrix{A: 1, D: 1, E: 30, F: 752}
	if !matrixNear(got, want) {
		t.Errorf("ObjectDeviceMatrix() = %+v, want %+v", got, want)
	}
}

func TestObjectDeviceMatrixBoundsCorrection(t *testing.T) {
	page := Matrix{A: 2, B: 0.5, C: -0.25, D: 3, E: 10, F: 20}
	bounds := Rect{Left: 0, Top: 100, Right: 50, Bottom: 140}
	got := ObjectDeviceMatrix(page, bounds, 792)

	tb := 240.0
	want := Matrix{
		A: 2, B: -0.5, C: 0.25, D: 3,
		E: 10 + tb*(-0.25),
		F: 792 - 20 - tb*3,
	}
	if !matrixNear(got, want) {
		t.Errorf("ObjectDeviceMatrix() = %+v, want %+v", got, want)
	}
}

func TestObjectDeviceMatrixAvoidsNegativeZero(t *testing.T) {
	got := ObjectDeviceMatrix(Matrix{A: 1, D: 1}, Rect{}, 792)
	if math.Signbit(got.B) || math.Signbit(got.C) {
		t.Errorf("derived matrix carries negative zero: %+v", got)
	}
}

func TestPageMatrixStepsInvertDerivation(t *testing.T) {
	tests := []struct {
		name   string
		page   Matrix
		bounds Rect
		height float64
	}{
		{"identity, no bounds", Identity(), Rect{}, 792},
		{"translate only", Matrix{A: 1, D: 1, E: 72, F: 144}, Rect{}, 792},
		{"scale and shear", Matrix{A: 2, B: 0.5, C: -0.25, D: 3, E: 10, F: 20}, Rect{Top: 100, Bottom: 140}, 792},
		{"bounds-relative", Matrix{A: 1, D: 1, E: 5, F: 7}, Rect{Left: 10, Top: 30, Right: 60, Bottom: 90}, 612},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := ObjectDeviceMatrix(tt.page, tt.bounds, tt.height)
			got := applySteps(PageMatrixSteps(device, tt.bounds, tt.height))
			if !matrixNear(got, tt.page) {
				t.Errorf("round trip = %+v, want %+v", got, tt.page)
			}
		})
	}
}

func TestPageMatrixStepsOrderMatters(t *testing.T) {
	page := Matrix{A: 2, B: 0.5, C: -0.25, D: 3, E: 10, F: 20}
	bounds := Rect{Top: 100, Bottom: 140}
	device := ObjectDeviceMatrix(page, bounds, 792)

	steps := PageMatrixSteps(device, bounds, 792)
	reversed := []TransformStep{steps[2], steps[1], steps[0]}
	if got := applySteps(reversed); matrixNear(got, page) {
		t.Error("reversed step order still produced the page matrix; the pipeline must be order-sensitive")
	}
}

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Point{3, 4}, Point{3, 4}},
		{"translate", Matrix{A: 1, D: 1, E: 10, F: 20}, Point{3, 4}, Point{13, 24}},
		{"scale", Matrix{A: 2, D: 3}, Point{3, 4}, Point{6, 12}},
		{"flip", FlipAbout(100), Point{3, 4}, Point{3, 96}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Apply(tt.in)
			if math.Abs(got.X-tt.want.X) > tolerance || math.Abs(got.Y-tt.want.Y) > tolerance {
				t.Errorf("Apply(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixMulOrder(t *testing.T) {
	// Mul applies the receiver first: scaling then translating is not the
	// same as translating then scaling.
	scale := Matrix{A: 2, D: 2}
	translate := Matrix{A: 1, D: 1, E: 10, F: 10}

	p := Point{1, 1}
	scaleFirst := scale.Mul(translate).Apply(p)
	translateFirst := translate.Mul(scale).Apply(p)

	if scaleFirst != (Point{12, 12}) {
		t.Errorf("scale.Mul(translate).Apply = %+v, want {12 12}", scaleFirst)
	}
	if translateFirst != (Point{22, 22}) {
		t.Errorf("translate.Mul(scale).Apply = %+v, want {22 22}", translateFirst)
	}
}
