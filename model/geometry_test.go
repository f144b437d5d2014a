package model

import (
	"math"
	"testing"
)

func TestRectFrom(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           Rect
	}{
		{"ordered", 10, 20, 50, 70, Rect{10, 20, 50, 70}},
		{"reversed", 50, 70, 10, 20, Rect{10, 20, 50, 70}},
		{"mixed", 50, 20, 10, 70, Rect{10, 20, 50, 70}},
		{"degenerate", 10, 10, 10, 10, Rect{10, 10, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectFrom(tt.x1, tt.y1, tt.x2, tt.y2)
			if got != tt.want {
				t.Errorf("RectFrom() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero", Rect{}, true},
		{"zero width", Rect{10, 20, 10, 70}, true},
		{"zero height", Rect{10, 20, 50, 20}, true},
		{"normal", Rect{10, 20, 50, 70}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeviceRectUnion(t *testing.T) {
	a := DeviceRect{100, 592, 200, 692}
	b := DeviceRect{400, 592, 500, 692}
	c := DeviceRect{100, 292, 200, 392}

	got := a.Union(b).Union(c)
	want := DeviceRect{100, 292, 500, 692}
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestDeviceRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b DeviceRect
		want DeviceRect
	}{
		{"overlap", DeviceRect{0, 0, 100, 100}, DeviceRect{50, 50, 200, 200}, DeviceRect{50, 50, 100, 100}},
		{"contained", DeviceRect{0, 0, 100, 100}, DeviceRect{20, 20, 80, 80}, DeviceRect{20, 20, 80, 80}},
		{"disjoint", DeviceRect{0, 0, 100, 100}, DeviceRect{200, 200, 300, 300}, DeviceRect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQuadRoundTrip(t *testing.T) {
	r := Rect{Left: 10, Top: 700, Right: 90, Bottom: 712}
	q := QuadFromRect(r)
	if got := q.Rect(); got != r {
		t.Errorf("QuadFromRect().Rect() = %+v, want %+v", got, r)
	}
	if q.IsZero() {
		t.Error("IsZero() = true for a non-degenerate quad")
	}
	if !(Quad{}).IsZero() {
		t.Error("IsZero() = false for the zero quad")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 30, Bottom: 40}
	want := Point{X: 20, Y: 30}
	if got := r.Center(); math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("Center() = %+v, want %+v", got, want)
	}
}
