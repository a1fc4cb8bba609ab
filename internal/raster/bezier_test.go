package raster

import (
	"image"
	"math"
	"testing"
)

func TestBezier_Endpoints(t *testing.T) {
	tests := []struct {
		name string
		ctrl []Vec
	}{
		{"quadratic", []Vec{V(0, 0), V(10, 20), V(30, 0)}},
		{"cubic", []Vec{V(0, 0), V(0, 15), V(25, 15), V(25, 0)}},
		{"two points", []Vec{V(2, 3), V(12, 9)}},
		{"degree five", []Vec{V(0, 0), V(5, 10), V(10, -10), V(15, 10), V(20, -10), V(25, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bezier(tt.ctrl)
			if len(got) == 0 {
				t.Fatal("no pixels produced")
			}
			first := tt.ctrl[0].Pixel()
			last := tt.ctrl[len(tt.ctrl)-1].Pixel()
			if got[0] != first {
				t.Errorf("first pixel = %v, want %v", got[0], first)
			}
			if got[len(got)-1] != last {
				t.Errorf("last pixel = %v, want %v", got[len(got)-1], last)
			}
		})
	}
}

func TestBezier_Degenerate(t *testing.T) {
	if got := Bezier(nil); got != nil {
		t.Errorf("Bezier(nil) = %v, want nil", got)
	}

	got := Bezier([]Vec{V(4, 7)})
	if len(got) != 1 || got[0] != image.Pt(4, 7) {
		t.Errorf("single control point = %v, want [(4,7)]", got)
	}

	// All control points coincident: duplicate suppression collapses the
	// sweep to one pixel.
	got = Bezier([]Vec{V(3, 3), V(3, 3), V(3, 3)})
	if len(got) != 1 || got[0] != image.Pt(3, 3) {
		t.Errorf("coincident control points = %v, want [(3,3)]", got)
	}
}

// Collinear control points trace the straight segment between the
// endpoints.
func TestBezier_CollinearControlPoints(t *testing.T) {
	got := Bezier([]Vec{V(0, 5), V(10, 5), V(20, 5)})
	for _, p := range got {
		if p.Y != 5 {
			t.Errorf("collinear sweep strayed to %v", p)
		}
	}
	if got[0] != image.Pt(0, 5) || got[len(got)-1] != image.Pt(20, 5) {
		t.Errorf("collinear sweep endpoints wrong: %v .. %v", got[0], got[len(got)-1])
	}
}

// The quadratic sweep must pass through the curve's analytic midpoint
// B(0.5) = 0.25 p0 + 0.5 p1 + 0.25 p2.
func TestBezier_QuadraticMidpoint(t *testing.T) {
	p0, p1, p2 := V(0, 0), V(10, 20), V(20, 0)
	mid := image.Pt(round(0.25*p0.X+0.5*p1.X+0.25*p2.X), round(0.25*p0.Y+0.5*p1.Y+0.25*p2.Y))

	set := pointSet(Quadratic(p0, p1, p2))
	if !set[mid] {
		t.Errorf("midpoint %v missing from quadratic sweep", mid)
	}
}

// Cubic evaluation by de Casteljau must match the Bernstein polynomial.
func TestBezier_CubicMatchesBernstein(t *testing.T) {
	p0, p1, p2, p3 := V(0, 0), V(4, 12), V(16, 12), V(20, 0)
	scratch := make([]Vec, 4)

	for _, tv := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		got := deCasteljau(scratch, []Vec{p0, p1, p2, p3}, tv)

		mt := 1 - tv
		wantX := mt*mt*mt*p0.X + 3*mt*mt*tv*p1.X + 3*mt*tv*tv*p2.X + tv*tv*tv*p3.X
		wantY := mt*mt*mt*p0.Y + 3*mt*mt*tv*p1.Y + 3*mt*tv*tv*p2.Y + tv*tv*tv*p3.Y

		if math.Abs(got.X-wantX) > 1e-9 || math.Abs(got.Y-wantY) > 1e-9 {
			t.Errorf("t=%v: de Casteljau = (%v,%v), Bernstein = (%v,%v)", tv, got.X, got.Y, wantX, wantY)
		}
	}
}

func TestBezier_NoConsecutiveDuplicates(t *testing.T) {
	got := Cubic(V(0, 0), V(2, 8), V(14, 8), V(16, 0))
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Fatalf("consecutive duplicate pixel %v at index %d", got[i], i)
		}
	}
}
