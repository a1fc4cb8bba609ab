// Package clip implements Cohen-Sutherland line-segment clipping against
// an axis-aligned rectangle. Segments are trimmed or rejected before they
// reach a line rasterizer, so a rejected segment costs zero pixel writes.
package clip

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned clip rectangle with inclusive bounds:
// points with X == XMin or X == XMax are inside.
type Rect struct {
	XMin, YMin float64
	XMax, YMax float64
}

// NewRect creates a Rect, normalizing the bounds so min <= max.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{XMin: x0, YMin: y0, XMax: x1, YMax: y1}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// Outcode bits for the Cohen-Sutherland algorithm.
const (
	outcodeInside = 0
	outcodeLeft   = 1 // X < XMin
	outcodeRight  = 2 // X > XMax
	outcodeBottom = 4 // Y < YMin
	outcodeTop    = 8 // Y > YMax
)

// outcode computes the Cohen-Sutherland outcode for a point.
func (r Rect) outcode(p Point) int {
	code := outcodeInside

	if p.X < r.XMin {
		code |= outcodeLeft
	} else if p.X > r.XMax {
		code |= outcodeRight
	}

	if p.Y < r.YMin {
		code |= outcodeBottom
	} else if p.Y > r.YMax {
		code |= outcodeTop
	}

	return code
}

// ClipLine clips the segment p0-p1 to the rectangle using the
// Cohen-Sutherland algorithm. It returns the clipped endpoints and true,
// or zero points and false when the segment lies entirely outside.
//
// Each iteration either trivially accepts (both outcodes zero), trivially
// rejects (the outcodes share a set bit, so both endpoints are outside the
// same boundary), or replaces one outside endpoint with its intersection
// against the TOP, BOTTOM, RIGHT or LEFT boundary, tested in that order.
// The outcode bit gating each branch guarantees the denominator of the
// intersection formula is nonzero.
func ClipLine(p0, p1 Point, r Rect) (Point, Point, bool) {
	code0 := r.outcode(p0)
	code1 := r.outcode(p1)

	for {
		if code0|code1 == 0 {
			return p0, p1, true
		}
		if code0&code1 != 0 {
			return Point{}, Point{}, false
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var p Point
		switch {
		case codeOut&outcodeTop != 0:
			p.X = p0.X + (p1.X-p0.X)*(r.YMax-p0.Y)/(p1.Y-p0.Y)
			p.Y = r.YMax
		case codeOut&outcodeBottom != 0:
			p.X = p0.X + (p1.X-p0.X)*(r.YMin-p0.Y)/(p1.Y-p0.Y)
			p.Y = r.YMin
		case codeOut&outcodeRight != 0:
			p.Y = p0.Y + (p1.Y-p0.Y)*(r.XMax-p0.X)/(p1.X-p0.X)
			p.X = r.XMax
		case codeOut&outcodeLeft != 0:
			p.Y = p0.Y + (p1.Y-p0.Y)*(r.XMin-p0.X)/(p1.X-p0.X)
			p.X = r.XMin
		}

		if codeOut == code0 {
			p0 = p
			code0 = r.outcode(p0)
		} else {
			p1 = p
			code1 = r.outcode(p1)
		}
	}
}
