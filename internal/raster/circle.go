package raster

import "image"

// MidpointCircle rasterizes a full circle outline of the given radius
// around (cx,cy) using the midpoint (Bresenham) circle algorithm, all
// integer arithmetic. Each generated octant pair (x,y) is reflected into
// the circle's 8-fold symmetry group; the reflections that coincide
// (x == 0 or x == y) are emitted once. A radius of zero produces the
// single center point. Points outside any particular buffer are the
// caller's concern: the generator never drops coordinates.
func MidpointCircle(cx, cy, r int) []image.Point {
	if r <= 0 {
		return []image.Point{image.Pt(cx, cy)}
	}

	pts := make([]image.Point, 0, 8*r)
	x, y := 0, r
	d := 1 - r

	pts = appendOctants(pts, cx, cy, x, y)
	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1 // East move
		} else {
			y--
			d += 2*(x-y) + 1 // South-East move
		}
		if x > y {
			// The final South-East move can overshoot the diagonal,
			// leaving the swapped pair of the previous octet.
			break
		}
		pts = appendOctants(pts, cx, cy, x, y)
	}
	return pts
}

// appendOctants reflects the octant point (x,y) into all eight symmetric
// positions around (cx,cy), skipping the reflections that coincide.
func appendOctants(pts []image.Point, cx, cy, x, y int) []image.Point {
	switch {
	case x == 0:
		return append(pts,
			image.Pt(cx, cy+y), image.Pt(cx, cy-y),
			image.Pt(cx+y, cy), image.Pt(cx-y, cy))
	case x == y:
		return append(pts,
			image.Pt(cx+x, cy+y), image.Pt(cx-x, cy+y),
			image.Pt(cx+x, cy-y), image.Pt(cx-x, cy-y))
	default:
		return append(pts,
			image.Pt(cx+x, cy+y), image.Pt(cx-x, cy+y),
			image.Pt(cx+x, cy-y), image.Pt(cx-x, cy-y),
			image.Pt(cx+y, cy+x), image.Pt(cx-y, cy+x),
			image.Pt(cx+y, cy-x), image.Pt(cx-y, cy-x))
	}
}
