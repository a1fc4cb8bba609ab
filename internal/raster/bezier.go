package raster

import "image"

// Step-count bounds for Bézier sampling. The count scales with the rough
// path length so curves stay visually dense without adaptive subdivision,
// but is clamped so tiny curves still get a smooth sweep and huge ones
// stay bounded.
const (
	minBezierSteps = 16
	maxBezierSteps = 2048
)

// Quadratic rasterizes a quadratic Bézier curve with control points
// p0, p1, p2.
func Quadratic(p0, p1, p2 Vec) []image.Point {
	return Bezier([]Vec{p0, p1, p2})
}

// Cubic rasterizes a cubic Bézier curve with control points p0..p3.
func Cubic(p0, p1, p2, p3 Vec) []image.Point {
	return Bezier([]Vec{p0, p1, p2, p3})
}

// Bezier rasterizes a Bézier curve of arbitrary degree (two or more
// control points) by sweeping t over [0, 1] inclusive and evaluating the
// curve with iterative de Casteljau interpolation. Samples are rounded
// half away from zero, consistent with the DDA; consecutive duplicate
// pixels are suppressed so the output forms a clean path. A single
// control point, or coincident control points, produce one pixel.
func Bezier(ctrl []Vec) []image.Point {
	if len(ctrl) == 0 {
		return nil
	}
	if len(ctrl) == 1 {
		return []image.Point{ctrl[0].Pixel()}
	}

	steps := sampleSteps(ctrl)
	scratch := make([]Vec, len(ctrl))
	pts := make([]image.Point, 0, steps+1)

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := deCasteljau(scratch, ctrl, t).Pixel()
		if n := len(pts); n > 0 && pts[n-1] == p {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

// deCasteljau evaluates the curve at t by repeated linear interpolation
// over the control points. scratch must have len(ctrl) capacity; reusing
// it across samples keeps the sweep allocation-free.
func deCasteljau(scratch, ctrl []Vec, t float64) Vec {
	copy(scratch, ctrl)
	for n := len(ctrl); n > 1; n-- {
		for i := 0; i < n-1; i++ {
			scratch[i] = scratch[i].Lerp(scratch[i+1], t)
		}
	}
	return scratch[0]
}

// sampleSteps derives the sweep length from the control polygon:
// roughly twice the distance start -> middle control -> end.
func sampleSteps(ctrl []Vec) int {
	mid := ctrl[len(ctrl)/2]
	approxLen := ctrl[0].Distance(mid) + mid.Distance(ctrl[len(ctrl)-1])

	steps := int(2 * approxLen)
	if steps < minBezierSteps {
		steps = minBezierSteps
	}
	if steps > maxBezierSteps {
		steps = maxBezierSteps
	}
	return steps
}
