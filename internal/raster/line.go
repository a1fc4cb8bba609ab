package raster

import (
	"image"
	"math"
)

// DDA rasterizes the segment (x0,y0)-(x1,y1) with the digital differential
// analyzer: steps = max(|dx|, |dy|), then steps+1 samples incremented by
// dx/steps, dy/steps and rounded half away from zero. A zero-length
// segment produces the single rounded start pixel. The result always
// includes both rounded endpoints.
func DDA(x0, y0, x1, y1 float64) []image.Point {
	dx := x1 - x0
	dy := y1 - y0

	steps := round(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		return []image.Point{image.Pt(round(x0), round(y0))}
	}

	xInc := dx / float64(steps)
	yInc := dy / float64(steps)

	pts := make([]image.Point, 0, steps+1)
	x, y := x0, y0
	for i := 0; i <= steps; i++ {
		pts = append(pts, image.Pt(round(x), round(y)))
		x += xInc
		y += yInc
	}
	return pts
}

// Bresenham rasterizes the segment (x0,y0)-(x1,y1) with the classic
// integer decision-variable algorithm. The output holds exactly
// max(|dx|, |dy|)+1 pixels and always contains both endpoints. Iteration
// runs along the dominant axis left to right, so the output order may be
// reversed relative to the caller's direction; the pixel set is the
// contract.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	steep := absInt(y1-y0) > absInt(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := absInt(y1 - y0)
	errv := dx / 2

	yStep := 1
	if y0 > y1 {
		yStep = -1
	}

	pts := make([]image.Point, 0, dx+1)
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			pts = append(pts, image.Pt(y, x))
		} else {
			pts = append(pts, image.Pt(x, y))
		}
		errv -= dy
		if errv < 0 {
			y += yStep
			errv += dx
		}
	}
	return pts
}
