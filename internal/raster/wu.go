package raster

import "math"

// Wu rasterizes the segment (x0,y0)-(x1,y1) with Xiaolin Wu's
// anti-aliased algorithm, emitting (pixel, coverage) pairs through the
// blitter. Each column strictly between the end caps receives two pixels,
// at floor(intery) and floor(intery)+1, weighted 1-frac(intery) and
// frac(intery); the end caps are weighted by the fractional gap to the
// pixel center. Coverage is clamped to [0, 1] and zero-coverage pairs are
// dropped, so a zero-length segment still lands exactly one pixel.
//
// The rasterizer never reads the destination: compositing the coverage
// against existing content is the blitter's policy.
func Wu(x0, y0, x1, y1 float64, b CoverageBlitter) {
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0

	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	// First end cap.
	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := rfpart(x0 + 0.5)
	xpxl1 := int(xend)
	ypxl1 := ipart(yend)
	blit(b, steep, xpxl1, ypxl1, rfpart(yend)*xgap)
	blit(b, steep, xpxl1, ypxl1+1, fpart(yend)*xgap)
	intery := yend + gradient

	// Second end cap.
	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpxl2 := int(xend)
	ypxl2 := ipart(yend)
	blit(b, steep, xpxl2, ypxl2, rfpart(yend)*xgap)
	blit(b, steep, xpxl2, ypxl2+1, fpart(yend)*xgap)

	for x := xpxl1 + 1; x < xpxl2; x++ {
		blit(b, steep, x, ipart(intery), rfpart(intery))
		blit(b, steep, x, ipart(intery)+1, fpart(intery))
		intery += gradient
	}
}

// blit clamps coverage, drops empty pairs, and undoes the steep transpose.
func blit(b CoverageBlitter, steep bool, x, y int, coverage float64) {
	coverage = clamp01(coverage)
	if coverage == 0 {
		return
	}
	if steep {
		b.Blit(y, x, coverage)
	} else {
		b.Blit(x, y, coverage)
	}
}

// ipart returns the integer part of v (floor).
func ipart(v float64) int {
	return int(math.Floor(v))
}

// fpart returns the fractional part of v.
func fpart(v float64) float64 {
	return v - math.Floor(v)
}

// rfpart returns 1 minus the fractional part of v.
func rfpart(v float64) float64 {
	return 1 - fpart(v)
}
