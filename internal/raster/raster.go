// Package raster implements the pixel-generation algorithms of the
// drawing engine: DDA, Bresenham and Wu line rasterization, the midpoint
// circle, and Bézier curve sampling via iterative de Casteljau evaluation.
//
// The generators are pure: they produce integer pixel coordinates (or, for
// the anti-aliased Wu line, (pixel, coverage) pairs through a
// CoverageBlitter) and never touch a pixel buffer themselves. Bounds
// checking and color handling belong to the caller's surface.
//
// Every place a real coordinate becomes a pixel, rounding is
// half-away-from-zero (math.Round), so the DDA, Wu and Bézier generators
// agree on which pixel a sample lands in.
package raster

import (
	"image"
	"math"
)

// Vec is a 2D point or vector with float64 coordinates, used for the
// real-valued parameter sweeps of the DDA and Bézier generators.
type Vec struct {
	X, Y float64
}

// V creates a Vec from x, y coordinates.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Lerp performs linear interpolation between v and w.
// t=0 returns v, t=1 returns w.
func (v Vec) Lerp(w Vec, t float64) Vec {
	return Vec{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Distance returns the distance between two points.
func (v Vec) Distance(w Vec) float64 {
	return math.Hypot(w.X-v.X, w.Y-v.Y)
}

// Pixel returns the pixel containing v, rounding half away from zero.
func (v Vec) Pixel() image.Point {
	return image.Pt(round(v.X), round(v.Y))
}

// CoverageBlitter receives the (pixel, coverage) pairs produced by the
// anti-aliased Wu rasterizer. Coverage is in [0, 1]; how it is composited
// onto a destination is the blitter's policy, not the rasterizer's.
type CoverageBlitter interface {
	Blit(x, y int, coverage float64)
}

// round rounds half away from zero.
func round(v float64) int {
	return int(math.Round(v))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clamp01 clamps coverage to [0, 1] before it is handed to a blitter.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
