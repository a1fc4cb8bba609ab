package minipaint

import "github.com/yojanathapa2/minipaint/internal/clip"

// Option configures a Context during creation.
//
// Example:
//
//	// Default: Bresenham lines on a fresh pixmap.
//	dc := minipaint.NewContext(800, 600)
//
//	// Anti-aliased lines on a caller-owned surface.
//	dc := minipaint.NewContext(800, 600,
//	    minipaint.WithSurface(pm),
//	    minipaint.WithAlgorithm(minipaint.AlgorithmWu))
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	surface   Surface
	algorithm Algorithm
	clipRect  *clip.Rect
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		surface:   nil, // Will be created if nil
		algorithm: AlgorithmBresenham,
	}
}

// WithSurface sets a caller-owned surface for the Context. The Context
// borrows the surface; it never allocates or frees the underlying buffer.
func WithSurface(s Surface) Option {
	return func(o *contextOptions) {
		o.surface = s
	}
}

// WithAlgorithm sets the initial line rasterization algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *contextOptions) {
		o.algorithm = a
	}
}

// WithClip sets an initial clip rectangle with inclusive bounds. Lines
// are clipped (Cohen-Sutherland) before rasterization; fully outside
// segments cost zero pixel writes.
func WithClip(x0, y0, x1, y1 float64) Option {
	return func(o *contextOptions) {
		r := clip.NewRect(x0, y0, x1, y1)
		o.clipRect = &r
	}
}
