package minipaint

import (
	"image"
	"math"

	"github.com/yojanathapa2/minipaint/internal/clip"
	"github.com/yojanathapa2/minipaint/internal/raster"
)

// Context is the main drawing surface wrapper. It holds the target
// Surface, the current stroke color, the selected line algorithm, and an
// optional clip rectangle, and routes every drawing operation through the
// rasterizers in internal/raster.
//
// A Context holds no pixel state of its own and no history: every
// operation runs to completion against the borrowed surface and returns.
// Contexts are not safe for concurrent use against the same surface.
type Context struct {
	dst       Surface
	color     RGBA
	algorithm Algorithm
	clipRect  *clip.Rect
}

// NewContext creates a drawing context with the given dimensions. If no
// surface is supplied via WithSurface, a fresh Pixmap is created. The
// initial stroke color is opaque black.
func NewContext(width, height int, opts ...Option) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	dst := options.surface
	if dst == nil {
		dst = NewPixmap(width, height)
	}

	return &Context{
		dst:       dst,
		color:     RGB(0, 0, 0),
		algorithm: options.algorithm,
		clipRect:  options.clipRect,
	}
}

// Surface returns the surface the context draws on.
func (c *Context) Surface() Surface {
	return c.dst
}

// SetColor sets the current stroke color.
func (c *Context) SetColor(col RGBA) {
	c.color = col
}

// Color returns the current stroke color.
func (c *Context) Color() RGBA {
	return c.color
}

// SetAlgorithm sets the line rasterization algorithm.
func (c *Context) SetAlgorithm(a Algorithm) {
	c.algorithm = a
}

// Algorithm returns the current line rasterization algorithm.
func (c *Context) Algorithm() Algorithm {
	return c.algorithm
}

// SetClip sets the clip rectangle (inclusive bounds, normalized so
// min <= max). Subsequent lines are clipped before rasterization.
func (c *Context) SetClip(x0, y0, x1, y1 float64) {
	r := clip.NewRect(x0, y0, x1, y1)
	c.clipRect = &r
}

// ResetClip removes the clip rectangle.
func (c *Context) ResetClip() {
	c.clipRect = nil
}

// Clear fills the whole surface with the given color.
func (c *Context) Clear(col RGBA) {
	for y := 0; y < c.dst.Height(); y++ {
		for x := 0; x < c.dst.Width(); x++ {
			c.dst.SetPixel(x, y, col)
		}
	}
}

// DrawLine draws a line from (x0,y0) to (x1,y1) with the selected
// algorithm, clipping it first when a clip rectangle is set. A rejected
// segment costs zero pixel writes.
func (c *Context) DrawLine(x0, y0, x1, y1 float64) {
	if c.clipRect != nil {
		p0, p1, ok := clip.ClipLine(clip.Pt(x0, y0), clip.Pt(x1, y1), *c.clipRect)
		if !ok {
			Logger().Debug("line rejected by clip",
				"x0", x0, "y0", y0, "x1", x1, "y1", y1)
			return
		}
		x0, y0, x1, y1 = p0.X, p0.Y, p1.X, p1.Y
	}

	switch c.algorithm {
	case AlgorithmDDA:
		c.writePixels(raster.DDA(x0, y0, x1, y1))
	case AlgorithmWu:
		raster.Wu(x0, y0, x1, y1, coverageWriter{dst: c.dst, color: c.color})
	default:
		c.writePixels(raster.Bresenham(round(x0), round(y0), round(x1), round(y1)))
	}
}

// DrawCircle draws a circle outline with the midpoint algorithm. The
// clip rectangle does not apply: points outside the surface are dropped
// by the bounds-checked write.
func (c *Context) DrawCircle(cx, cy, r int) {
	c.writePixels(raster.MidpointCircle(cx, cy, r))
}

// DrawQuadratic draws a quadratic Bézier curve from (x0,y0) to (x2,y2)
// with control point (x1,y1).
func (c *Context) DrawQuadratic(x0, y0, x1, y1, x2, y2 float64) {
	c.writePixels(raster.Quadratic(
		raster.V(x0, y0), raster.V(x1, y1), raster.V(x2, y2)))
}

// DrawCubic draws a cubic Bézier curve from (x0,y0) to (x3,y3) with
// control points (x1,y1) and (x2,y2).
func (c *Context) DrawCubic(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	c.writePixels(raster.Cubic(
		raster.V(x0, y0), raster.V(x1, y1), raster.V(x2, y2), raster.V(x3, y3)))
}

// DrawBezier draws a Bézier curve of arbitrary degree over the control
// points (two or more).
func (c *Context) DrawBezier(ctrl []Point) {
	vs := make([]raster.Vec, len(ctrl))
	for i, p := range ctrl {
		vs[i] = raster.V(p.X, p.Y)
	}
	c.writePixels(raster.Bezier(vs))
}

// Fill flood-fills the 4-connected region at (x, y) with the current
// color and returns the number of repainted pixels.
func (c *Context) Fill(x, y int) int {
	return c.FillTolerance(x, y, 0)
}

// FillTolerance flood-fills with a per-channel color-match tolerance.
func (c *Context) FillTolerance(x, y, tol int) int {
	painted := FloodFillTolerance(c.dst, image.Pt(x, y), c.color, tol)
	Logger().Debug("flood fill", "x", x, "y", y, "painted", len(painted))
	return len(painted)
}

// writePixels stamps the current color onto each generated pixel.
// Out-of-bounds pixels are dropped by the surface, not here.
func (c *Context) writePixels(pts []image.Point) {
	for _, p := range pts {
		c.dst.SetPixel(p.X, p.Y, c.color)
	}
	Logger().Debug("pixels written", "count", len(pts), "algorithm", c.algorithm.String())
}

// coverageWriter adapts a Surface to the Wu rasterizer's blitter
// contract: the stroke color is stored with coverage-scaled alpha. It
// never reads the destination; compositing coverage against existing
// content is the caller's policy.
type coverageWriter struct {
	dst   Surface
	color RGBA
}

func (w coverageWriter) Blit(x, y int, coverage float64) {
	c := w.color
	c.A = uint8(math.Round(coverage * float64(c.A)))
	w.dst.SetPixel(x, y, c)
}

// round rounds half away from zero, matching the rasterizers' rule.
func round(v float64) int {
	return int(math.Round(v))
}
