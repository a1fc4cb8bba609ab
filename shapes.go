package minipaint

import (
	"math"

	"github.com/yojanathapa2/minipaint/internal/clip"
	"github.com/yojanathapa2/minipaint/internal/raster"
)

// Shape tools layered on the line and circle rasterizers. These mirror
// the drawing application's toolbar: rectangle, polygon (triangle), star,
// heart, and the freehand brush stroke.

// DrawRect draws an axis-aligned rectangle outline with corners (x0,y0)
// and (x1,y1).
func (c *Context) DrawRect(x0, y0, x1, y1 float64) {
	c.DrawLine(x0, y0, x1, y0)
	c.DrawLine(x1, y0, x1, y1)
	c.DrawLine(x1, y1, x0, y1)
	c.DrawLine(x0, y1, x0, y0)
}

// DrawPolygon draws a closed polygon outline through the given vertices.
// Fewer than two vertices draw nothing; two vertices draw a segment.
func (c *Context) DrawPolygon(pts []Point) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i < len(pts); i++ {
		p := pts[i]
		q := pts[(i+1)%len(pts)]
		c.DrawLine(p.X, p.Y, q.X, q.Y)
	}
}

// DrawStar draws a five-pointed star outline: ten vertices alternating
// between the outer radius r and the inner radius r/2, phased so one
// point faces up.
func (c *Context) DrawStar(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	pts := make([]Point, 10)
	for i := range pts {
		angle := float64(i)*math.Pi/5 - math.Pi/2
		radius := r
		if i%2 == 1 {
			radius = r / 2
		}
		pts[i] = Pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
	}
	c.DrawPolygon(pts)
}

// DrawHeart draws a heart outline around (cx,cy): two circles for the
// lobes and a triangle for the point, sized so the heart spans roughly
// size pixels across.
func (c *Context) DrawHeart(cx, cy, size int) {
	if size <= 0 {
		return
	}
	hs := size / 2
	if hs < 1 {
		hs = 1
	}

	c.DrawCircle(cx-hs/2, cy-hs/3, hs/2)
	c.DrawCircle(cx+hs/2, cy-hs/3, hs/2)

	c.DrawPolygon([]Point{
		Pt(float64(cx-hs), float64(cy)),
		Pt(float64(cx+hs), float64(cy)),
		Pt(float64(cx), float64(cy+hs)),
	})
}

// Stroke draws a freehand brush segment from (x0,y0) to (x1,y1): a disc
// of diameter width stamped at every pixel of the segment's DDA path.
// Width 1 or less degenerates to a plain line. The active clip rectangle
// applies to the segment before stamping.
func (c *Context) Stroke(x0, y0, x1, y1 float64, width int) {
	if width <= 1 {
		c.DrawLine(x0, y0, x1, y1)
		return
	}

	if c.clipRect != nil {
		p0, p1, ok := clip.ClipLine(clip.Pt(x0, y0), clip.Pt(x1, y1), *c.clipRect)
		if !ok {
			return
		}
		x0, y0, x1, y1 = p0.X, p0.Y, p1.X, p1.Y
	}

	r := width / 2
	for _, p := range raster.DDA(x0, y0, x1, y1) {
		c.stampDisc(p.X, p.Y, r)
	}
}

// stampDisc fills the disc of radius r centered at (cx,cy) with the
// current color, by the integer radius-squared test.
func (c *Context) stampDisc(cx, cy, r int) {
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				c.dst.SetPixel(cx+dx, cy+dy, c.color)
			}
		}
	}
}
