package minipaint

import "image"

// FloodFill repaints the 4-connected region of the seed's color with c,
// requiring exact channel equality. See FloodFillTolerance.
func FloodFill(dst Surface, seed image.Point, c RGBA) []image.Point {
	return FloodFillTolerance(dst, seed, c, 0)
}

// FloodFillTolerance reads the target color at seed and repaints every
// pixel 4-connected to the seed whose color matches the target within a
// per-channel absolute-difference tolerance. It returns the repainted
// points in discovery order, or nil when there is nothing to do: an
// out-of-bounds seed, or a target already matching c (which would
// otherwise grow the region into its own paint forever).
//
// The traversal is an explicit stack rather than recursion, so large
// buffers cannot exhaust the call stack. Each pixel is painted at most
// once: once painted it no longer matches the target, which is what
// terminates the walk without a separate visited set.
func FloodFillTolerance(dst Surface, seed image.Point, c RGBA, tol int) []image.Point {
	w, h := dst.Width(), dst.Height()
	if seed.X < 0 || seed.X >= w || seed.Y < 0 || seed.Y >= h {
		return nil
	}

	target := dst.PixelAt(seed.X, seed.Y)
	if target.Eq(c, tol) {
		return nil
	}

	var painted []image.Point
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			continue
		}
		if !dst.PixelAt(p.X, p.Y).Eq(target, tol) {
			continue
		}

		dst.SetPixel(p.X, p.Y, c)
		painted = append(painted, p)

		stack = append(stack,
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
		)
	}
	return painted
}
