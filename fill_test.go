package minipaint

import (
	"image"
	"testing"
)

func TestFloodFill_FillsWholeBuffer(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.Clear(RGB(255, 255, 255))
	red := RGB(239, 68, 68)

	painted := FloodFill(pm, image.Pt(2, 2), red)

	if len(painted) != 25 {
		t.Errorf("painted %d pixels, want 25", len(painted))
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := pm.PixelAt(x, y); got != red {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, red)
			}
		}
	}
}

func TestFloodFill_Idempotent(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.Clear(RGB(255, 255, 255))
	red := RGB(239, 68, 68)

	FloodFill(pm, image.Pt(2, 2), red)
	again := FloodFill(pm, image.Pt(2, 2), red)

	if len(again) != 0 {
		t.Errorf("refilling with the same color painted %d pixels, want 0", len(again))
	}
}

func TestFloodFill_StopsAtBoundary(t *testing.T) {
	pm := NewPixmap(7, 7)
	pm.Clear(RGB(255, 255, 255))
	black := RGB(0, 0, 0)

	// Vertical wall at x=3 splits the buffer.
	for y := 0; y < 7; y++ {
		pm.SetPixel(3, y, black)
	}

	green := RGB(34, 197, 94)
	painted := FloodFill(pm, image.Pt(1, 3), green)

	if len(painted) != 21 { // 3 columns * 7 rows left of the wall
		t.Errorf("painted %d pixels, want 21", len(painted))
	}
	// Right side untouched.
	for y := 0; y < 7; y++ {
		for x := 4; x < 7; x++ {
			if got := pm.PixelAt(x, y); got != RGB(255, 255, 255) {
				t.Errorf("pixel (%d,%d) leaked across the wall: %v", x, y, got)
			}
		}
	}
	// The wall itself keeps its color.
	if got := pm.PixelAt(3, 3); got != black {
		t.Errorf("wall pixel repainted: %v", got)
	}
}

// Diagonal neighbors are not connected: a diagonal barrier stops the
// 4-connected fill.
func TestFloodFill_FourConnectivity(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(RGB(255, 255, 255))
	black := RGB(0, 0, 0)

	// Diagonal barrier.
	pm.SetPixel(0, 1, black)
	pm.SetPixel(1, 0, black)

	blue := RGB(37, 99, 235)
	painted := FloodFill(pm, image.Pt(0, 0), blue)

	if len(painted) != 1 {
		t.Errorf("painted %d pixels, want 1 (corner sealed by diagonal barrier)", len(painted))
	}
	if got := pm.PixelAt(1, 1); got != RGB(255, 255, 255) {
		t.Errorf("fill crossed a diagonal: (1,1) = %v", got)
	}
}

func TestFloodFill_OutOfBoundsSeed(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(RGB(255, 255, 255))

	for _, seed := range []image.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 4, Y: 2}, {X: 2, Y: 4}} {
		if painted := FloodFill(pm, seed, RGB(0, 0, 0)); painted != nil {
			t.Errorf("seed %v painted %d pixels, want none", seed, len(painted))
		}
	}
}

func TestFloodFillTolerance(t *testing.T) {
	pm := NewPixmap(3, 1)
	pm.SetPixel(0, 0, RGB(100, 100, 100))
	pm.SetPixel(1, 0, RGB(104, 100, 100)) // within tolerance 5
	pm.SetPixel(2, 0, RGB(120, 100, 100)) // outside tolerance 5

	red := RGB(255, 0, 0)
	painted := FloodFillTolerance(pm, image.Pt(0, 0), red, 5)

	if len(painted) != 2 {
		t.Errorf("painted %d pixels, want 2", len(painted))
	}
	if got := pm.PixelAt(2, 0); got != RGB(120, 100, 100) {
		t.Errorf("out-of-tolerance pixel repainted: %v", got)
	}
}

// Every 4-connected pixel of the target color reachable from the seed
// must be painted: no unpainted pockets remain.
func TestFloodFill_NoReachableTargetLeft(t *testing.T) {
	pm := NewPixmap(9, 9)
	pm.Clear(RGB(255, 255, 255))
	black := RGB(0, 0, 0)

	// A spiral-ish wall leaving a single winding corridor.
	for x := 1; x < 8; x++ {
		pm.SetPixel(x, 1, black)
	}
	for y := 1; y < 7; y++ {
		pm.SetPixel(7, y, black)
	}
	for x := 3; x <= 7; x++ {
		pm.SetPixel(x, 6, black)
	}

	blue := RGB(37, 99, 235)
	FloodFill(pm, image.Pt(0, 0), blue)

	// Walk the whole buffer: any remaining white pixel must not touch a
	// painted pixel (otherwise it was reachable and missed).
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if pm.PixelAt(x, y) != RGB(255, 255, 255) {
				continue
			}
			neighbors := []image.Point{
				{X: x + 1, Y: y}, {X: x - 1, Y: y},
				{X: x, Y: y + 1}, {X: x, Y: y - 1},
			}
			for _, n := range neighbors {
				if pm.PixelAt(n.X, n.Y) == blue {
					t.Errorf("white pixel (%d,%d) adjacent to filled region was not painted", x, y)
				}
			}
		}
	}
}
