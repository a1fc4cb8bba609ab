// Package minipaint provides the rasterization and area-fill engine of a
// 2D drawing application.
//
// # Overview
//
// The engine converts continuous geometric input (line endpoints, circle
// center and radius, Bézier control points, a fill seed) into discrete
// pixel writes on a caller-owned buffer. It is a synchronous,
// single-threaded, pure computation module: no hidden state, no history,
// no locking. The surrounding application (tool selection, undo/redo,
// persistence) consumes the engine through the pixel writes it produces.
//
// # Quick Start
//
//	import "github.com/yojanathapa2/minipaint"
//
//	dc := minipaint.NewContext(800, 600)
//	dc.Clear(minipaint.RGB(255, 255, 255))
//
//	dc.SetColor(minipaint.Hex("#2563EB"))
//	dc.DrawLine(10, 10, 390, 200)
//	dc.DrawCircle(200, 150, 80)
//	dc.Fill(200, 150)
//
// # Architecture
//
//   - Public API: Context, Pixmap, Surface, RGBA, Point
//   - internal/raster: DDA, Bresenham and Wu line rasterizers, midpoint
//     circle, Bézier sampling
//   - internal/clip: Cohen-Sutherland line clipping
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Pixel coordinates outside the surface are silently dropped by the
// bounds-checked write, never signaled.
package minipaint

// Version is the current version of the library.
const Version = "0.1.0"
