package minipaint

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with 8-bit red, green, blue, and alpha
// channels. The zero value is fully transparent black.
type RGBA struct {
	R, G, B, A uint8
}

// Transparent is the sentinel returned for out-of-bounds pixel reads.
var Transparent = RGBA{}

// RGB creates an opaque color from RGB channel values.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// NewRGBA creates a color from explicit channel values.
func NewRGBA(r, g, b, a uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Forms without an alpha component are opaque. Malformed
// input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 255}
	}

	return RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		}
	}
}

// String returns the packed hex form of the color: "#RRGGBB" for opaque
// colors, "#RRGGBBAA" otherwise.
func (c RGBA) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// WithAlpha returns the color with its alpha channel replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Eq reports whether two colors match within a per-channel absolute
// difference tolerance. tol of 0 requires exact channel equality.
func (c RGBA) Eq(o RGBA, tol int) bool {
	return absDiff(c.R, o.R) <= tol &&
		absDiff(c.G, o.G) <= tol &&
		absDiff(c.B, o.B) <= tol &&
		absDiff(c.A, o.A) <= tol
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a) - int(b)
	}
	return int(b) - int(a)
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Mix blends two colors at t in [0, 1] (t=0 returns a, t=1 returns b).
// Blending happens in Lab space for perceptual smoothness, except when
// either color is gray, where RGB blending avoids hue artifacts.
func Mix(a, b RGBA, t float64) RGBA {
	ca, _ := colorful.MakeColor(a.WithAlpha(255).Color())
	cb, _ := colorful.MakeColor(b.WithAlpha(255).Color())

	var m colorful.Color
	if (ca.R == ca.G && ca.G == ca.B) || (cb.R == cb.G && cb.G == cb.B) {
		m = ca.BlendRgb(cb, t).Clamped()
	} else {
		m = ca.BlendLab(cb, t).Clamped()
	}
	r, g, bl := m.RGB255()
	return RGBA{R: r, G: g, B: bl, A: a.A}
}

// Lighten raises the color's HCL lightness by p (0..1 scale).
func Lighten(c RGBA, p float64) RGBA {
	return shiftLightness(c, p)
}

// Darken lowers the color's HCL lightness by p (0..1 scale).
func Darken(c RGBA, p float64) RGBA {
	return shiftLightness(c, -p)
}

func shiftLightness(c RGBA, delta float64) RGBA {
	cc, _ := colorful.MakeColor(c.WithAlpha(255).Color())
	h, ch, l := cc.Hcl()
	r, g, b := colorful.Hcl(h, ch, l+delta).Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: c.A}
}

// DefaultPalette is the stock color palette offered by the drawing
// application's toolbar.
var DefaultPalette = []RGBA{
	RGB(0, 0, 0),       // black
	RGB(255, 255, 255), // white
	RGB(239, 68, 68),   // red
	RGB(34, 197, 94),   // green
	RGB(37, 99, 235),   // blue
	RGB(251, 191, 36),  // yellow
	RGB(249, 115, 22),  // orange
	RGB(139, 92, 246),  // purple
	RGB(236, 72, 153),  // pink
	RGB(6, 182, 212),   // cyan
	RGB(128, 0, 0),
	RGB(0, 128, 0),
	RGB(0, 0, 128),
	RGB(128, 128, 0),
	RGB(128, 0, 128),
	RGB(0, 128, 128),
	RGB(128, 128, 128), // gray
	RGB(200, 200, 200), // light gray
	RGB(255, 128, 128),
	RGB(128, 255, 128),
	RGB(128, 128, 255),
	RGB(255, 255, 128),
	RGB(255, 128, 255),
	RGB(128, 255, 255),
	RGB(255, 192, 128),
	RGB(192, 128, 255),
}
