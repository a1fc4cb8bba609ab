package minipaint

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Surface is the pixel I/O contract between the rasterization engine and
// a caller-owned buffer. SetPixel must silently drop out-of-bounds
// writes; PixelAt must return Transparent for out-of-bounds reads. The
// engine mutates exclusively through this interface and holds no state
// between calls.
type Surface interface {
	// SetPixel writes one pixel. Out-of-bounds coordinates are a no-op.
	SetPixel(x, y int, c RGBA)
	// PixelAt reads one pixel. Out-of-bounds coordinates return
	// Transparent.
	PixelAt(x, y int) RGBA
	// Width returns the buffer width in pixels.
	Width() int
	// Height returns the buffer height in pixels.
	Height() int
}

// Pixmap is the reference Surface: a W×H row-major RGBA buffer with
// 4 bytes per pixel. The buffer is owned by whoever created the Pixmap;
// drawing operations borrow it for the duration of one call.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

var _ Surface = (*Pixmap)(nil)
var _ image.Image = (*Pixmap)(nil)

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// PixelAt returns the color of a single pixel.
func (p *Pixmap) PixelAt(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory with
// the pixmap.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image, converting the source color
// model onto the pixmap's RGBA backing.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	dst := image.NewNRGBA(image.Rect(0, 0, pm.width, pm.height))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	copy(pm.data, dst.Pix)
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.PixelAt(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
