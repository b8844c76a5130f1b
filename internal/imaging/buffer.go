package imaging

import (
	"fmt"
	"image"
)

// Buffer is a width×height grid of RGB pixels addressed by (column, row).
//
// Coordinates are 0-based with origin at the top-left: valid columns are
// [0,Width) and valid rows are [0,Height). Accessing a coordinate outside
// that range is a programming error and panics; it is never silently
// clamped.
//
// Pixels are stored row-major. A zero-dimension buffer (width or height 0)
// is valid and holds no pixels.
type Buffer struct {
	width  int
	height int
	pix    []RGBPixel
}

// New allocates a buffer of the given dimensions with every pixel black
// (all channels 0). It panics if either dimension is negative.
func New(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("imaging: invalid buffer dimensions %dx%d", width, height))
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]RGBPixel, width*height),
	}
}

// Width returns the number of pixel columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of pixel rows.
func (b *Buffer) Height() int { return b.height }

// At returns the pixel at column x, row y. It panics if (x,y) is out of
// bounds.
func (b *Buffer) At(x, y int) RGBPixel {
	return b.pix[b.offset(x, y)]
}

// Set stores p at column x, row y. It panics if (x,y) is out of bounds.
func (b *Buffer) Set(x, y int, p RGBPixel) {
	b.pix[b.offset(x, y)] = p
}

func (b *Buffer) offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("imaging: coordinate (%d,%d) outside %dx%d buffer", x, y, b.width, b.height))
	}
	return y*b.width + x
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := New(b.width, b.height)
	copy(out.pix, b.pix)
	return out
}

// FromImage copies a decoded image into a new buffer.
//
// The image's native colors are reduced to 8-bit RGB; 16-bit sources are
// scaled down by right-shifting 8 bits. Any alpha channel is discarded.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	out := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			r, g, bl, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			out.pix[y*out.width+x] = RGBPixel{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(bl >> 8),
			}
		}
	}
	return out
}

// ToImage copies the buffer into a fully opaque NRGBA image, the form the
// encoders consume.
func (b *Buffer) ToImage() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.pix[y*b.width+x]
			i := out.PixOffset(x, y)
			out.Pix[i+0] = p.R
			out.Pix[i+1] = p.G
			out.Pix[i+2] = p.B
			out.Pix[i+3] = 255
		}
	}
	return out
}
