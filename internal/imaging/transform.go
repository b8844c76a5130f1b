package imaging

import (
	"math"
	"sort"
)

// Grayscale converts the buffer to shades of gray by setting every channel
// of each pixel to the truncated mean of its three original channels.
// The buffer is mutated in place and returned.
func Grayscale(b *Buffer) *Buffer {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.At(x, y)
			avg := uint8((int(p.R) + int(p.G) + int(p.B)) / 3)
			b.Set(x, y, RGBPixel{R: avg, G: avg, B: avg})
		}
	}
	return b
}

// Invert replaces every channel value v with 255-v. Applying Invert twice
// restores the original image exactly. In place; returns b.
func Invert(b *Buffer) *Buffer {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.At(x, y)
			b.Set(x, y, RGBPixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B})
		}
	}
	return b
}

// Sepia applies the standard sepia tone matrix:
//
//	R' = 0.393R + 0.769G + 0.189B
//	G' = 0.349R + 0.686G + 0.168B
//	B' = 0.272R + 0.534G + 0.131B
//
// All three outputs are computed from the pixel's original channels before
// any of them is overwritten, then rounded and clamped. In place; returns b.
func Sepia(b *Buffer) *Buffer {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.At(x, y)
			r := float64(p.R)
			g := float64(p.G)
			bl := float64(p.B)
			b.Set(x, y, RGBPixel{
				R: clampChannel(0.393*r + 0.769*g + 0.189*bl),
				G: clampChannel(0.349*r + 0.686*g + 0.168*bl),
				B: clampChannel(0.272*r + 0.534*g + 0.131*bl),
			})
		}
	}
	return b
}

// luminance scores a pixel using ITU-R BT.601 weights over squared
// channels: sqrt(0.299·R² + 0.587·G² + 0.114·B²).
func luminance(p RGBPixel) float64 {
	r := float64(p.R)
	g := float64(p.G)
	b := float64(p.B)
	return math.Sqrt(0.299*r*r + 0.587*g*g + 0.114*b*b)
}

// StylizeBW reduces the image to pure black and pure white. Every pixel's
// luminance is scored, the median score is found, and pixels at or above
// the median become white while the rest become black. The original colors
// are discarded.
//
// The median of N sorted scores is the element at index N/2; for an even
// count this picks the upper of the two middle elements. An empty buffer is
// returned unchanged. In place; returns b.
func StylizeBW(b *Buffer) *Buffer {
	n := b.width * b.height
	if n == 0 {
		return b
	}

	lums := make([]float64, 0, n)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			lums = append(lums, luminance(b.At(x, y)))
		}
	}
	sort.Float64s(lums)
	median := lums[n/2]

	white := RGBPixel{R: 255, G: 255, B: 255}
	black := RGBPixel{}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if luminance(b.At(x, y)) >= median {
				b.Set(x, y, white)
			} else {
				b.Set(x, y, black)
			}
		}
	}
	return b
}

// Rotate90 returns a new buffer holding the image rotated 90° clockwise.
// The result has width equal to the source height and height equal to the
// source width; the source pixel at (x,y) lands at (H-1-y, x) where H is
// the source height. The source buffer is not modified. Zero-dimension
// sources produce a zero-dimension result with swapped dimensions.
func Rotate90(b *Buffer) *Buffer {
	out := New(b.height, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			out.Set(b.height-1-y, x, b.At(x, y))
		}
	}
	return out
}

// SetHue overwrites the hue of every pixel with the given angle in degrees,
// wrapped onto [0,360). Saturation and lightness are preserved. In place;
// returns b.
func SetHue(b *Buffer, hue float64) *Buffer {
	hue = wrapHue(hue)
	return eachHSL(b, func(c HSLPixel) HSLPixel {
		c.H = hue
		return c
	})
}

// SetSaturation overwrites the saturation of every pixel with the given
// value, clamped to [0,1]. Hue and lightness are preserved. In place;
// returns b.
func SetSaturation(b *Buffer, saturation float64) *Buffer {
	saturation = clampUnit(saturation)
	return eachHSL(b, func(c HSLPixel) HSLPixel {
		c.S = saturation
		return c
	})
}

// SetLightness overwrites the lightness of every pixel with the given
// value, clamped to [0,1]. Hue and saturation are preserved. In place;
// returns b.
func SetLightness(b *Buffer, lightness float64) *Buffer {
	lightness = clampUnit(lightness)
	return eachHSL(b, func(c HSLPixel) HSLPixel {
		c.L = lightness
		return c
	})
}

// eachHSL round-trips every pixel through HSL, applying fn in between.
func eachHSL(b *Buffer, fn func(HSLPixel) HSLPixel) *Buffer {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.Set(x, y, fn(b.At(x, y).ToHSL()).ToRGB())
		}
	}
	return b
}
