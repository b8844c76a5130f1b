package imaging

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBPixel represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
//
// RGBPixel is a value type; copies are independent.
type RGBPixel struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
}

// HSLPixel represents a color in HSL (Hue, Saturation, Lightness) space.
//
// HSL is often more intuitive for color manipulation than RGB:
//   - Hue represents the color type (0=red, 120=green, 240=blue)
//   - Saturation represents color intensity (gray to vivid)
//   - Lightness represents brightness (black to white)
//
// An HSLPixel is derived from an RGBPixel on demand and is not stored in a
// Buffer.
type HSLPixel struct {
	H float64 // Hue in degrees, [0,360)
	S float64 // Saturation, [0,1]
	L float64 // Lightness, [0,1]
}

// ToHSL converts the pixel to HSL space.
//
// The conversion is the standard one: lightness is (max+min)/2 of the
// normalized channels, saturation is (max-min)/(1-|2L-1|), and hue follows
// the six-case formula in degrees. An achromatic pixel (max == min) has
// saturation 0 and, by convention, hue 0. Converting back with ToRGB
// reproduces the original channels within ±1.
func (p RGBPixel) ToHSL() HSLPixel {
	c := colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
	h, s, l := c.Hsl()
	return HSLPixel{H: h, S: s, L: l}
}

// ToRGB converts the pixel back to RGB, rounding each channel to the
// nearest integer and clamping to [0,255].
func (p HSLPixel) ToRGB() RGBPixel {
	c := colorful.Hsl(p.H, p.S, p.L)
	return RGBPixel{
		R: clampChannel(c.R * 255.0),
		G: clampChannel(c.G * 255.0),
		B: clampChannel(c.B * 255.0),
	}
}

// clampChannel rounds v to the nearest integer and clamps it to the 8-bit
// channel range. Values are never wrapped.
func clampChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clampUnit clamps v to [0,1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrapHue maps an arbitrary hue angle onto [0,360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
