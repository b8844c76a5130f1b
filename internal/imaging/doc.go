// Package imaging implements the pixfx transformation catalog over an owned
// 2-D grid of RGB pixels.
//
// The package has three layers:
//
//   - A color model: RGBPixel (three 8-bit channels) and HSLPixel (hue in
//     degrees, saturation and lightness as unit fractions), with
//     bidirectional conversion backed by go-colorful.
//
//   - A pixel grid: Buffer, a width×height grid of RGBPixel addressed by
//     (column, row) with (0,0) at the top-left, X increasing rightward and
//     Y increasing downward.
//
//   - Transforms: Grayscale, Invert, Sepia, StylizeBW, SetHue,
//     SetSaturation and SetLightness mutate their buffer in place and
//     return the same reference; Rotate90 allocates a new buffer with
//     swapped dimensions; Decorate blends two caller-supplied overlay
//     buffers into the primary one across three ordered passes.
//
// # Ownership
//
// A Buffer has exactly one logical owner. Transforms either mutate the
// buffer they are handed or return a freshly allocated replacement; they
// never retain a reference past the call. Nothing in this package is safe
// for concurrent mutation of a single Buffer except BufferCache, which is
// safe for concurrent use.
//
// # Error Handling
//
// Out-of-bounds coordinate access on a Buffer is a programming error and
// panics. Handing Decorate an overlay whose dimensions differ from the
// primary image is a caller contract violation and returns a
// *DimensionMismatchError before any pixel is touched. Decode and Encode
// wrap the underlying I/O or codec error.
//
// # Clamping
//
// Transform arithmetic can leave the 8-bit range (a red channel scaled by
// 1.2, for example). Every arithmetic result is rounded to nearest and
// clamped to [0,255] before it is stored; values are never wrapped.
package imaging
