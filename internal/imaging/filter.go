package imaging

import "fmt"

// DimensionMismatchError reports an overlay buffer whose dimensions do not
// match the primary image handed to Decorate.
type DimensionMismatchError struct {
	Overlay    string // which overlay: "halo" or "grain"
	WantWidth  int
	WantHeight int
	GotWidth   int
	GotHeight  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("imaging: %s overlay is %dx%d, want %dx%d to match the primary image",
		e.Overlay, e.GotWidth, e.GotHeight, e.WantWidth, e.WantHeight)
}

// Decorate applies the decorative composite filter: a warm color shift, a
// vignette blend against the halo overlay, and a grain blend against the
// grain overlay. The three passes run strictly in that order, each reading
// the output of the previous one:
//
//  1. R ← 1.2·R (clamped), G unchanged, B ← B/2 (integer halving)
//  2. each channel ← 0.65·channel + 0.35·halo channel at the same coordinate
//  3. each channel ← 0.95·channel + 0.05·grain channel at the same coordinate
//
// Both overlays must have exactly the primary buffer's dimensions; resizing
// policy belongs to the caller (see FitOverlay). Dimensions are validated
// before any pixel is touched, so on error the primary buffer is unchanged.
// Otherwise b is mutated in place and returned.
func Decorate(b, halo, grain *Buffer) (*Buffer, error) {
	if err := checkOverlay("halo", b, halo); err != nil {
		return nil, err
	}
	if err := checkOverlay("grain", b, grain); err != nil {
		return nil, err
	}

	// Warm shift.
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.At(x, y)
			b.Set(x, y, RGBPixel{
				R: clampChannel(1.2 * float64(p.R)),
				G: p.G,
				B: p.B / 2,
			})
		}
	}

	blend(b, halo, 0.65, 0.35)
	blend(b, grain, 0.95, 0.05)
	return b, nil
}

// blend mixes every channel of b with the overlay at the same coordinate
// using the given weights.
func blend(b, overlay *Buffer, w, ow float64) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.At(x, y)
			o := overlay.At(x, y)
			b.Set(x, y, RGBPixel{
				R: clampChannel(w*float64(p.R) + ow*float64(o.R)),
				G: clampChannel(w*float64(p.G) + ow*float64(o.G)),
				B: clampChannel(w*float64(p.B) + ow*float64(o.B)),
			})
		}
	}
}

func checkOverlay(name string, primary, overlay *Buffer) error {
	if overlay.width != primary.width || overlay.height != primary.height {
		return &DimensionMismatchError{
			Overlay:    name,
			WantWidth:  primary.width,
			WantHeight: primary.height,
			GotWidth:   overlay.width,
			GotHeight:  overlay.height,
		}
	}
	return nil
}
