package imaging

import (
	"image"
	"image/color"
	"testing"
)

// newPatternBuffer fills a buffer with coordinate-derived channel values so
// every pixel is distinct.
func newPatternBuffer(width, height int) *Buffer {
	b := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.Set(x, y, RGBPixel{
				R: uint8(x * 10),
				G: uint8(y * 10),
				B: uint8(x + y),
			})
		}
	}
	return b
}

// mustPanic runs fn and reports a test failure if it does not panic.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}

func TestNew_InitializedBlack(t *testing.T) {
	b := New(4, 3)
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", b.Width(), b.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if p := b.At(x, y); p != (RGBPixel{}) {
				t.Fatalf("pixel (%d,%d): got (%d,%d,%d), want black", x, y, p.R, p.G, p.B)
			}
		}
	}
}

func TestNew_ZeroDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		b := New(dims[0], dims[1])
		if b.Width() != dims[0] || b.Height() != dims[1] {
			t.Errorf("got %dx%d, want %dx%d", b.Width(), b.Height(), dims[0], dims[1])
		}
	}
}

func TestNew_NegativeDimensionsPanic(t *testing.T) {
	mustPanic(t, "New(-1, 5)", func() { New(-1, 5) })
	mustPanic(t, "New(5, -1)", func() { New(5, -1) })
}

func TestAtSet(t *testing.T) {
	b := New(3, 3)
	want := RGBPixel{R: 10, G: 20, B: 30}
	b.Set(1, 2, want)
	if got := b.At(1, 2); got != want {
		t.Errorf("got (%d,%d,%d), want (%d,%d,%d)", got.R, got.G, got.B, want.R, want.G, want.B)
	}
	// Neighbors untouched.
	if got := b.At(2, 1); got != (RGBPixel{}) {
		t.Errorf("pixel (2,1) modified: (%d,%d,%d)", got.R, got.G, got.B)
	}
}

func TestAt_OutOfBoundsPanics(t *testing.T) {
	b := New(4, 3)
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x too large", 4, 0},
		{"y too large", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanic(t, "At", func() { b.At(tt.x, tt.y) })
			mustPanic(t, "Set", func() { b.Set(tt.x, tt.y, RGBPixel{}) })
		})
	}
}

func TestClone_Independent(t *testing.T) {
	b := newPatternBuffer(4, 4)
	c := b.Clone()

	c.Set(0, 0, RGBPixel{R: 1, G: 2, B: 3})
	if b.At(0, 0) == (RGBPixel{R: 1, G: 2, B: 3}) {
		t.Error("mutating the clone modified the original")
	}
	if c.Width() != b.Width() || c.Height() != b.Height() {
		t.Errorf("clone dimensions: got %dx%d, want %dx%d",
			c.Width(), c.Height(), b.Width(), b.Height())
	}
}

func TestToImageFromImage_RoundTrip(t *testing.T) {
	b := newPatternBuffer(5, 4)
	got := FromImage(b.ToImage())

	if got.Width() != 5 || got.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 5x4", got.Width(), got.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if got.At(x, y) != b.At(x, y) {
				t.Fatalf("pixel (%d,%d) changed in round trip", x, y)
			}
		}
	}
}

func TestFromImage_NonZeroOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 3, 6, 8))
	img.SetNRGBA(2, 3, color.NRGBA{R: 11, G: 22, B: 33, A: 255})
	img.SetNRGBA(5, 7, color.NRGBA{R: 44, G: 55, B: 66, A: 255})

	b := FromImage(img)
	if b.Width() != 4 || b.Height() != 5 {
		t.Fatalf("dimensions: got %dx%d, want 4x5", b.Width(), b.Height())
	}
	if got := b.At(0, 0); got != (RGBPixel{R: 11, G: 22, B: 33}) {
		t.Errorf("top-left: got (%d,%d,%d)", got.R, got.G, got.B)
	}
	if got := b.At(3, 4); got != (RGBPixel{R: 44, G: 55, B: 66}) {
		t.Errorf("bottom-right: got (%d,%d,%d)", got.R, got.G, got.B)
	}
}
