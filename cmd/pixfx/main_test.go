package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/softglow/pixfx/internal/imaging"
)

func writeAsset(t *testing.T, dir, name string, p imaging.RGBPixel) string {
	t.Helper()
	b := imaging.New(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			b.Set(x, y, p)
		}
	}
	path := filepath.Join(dir, name)
	if err := imaging.Encode(b, "png", path); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return path
}

func TestDecorate_CachesOverlayAssets(t *testing.T) {
	dir := t.TempDir()
	haloPath := writeAsset(t, dir, "halo.png", imaging.RGBPixel{R: 255, G: 255, B: 255})
	grainPath := writeAsset(t, dir, "grain.png", imaging.RGBPixel{})
	assets := imaging.NewBufferCache()

	newPrimary := func() *imaging.Buffer {
		b := imaging.New(2, 2)
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				b.Set(x, y, imaging.RGBPixel{R: 100, G: 100, B: 100})
			}
		}
		return b
	}

	out, err := decorate(newPrimary(), haloPath, grainPath, assets)
	if err != nil {
		t.Fatalf("decorate failed: %v", err)
	}
	if got := out.At(0, 0); got != (imaging.RGBPixel{R: 159, G: 146, B: 116}) {
		t.Errorf("got (%d,%d,%d), want (159,146,116)", got.R, got.G, got.B)
	}

	// The overlays must come from the cache now; removing the files proves
	// the second invocation does not touch the disk.
	if err := os.Remove(haloPath); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(grainPath); err != nil {
		t.Fatal(err)
	}

	out, err = decorate(newPrimary(), haloPath, grainPath, assets)
	if err != nil {
		t.Fatalf("decorate after asset removal failed: %v", err)
	}
	if got := out.At(1, 1); got != (imaging.RGBPixel{R: 159, G: 146, B: 116}) {
		t.Errorf("cached run: got (%d,%d,%d), want (159,146,116)", got.R, got.G, got.B)
	}
}

func TestDecorate_RequiresOverlayPaths(t *testing.T) {
	assets := imaging.NewBufferCache()
	if _, err := decorate(imaging.New(1, 1), "", "grain.png", assets); err == nil {
		t.Error("decorate should fail without a halo path")
	}
	if _, err := decorate(imaging.New(1, 1), "halo.png", "", assets); err == nil {
		t.Error("decorate should fail without a grain path")
	}
}

func TestApply_UnknownTransform(t *testing.T) {
	if _, err := apply("posterize", imaging.New(1, 1), 0, "", "", imaging.NewBufferCache()); err == nil {
		t.Error("apply should fail for an unknown transform")
	}
}
