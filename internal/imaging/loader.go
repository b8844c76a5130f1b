package imaging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// Decode reads and decodes the image file at path into a buffer.
// PNG, JPEG and BMP sources are supported. The error wraps the underlying
// open or decode failure.
func Decode(path string) (*Buffer, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}
	return FromImage(img), nil
}

// Encode writes the buffer to path in the given format. Supported formats
// are "png", "jpeg" (or "jpg") and "bmp"; anything else is an error before
// the destination is touched.
func Encode(b *Buffer, format, path string) error {
	var encoder imgio.Encoder
	switch strings.ToLower(format) {
	case "png":
		encoder = imgio.PNGEncoder()
	case "jpeg", "jpg":
		encoder = imgio.JPEGEncoder(jpegQuality)
	case "bmp":
		encoder = imgio.BMPEncoder()
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err := imgio.Save(path, b.ToImage(), encoder); err != nil {
		return fmt.Errorf("failed to encode image %q: %w", path, err)
	}
	return nil
}

const jpegQuality = 95

// BufferCache provides thread-safe caching of decoded buffers so overlay
// assets are read from disk once, not on every filter invocation.
//
// Cached buffers are keyed by the exact path string passed to Load, and the
// cache hands out the cached *Buffer itself. Transforms mutate buffers in
// place, so callers that intend to modify a cached buffer must Clone it
// first; Decorate's overlay arguments are read-only and can be used as-is.
//
// Buffers remain cached until Evict or Clear. BufferCache is safe for
// concurrent use.
type BufferCache struct {
	mu      sync.RWMutex
	buffers map[string]*Buffer
}

// NewBufferCache creates an empty cache ready for use.
func NewBufferCache() *BufferCache {
	return &BufferCache{
		buffers: make(map[string]*Buffer),
	}
}

// Load returns the cached buffer for path, decoding and caching it on the
// first call.
func (c *BufferCache) Load(path string) (*Buffer, error) {
	c.mu.RLock()
	if b, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	b, err := Decode(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.buffers[path] = b
	c.mu.Unlock()

	return b, nil
}

// Evict removes the buffer cached for path, if any. The next Load for that
// path reads from disk again.
func (c *BufferCache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// Clear drops every cached buffer.
func (c *BufferCache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*Buffer)
	c.mu.Unlock()
}

// FitOverlay resamples an overlay to the given dimensions using Lanczos
// filtering and returns the result as a new buffer. If the overlay already
// has the requested dimensions it is returned unchanged.
//
// Decorate requires overlays that exactly match the primary image; this is
// the caller-side policy for bringing an asset of different dimensions up
// to that contract.
func FitOverlay(overlay *Buffer, width, height int) *Buffer {
	if overlay.width == width && overlay.height == height {
		return overlay
	}
	return FromImage(imaging.Resize(overlay.ToImage(), width, height, imaging.Lanczos))
}
