package filter

import (
	"testing"

	"github.com/gogpu/colorcode/internal/color"
	"github.com/gogpu/colorcode/internal/image"
)

// Test helper functions shared across filter tests.

// filled creates a buffer filled with the given pixel.
func filled(t *testing.T, w, h int, p color.Pixel) *image.Buffer {
	t.Helper()
	buf, err := image.New(w, h, true)
	if err != nil {
		t.Fatalf("image.New(%d, %d) error = %v", w, h, err)
	}
	buf.Fill(p)
	return buf
}

// gradient creates a buffer of distinct opaque pixels.
func gradient(t *testing.T, w, h int) *image.Buffer {
	t.Helper()
	buf := filled(t, w, h, color.Transparent)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.Set(x, y, color.RGB(x*7%256, y*11%256, (x+y)%256))
		}
	}
	return buf
}

// equalBuffers reports whether a and b hold identical pixels.
func equalBuffers(a, b *image.Buffer) bool {
	if !a.SameSize(b) {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}
