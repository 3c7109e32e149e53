// Package image provides the pixel buffer and its traversal engine.
//
// A Buffer owns a fixed-size grid of color.Pixel values. Every way of
// building a Buffer from another one copies the grid, so two buffers
// never share pixels.
package image

import (
	"errors"

	"github.com/gogpu/colorcode/internal/color"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidSize is returned when a block size is non-positive.
	ErrInvalidSize = errors.New("image: invalid block size")

	// ErrInvalidKernel is returned when a kernel dimension is not a positive odd number.
	ErrInvalidKernel = errors.New("image: kernel dimension must be positive and odd")
)

// Buffer is a height x width grid of pixels stored row-major.
//
// hasAlpha records whether the decoded source carried an alpha channel.
// It does not restrict arithmetic on the alpha channel.
type Buffer struct {
	pix      []color.Pixel
	width    int
	height   int
	hasAlpha bool
}

// New creates a fully transparent buffer of the given size.
func New(width, height int, hasAlpha bool) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		pix:      make([]color.Pixel, width*height),
		width:    width,
		height:   height,
		hasAlpha: hasAlpha,
	}, nil
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	pix := make([]color.Pixel, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{
		pix:      pix,
		width:    b.width,
		height:   b.height,
		hasAlpha: b.hasAlpha,
	}
}

// CopyFrom overwrites b's pixels with src's. Both must have the same size.
func (b *Buffer) CopyFrom(src *Buffer) {
	if b.width != src.width || b.height != src.height {
		panic("image: CopyFrom size mismatch")
	}
	copy(b.pix, src.pix)
	b.hasAlpha = src.hasAlpha
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// HasAlpha reports whether the source image carried an alpha channel.
func (b *Buffer) HasAlpha() bool {
	return b.hasAlpha
}

// SameSize reports whether b and o have identical dimensions.
func (b *Buffer) SameSize(o *Buffer) bool {
	return b.width == o.width && b.height == o.height
}

// Pixel returns a pointer to the pixel at (x, y) for in-place mutation.
// It panics if (x, y) is outside the buffer.
func (b *Buffer) Pixel(x, y int) *color.Pixel {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic("image: pixel coordinates out of bounds")
	}
	return &b.pix[y*b.width+x]
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) color.Pixel {
	return *b.Pixel(x, y)
}

// Set stores p at (x, y).
func (b *Buffer) Set(x, y int, p color.Pixel) {
	*b.Pixel(x, y) = p
}

// Fill sets every pixel to p.
func (b *Buffer) Fill(p color.Pixel) {
	for i := range b.pix {
		b.pix[i] = p
	}
}

// Clear resets every pixel to transparent black.
func (b *Buffer) Clear() {
	clear(b.pix)
}

// Index2D converts a linear index into (row, column).
func (b *Buffer) Index2D(i int) (y, x int) {
	return i / b.width, i % b.width
}

// Index1D converts (row, column) into a linear index.
func (b *Buffer) Index1D(y, x int) int {
	return y*b.width + x
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
