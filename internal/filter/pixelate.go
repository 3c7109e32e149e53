package filter

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/colorcode/internal/color"
	"github.com/gogpu/colorcode/internal/image"
)

// assign copies the block representative into every pixel of the block.
func assign(dst *color.Pixel, src color.Pixel, _ int) {
	dst.Set(src)
}

// Pixelate replaces every size x size block with its center pixel.
func Pixelate(buf *image.Buffer, size int) error {
	if err := buf.CoarseMap(size, assign); err != nil {
		return fmt.Errorf("filter: pixelate size %d: %w", size, err)
	}
	return nil
}

// PixelateAverage replaces every size x size block with its mean color.
// Blocks on the right and bottom edges are clipped to the buffer.
func PixelateAverage(buf *image.Buffer, size int) error {
	if err := buf.CoarseMapAverage(size, assign); err != nil {
		return fmt.Errorf("filter: pixelate average size %d: %w", size, err)
	}
	return nil
}

// PixelateOffset is Pixelate with every band of rows shifted by a random
// amount drawn from src. The returned table holds the shifts so masks can
// follow the same bands. A nil src uses a randomly seeded generator.
func PixelateOffset(buf *image.Buffer, size int, src rand.Source) (*image.Offsets, error) {
	if size <= 0 {
		return nil, fmt.Errorf("filter: pixelate offset size %d: %w", size, image.ErrInvalidSize)
	}
	offsets := image.NewOffsets(buf.Height(), size, src)
	if err := buf.OffsetCoarseMap(size, offsets, assign); err != nil {
		return nil, fmt.Errorf("filter: pixelate offset size %d: %w", size, err)
	}
	return offsets, nil
}

// PixelateOffsetAverage is PixelateAverage with per-band jitter, see
// PixelateOffset.
func PixelateOffsetAverage(buf *image.Buffer, size int, src rand.Source) (*image.Offsets, error) {
	if size <= 0 {
		return nil, fmt.Errorf("filter: pixelate offset average size %d: %w", size, image.ErrInvalidSize)
	}
	offsets := image.NewOffsets(buf.Height(), size, src)
	if err := buf.OffsetCoarseMapAverage(size, offsets, assign); err != nil {
		return nil, fmt.Errorf("filter: pixelate offset average size %d: %w", size, err)
	}
	return offsets, nil
}
