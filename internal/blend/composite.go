package blend

import (
	"errors"
	"fmt"

	"github.com/gogpu/colorcode/internal/color"
	"github.com/gogpu/colorcode/internal/image"
)

// Compositing errors.
var (
	// ErrNoLayers is returned when every layer passed to a composite is nil.
	ErrNoLayers = errors.New("blend: no layers to composite")

	// ErrSizeMismatch is returned when layers differ in dimensions.
	ErrSizeMismatch = errors.New("blend: layer size mismatch")
)

// Composite folds layers into a fresh buffer with the blend law of mode.
//
// Layers are ordered back to front: the first non-nil layer is copied and
// every following one is blended over the accumulator. Nil layers are
// skipped, so a schedule that stopped early can pass its unused slots.
// The inputs are never modified.
func Composite(mode Mode, layers ...*image.Buffer) (*image.Buffer, error) {
	for i, layer := range layers {
		if layer == nil {
			continue
		}
		dst := layer.Clone()
		if err := Fold(dst, mode, layers[i+1:]...); err != nil {
			return nil, err
		}
		return dst, nil
	}
	return nil, ErrNoLayers
}

// Fold blends layers onto dst in order, in place. Nil layers are skipped.
// Every non-nil layer must have the dimensions of dst.
func Fold(dst *image.Buffer, mode Mode, layers ...*image.Buffer) error {
	fn := GetFunc(mode)
	for i, layer := range layers {
		if layer == nil {
			continue
		}
		if !dst.SameSize(layer) {
			return fmt.Errorf("%w: layer %d is %dx%d, want %dx%d",
				ErrSizeMismatch, i, layer.Width(), layer.Height(), dst.Width(), dst.Height())
		}
		dst.IndexedMap(func(p *color.Pixel, index int) {
			y, x := dst.Index2D(index)
			*p = fn(*p, layer.At(x, y))
		})
	}
	return nil
}

// CompositeDarken folds layers with Darken.
func CompositeDarken(layers ...*image.Buffer) (*image.Buffer, error) {
	return Composite(ModeDarken, layers...)
}

// CompositeLighten folds layers with Lighten.
func CompositeLighten(layers ...*image.Buffer) (*image.Buffer, error) {
	return Composite(ModeLighten, layers...)
}

// CompositeNormal stacks layers with Normal, index 0 at the bottom.
func CompositeNormal(layers ...*image.Buffer) (*image.Buffer, error) {
	return Composite(ModeNormal, layers...)
}
