package filter

import (
	"fmt"
	"math"

	"github.com/gogpu/colorcode/internal/color"
	"github.com/gogpu/colorcode/internal/image"
)

// Anchor is the point inside a block a radial mask is centered on.
type Anchor uint8

const (
	// AnchorCenter centers the circle in the block.
	AnchorCenter Anchor = iota
	// AnchorTop touches the top edge, horizontally centered.
	AnchorTop
	// AnchorBottomLeft touches the bottom and left edges.
	AnchorBottomLeft
	// AnchorBottomRight touches the bottom and right edges.
	AnchorBottomRight
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorCenter:
		return "center"
	case AnchorTop:
		return "top"
	case AnchorBottomLeft:
		return "left"
	case AnchorBottomRight:
		return "right"
	default:
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
}

// Cutoff selects what happens to pixels outside the circle.
type Cutoff uint8

const (
	// CutoffAlpha keeps the color and sets alpha to 0.
	CutoffAlpha Cutoff = iota
	// CutoffSnap replaces the pixel with transparent white (CMY) or
	// transparent black (RGB).
	CutoffSnap
)

// String returns "alpha" or "snap".
func (c Cutoff) String() string {
	if c == CutoffSnap {
		return "snap"
	}
	return "alpha"
}

// Intensity returns how strongly p drives the mask radius in s: the
// brightest channel in RGB, the inverted darkest channel in CMY.
func Intensity(p color.Pixel, s Space) float64 {
	if s == SpaceRGB {
		return float64(p.Max()) / 255
	}
	return 1 - float64(p.Min())/255
}

// Radius returns the mask radius for a pixel in a block of the given size,
// between size/4 and size/2.
func Radius(size int, p color.Pixel, s Space) int {
	q := float64(size) / 4
	return int(q + q*Intensity(p, s))
}

// AnchorPoint returns the circle center inside a block for the given
// radius, in block-local coordinates.
func AnchorPoint(a Anchor, size, radius int) (x, y float64) {
	s, r := float64(size), float64(radius)
	switch a {
	case AnchorTop:
		return s / 2, r
	case AnchorBottomLeft:
		return r, s - r
	case AnchorBottomRight:
		return s - r, s - r
	default:
		return s / 2, s / 2
	}
}

// outside returns the pixel CutoffSnap writes outside the circle.
func outside(s Space) color.Pixel {
	if s == SpaceCMY {
		return color.Gray(255, 0)
	}
	return color.Gray(0, 0)
}

// mask applies the circle test to p, which sits at (x, y) in buffer
// coordinates.
func mask(p *color.Pixel, x, y, size int, a Anchor, s Space, c Cutoff) {
	radius := Radius(size, *p, s)
	ax, ay := AnchorPoint(a, size, radius)
	dx := float64(x%size) - ax
	dy := float64(y%size) - ay
	d := math.Sqrt(dx*dx + dy*dy)

	switch {
	case d > float64(radius):
		if c == CutoffSnap {
			p.Set(outside(s))
		} else {
			p.SetOpacity(0)
		}
	case d > float64(radius-1):
		p.SetOpacity(0.5)
	}
}

// Mask cuts every size x size block down to a circle whose radius follows
// the block color. Pixels on the one-pixel rim of the circle have their
// alpha halved.
func Mask(buf *image.Buffer, size int, a Anchor, s Space, c Cutoff) error {
	if size <= 0 {
		return fmt.Errorf("filter: mask size %d: %w", size, image.ErrInvalidSize)
	}
	buf.IndexedMap(func(p *color.Pixel, index int) {
		y, x := buf.Index2D(index)
		mask(p, x, y, size, a, s, c)
	})
	return nil
}

// MaskOffset is Mask over blocks shifted by offsets, so the circles line
// up with an offset pixelation that produced the same table.
func MaskOffset(buf *image.Buffer, offsets *image.Offsets, a Anchor, s Space, c Cutoff) error {
	if offsets == nil {
		return fmt.Errorf("filter: mask offset: nil offsets: %w", image.ErrInvalidSize)
	}
	size := offsets.Size()
	if size <= 0 {
		return fmt.Errorf("filter: mask offset size %d: %w", size, image.ErrInvalidSize)
	}
	buf.IndexedMapOffset(offsets, func(p *color.Pixel, index int) {
		y, x := buf.Index2D(index)
		mask(p, x, y, size, a, s, c)
	})
	return nil
}
