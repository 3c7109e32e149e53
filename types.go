package colorcode

import (
	"github.com/gogpu/colorcode/internal/color"
	"github.com/gogpu/colorcode/internal/filter"
	"github.com/gogpu/colorcode/internal/image"
)

// Buffer is a grid of pixels. See the internal image package.
type Buffer = image.Buffer

// Pixel is an RGBA value with int channels.
type Pixel = color.Pixel

// Space selects the separation color space.
type Space = filter.Space

// Cutoff selects how mask filters clear pixels outside a circle.
type Cutoff = filter.Cutoff

// Color spaces.
const (
	SpaceCMY = filter.SpaceCMY
	SpaceRGB = filter.SpaceRGB
)

// Mask cutoffs.
const (
	CutoffAlpha = filter.CutoffAlpha
	CutoffSnap  = filter.CutoffSnap
)

// Spaces lists the color spaces RunAll processes, in order.
var Spaces = []Space{SpaceCMY, SpaceRGB}
