package filter

import (
	"github.com/gogpu/colorcode/internal/color"
	"github.com/gogpu/colorcode/internal/image"
)

// Checker adds opaque white to pixels where x+y is even and opaque black
// elsewhere, then clamps. Alpha is kept.
func Checker(buf *image.Buffer) {
	buf.IndexedMap(func(p *color.Pixel, index int) {
		y, x := buf.Index2D(index)
		over := color.Black
		if (x+y)%2 == 0 {
			over = color.White
		}
		*p = p.Add(over)
		p.Clamp()
	})
}
