// Package color provides the Pixel value type and its arithmetic.
//
// Channels are plain ints so that intermediate results may leave the
// [0, 255] range. Nothing clamps implicitly: Add, Multiply and the Scale
// family return raw results, and callers decide when to call Clamp.
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is an RGBA value with 8-bit nominal channels.
type Pixel struct {
	R, G, B, A int
}

// Common pixels.
var (
	Transparent = Pixel{0, 0, 0, 0}
	Black       = Pixel{0, 0, 0, 255}
	White       = Pixel{255, 255, 255, 255}
)

// RGBA returns a pixel with the given channels.
func RGBA(r, g, b, a int) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// RGB returns an opaque pixel.
func RGB(r, g, b int) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// Gray returns a pixel with r = g = b = k.
func Gray(k, a int) Pixel {
	return Pixel{R: k, G: k, B: k, A: a}
}

// Add returns the component-wise sum of the color channels.
// Alpha is taken from p.
func (p Pixel) Add(o Pixel) Pixel {
	return Pixel{R: p.R + o.R, G: p.G + o.G, B: p.B + o.B, A: p.A}
}

// Multiply returns the component-wise product normalized by 255.
// Alpha is taken from p.
func (p Pixel) Multiply(o Pixel) Pixel {
	return Pixel{
		R: (p.R * o.R) / 255,
		G: (p.G * o.G) / 255,
		B: (p.B * o.B) / 255,
		A: p.A,
	}
}

// Scale multiplies every color channel by k.
func (p Pixel) Scale(k int) Pixel {
	return Pixel{R: p.R * k, G: p.G * k, B: p.B * k, A: p.A}
}

// ScaleFloat multiplies every color channel by k, truncating toward zero.
func (p Pixel) ScaleFloat(k float64) Pixel {
	return Pixel{
		R: int(float64(p.R) * k),
		G: int(float64(p.G) * k),
		B: int(float64(p.B) * k),
		A: p.A,
	}
}

// Min returns the smallest color channel.
func (p Pixel) Min() int {
	return min(p.R, p.G, p.B)
}

// Max returns the largest color channel.
func (p Pixel) Max() int {
	return max(p.R, p.G, p.B)
}

// Luminance returns floor(0.2126R + 0.7152G + 0.0722B) (ITU-R BT.709).
func (p Pixel) Luminance() int {
	return int(math.Floor(0.2126*float64(p.R) + 0.7152*float64(p.G) + 0.0722*float64(p.B)))
}

// Saturation returns the HSL saturation of the pixel in [0, 1].
// Channels outside [0, 255] are clamped first.
func (p Pixel) Saturation() float64 {
	c := p
	c.Clamp()
	_, s, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()
	return s
}

// Clamp limits all four channels to [0, 255].
func (p *Pixel) Clamp() {
	p.R = clamp255(p.R)
	p.G = clamp255(p.G)
	p.B = clamp255(p.B)
	p.A = clamp255(p.A)
}

// Set copies all channels of src into p.
func (p *Pixel) Set(src Pixel) {
	*p = src
}

// SetOpacity scales alpha by opacity, truncating toward zero.
// Repeated calls compound.
func (p *Pixel) SetOpacity(opacity float64) {
	p.A = int(float64(p.A) * opacity)
}

// NRGBA converts p to a non-premultiplied standard library color.
// Channels are clamped during conversion; p is unchanged.
func (p Pixel) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: uint8(clamp255(p.R)),
		G: uint8(clamp255(p.G)),
		B: uint8(clamp255(p.B)),
		A: uint8(clamp255(p.A)),
	}
}

// ARGB packs p as 0xAARRGGBB. Channels are clamped first.
func (p Pixel) ARGB() uint32 {
	c := p.NRGBA()
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromColor converts any standard library color to a Pixel,
// undoing alpha premultiplication.
func FromColor(c stdcolor.Color) Pixel {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Pixel{R: int(n.R), G: int(n.G), B: int(n.B), A: int(n.A)}
}

// String returns "(r, g, b, a)".
func (p Pixel) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", p.R, p.G, p.B, p.A)
}

func clamp255(v int) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return v
}
