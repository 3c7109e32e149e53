// Package blend provides the per-pixel blend laws and the buffer
// compositing folds built on them.
//
// All laws work on straight (non-premultiplied) 0-255 pixels and clamp
// their result. Arithmetic is integer with truncation, except Normal which
// computes in float64 and truncates each channel.
package blend

import (
	"fmt"

	"github.com/gogpu/colorcode/internal/color"
)

// Mode selects a blend law.
type Mode uint8

const (
	// ModeDarken keeps the per-channel minimum.
	ModeDarken Mode = iota
	// ModeLighten keeps the per-channel maximum.
	ModeLighten
	// ModeNormal draws the layer over the base ("over" compositing).
	ModeNormal
)

// String returns the lowercase mode name, also used in stage names.
func (m Mode) String() string {
	switch m {
	case ModeDarken:
		return "darken"
	case ModeLighten:
		return "lighten"
	case ModeNormal:
		return "normal"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Func is the signature of a blend law. base is the accumulated result and
// over the pixel being blended in.
type Func func(base, over color.Pixel) color.Pixel

// GetFunc returns the blend law for mode.
// Returns Normal for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case ModeDarken:
		return Darken
	case ModeLighten:
		return Lighten
	default:
		return Normal
	}
}

// Darken returns the per-channel minimum of a and b with the averaged
// alpha. A fully transparent operand never darkens: the other one is
// returned unchanged, and a when both are transparent.
func Darken(a, b color.Pixel) color.Pixel {
	if b.A == 0 {
		return a
	}
	if a.A == 0 {
		return b
	}
	p := color.RGBA(min(a.R, b.R), min(a.G, b.G), min(a.B, b.B), (a.A+b.A)/2)
	p.Clamp()
	return p
}

// Lighten returns the per-channel maximum of a and b with the averaged
// alpha. A fully transparent operand never lightens: the other one is
// returned unchanged, and a when both are transparent.
func Lighten(a, b color.Pixel) color.Pixel {
	if b.A == 0 {
		return a
	}
	if a.A == 0 {
		return b
	}
	p := color.RGBA(max(a.R, b.R), max(a.G, b.G), max(a.B, b.B), (a.A+b.A)/2)
	p.Clamp()
	return p
}

// Normal composites over on top of base:
//
//	c = over.c*over.a/255 + base.c*(1-over.a/255)*base.a/255
//	a = over.a + base.a*(1-over.a/255)
//
// An opaque over replaces base entirely and a transparent one leaves it
// untouched.
func Normal(base, over color.Pixel) color.Pixel {
	if over.A == 0 {
		return base
	}

	oa := float64(over.A) / 255
	ba := float64(base.A) / 255
	inv := 1 - oa

	channel := func(o, b int) int {
		return int(float64(o)*oa + float64(b)*inv*ba)
	}

	p := color.RGBA(
		channel(over.R, base.R),
		channel(over.G, base.G),
		channel(over.B, base.B),
		int(float64(over.A)+float64(base.A)*inv),
	)
	p.Clamp()
	return p
}
