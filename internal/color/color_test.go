package color

import (
	stdcolor "image/color"
	"math"
	"testing"
)

func TestPixelAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Pixel
		want Pixel
	}{
		{"zero", RGBA(10, 20, 30, 40), Transparent, RGBA(10, 20, 30, 40)},
		{"alpha from receiver", RGBA(1, 2, 3, 100), RGBA(4, 5, 6, 7), RGBA(5, 7, 9, 100)},
		{"overflow kept", RGB(200, 200, 200), RGB(100, 100, 100), RGB(300, 300, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.want {
				t.Errorf("Add() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPixelMultiply(t *testing.T) {
	tests := []struct {
		name string
		a, b Pixel
		want Pixel
	}{
		{"isolate red", RGB(200, 100, 50), RGB(255, 0, 0), RGB(200, 0, 0)},
		{"truncates", RGB(128, 128, 128), Gray(128, 255), RGB(64, 64, 64)},
		{"alpha from receiver", RGBA(255, 255, 255, 17), RGBA(255, 255, 255, 0), RGBA(255, 255, 255, 17)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Multiply(tt.b); got != tt.want {
				t.Errorf("Multiply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPixelScale(t *testing.T) {
	p := RGBA(10, 20, 30, 99)
	if got, want := p.Scale(3), RGBA(30, 60, 90, 99); got != want {
		t.Errorf("Scale(3) = %v, want %v", got, want)
	}
	if got, want := p.ScaleFloat(0.5), RGBA(5, 10, 15, 99); got != want {
		t.Errorf("ScaleFloat(0.5) = %v, want %v", got, want)
	}
	if got, want := RGB(7, 7, 7).ScaleFloat(1.0/3), RGB(2, 2, 2); got != want {
		t.Errorf("ScaleFloat(1/3) = %v, want %v", got, want)
	}
}

func TestPixelMinMax(t *testing.T) {
	p := RGB(40, 200, 90)
	if p.Min() != 40 {
		t.Errorf("Min() = %d, want 40", p.Min())
	}
	if p.Max() != 200 {
		t.Errorf("Max() = %d, want 200", p.Max())
	}
}

func TestPixelLuminance(t *testing.T) {
	tests := []struct {
		p    Pixel
		want int
	}{
		{Black, 0},
		{Gray(100, 255), 100},
		{RGB(255, 0, 0), 54},
		{RGB(0, 255, 0), 182},
		{RGB(0, 0, 255), 18},
	}
	for _, tt := range tests {
		if got := tt.p.Luminance(); got != tt.want {
			t.Errorf("Luminance(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestPixelSaturation(t *testing.T) {
	tests := []struct {
		name string
		p    Pixel
		want float64
	}{
		{"gray", Gray(128, 255), 0},
		{"pure red", RGB(255, 0, 0), 1},
		{"dark red", RGB(100, 0, 0), 1},
		{"pastel", RGB(255, 128, 128), 127.0 / (510 - 255 - 128)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Saturation(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Saturation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPixelClamp(t *testing.T) {
	values := []int{-1000, -1, 0, 1, 128, 254, 255, 256, 1000}
	for _, r := range values {
		for _, a := range values {
			p := RGBA(r, -r, r*2, a)
			p.Clamp()
			for _, c := range []int{p.R, p.G, p.B, p.A} {
				if c < 0 || c > 255 {
					t.Fatalf("Clamp(%d, %d, %d, %d) left channel %d", r, -r, r*2, a, c)
				}
			}
		}
	}
	p := RGBA(300, -5, 17, 256)
	p.Clamp()
	if want := RGBA(255, 0, 17, 255); p != want {
		t.Errorf("Clamp() = %v, want %v", p, want)
	}
}

func TestPixelSetOpacity(t *testing.T) {
	p := RGBA(1, 2, 3, 255)
	p.SetOpacity(0.5)
	if p.A != 127 {
		t.Errorf("SetOpacity(0.5) alpha = %d, want 127", p.A)
	}
	p.SetOpacity(0.5)
	if p.A != 63 {
		t.Errorf("second SetOpacity(0.5) alpha = %d, want 63", p.A)
	}
	p.SetOpacity(0)
	if p.A != 0 {
		t.Errorf("SetOpacity(0) alpha = %d, want 0", p.A)
	}
	if p.R != 1 || p.G != 2 || p.B != 3 {
		t.Errorf("SetOpacity changed color channels: %v", p)
	}
}

func TestPixelConversions(t *testing.T) {
	p := RGBA(300, 20, -4, 128)
	if got, want := p.NRGBA(), (stdcolor.NRGBA{R: 255, G: 20, B: 0, A: 128}); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
	if got := RGBA(0x11, 0x22, 0x33, 0x44).ARGB(); got != 0x44112233 {
		t.Errorf("ARGB() = %#x, want %#x", got, 0x44112233)
	}
	if got, want := FromColor(stdcolor.NRGBA{R: 10, G: 20, B: 30, A: 255}), RGB(10, 20, 30); got != want {
		t.Errorf("FromColor() = %v, want %v", got, want)
	}
	if got, want := FromColor(stdcolor.Gray{Y: 77}), Gray(77, 255); got != want {
		t.Errorf("FromColor(Gray) = %v, want %v", got, want)
	}
	if got := RGBA(1, 2, 3, 4).String(); got != "(1, 2, 3, 4)" {
		t.Errorf("String() = %q", got)
	}
}
