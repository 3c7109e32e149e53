package filter

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/colorcode/internal/color"
	"github.com/gogpu/colorcode/internal/image"
)

func TestPixelateAverageUniform(t *testing.T) {
	buf := filled(t, 50, 30, color.RGB(128, 128, 128))
	if err := PixelateAverage(buf, 16); err != nil {
		t.Fatalf("PixelateAverage() error = %v", err)
	}
	for y := 0; y < 30; y++ {
		for x := 0; x < 50; x++ {
			if got := buf.At(x, y); got != color.RGB(128, 128, 128) {
				t.Fatalf("At(%d, %d) = %v, want unchanged gray", x, y, got)
			}
		}
	}
}

func TestPixelateAverageBlocks(t *testing.T) {
	buf := filled(t, 4, 2, color.Black)
	buf.Set(0, 0, color.RGB(100, 0, 0))
	buf.Set(3, 1, color.RGB(0, 0, 200))

	if err := PixelateAverage(buf, 2); err != nil {
		t.Fatalf("PixelateAverage() error = %v", err)
	}

	left, right := color.RGB(25, 0, 0), color.RGB(0, 0, 50)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := left
			if x >= 2 {
				want = right
			}
			if got := buf.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPixelatePointSampled(t *testing.T) {
	buf := gradient(t, 8, 8)
	orig := buf.Clone()

	if err := Pixelate(buf, 4); err != nil {
		t.Fatalf("Pixelate() error = %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := orig.At(x/4*4+2, y/4*4+2)
			if got := buf.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want block center %v", x, y, got, want)
			}
		}
	}
}

func TestPixelateInvalidSize(t *testing.T) {
	buf := filled(t, 4, 4, color.Black)
	tests := []struct {
		name string
		run  func() error
	}{
		{"Pixelate", func() error { return Pixelate(buf, 0) }},
		{"PixelateAverage", func() error { return PixelateAverage(buf, -2) }},
		{"PixelateOffset", func() error { _, err := PixelateOffset(buf, 0, nil); return err }},
		{"PixelateOffsetAverage", func() error { _, err := PixelateOffsetAverage(buf, -1, nil); return err }},
	}
	for _, tt := range tests {
		if err := tt.run(); !errors.Is(err, image.ErrInvalidSize) {
			t.Errorf("%s() error = %v, want %v", tt.name, err, image.ErrInvalidSize)
		}
	}
}

func TestPixelateOffsetAverage(t *testing.T) {
	buf := filled(t, 40, 20, color.RGB(10, 200, 30))

	offsets, err := PixelateOffsetAverage(buf, 8, rand.NewPCG(5, 6))
	if err != nil {
		t.Fatalf("PixelateOffsetAverage() error = %v", err)
	}
	if offsets.Size() != 8 || offsets.Bands() != 3 {
		t.Errorf("offsets size %d bands %d, want 8 and 3", offsets.Size(), offsets.Bands())
	}
	for _, s := range offsets.Values() {
		if s < -4 || s >= 4 {
			t.Errorf("shift %d outside [-4, 4)", s)
		}
	}
	if got := buf.At(39, 19); got != color.RGB(10, 200, 30) {
		t.Errorf("uniform buffer changed: At(39, 19) = %v", got)
	}
}

func TestPixelateOffsetDeterministic(t *testing.T) {
	a, b := gradient(t, 24, 24), gradient(t, 24, 24)

	oa, err := PixelateOffset(a, 6, rand.NewPCG(9, 9))
	if err != nil {
		t.Fatal(err)
	}
	ob, err := PixelateOffset(b, 6, rand.NewPCG(9, 9))
	if err != nil {
		t.Fatal(err)
	}

	if !equalBuffers(a, b) {
		t.Error("identically seeded offset pixelations differ")
	}
	va, vb := oa.Values(), ob.Values()
	for i := range va {
		if va[i] != vb[i] {
			t.Errorf("band %d: %d != %d", i, va[i], vb[i])
		}
	}
}
