package image

import (
	"bytes"
	"errors"
	"image"
	stdcolor "image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/colorcode/internal/color"
)

func TestFromStdImage_NRGBA(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	nrgba.Set(3, 3, stdcolor.NRGBA{R: 128, G: 64, B: 32, A: 200})

	buf := FromStdImage(nrgba)

	if buf.Width() != 10 || buf.Height() != 10 {
		t.Errorf("Dimensions = (%d, %d), want (10, 10)", buf.Width(), buf.Height())
	}
	if got := buf.At(3, 3); got != color.RGBA(128, 64, 32, 200) {
		t.Errorf("At(3, 3) = %v, want (128, 64, 32, 200)", got)
	}
	if !buf.HasAlpha() {
		t.Error("NRGBA source should report an alpha channel")
	}
}

func TestFromStdImage_Gray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(1, 2, stdcolor.Gray{Y: 128})

	buf := FromStdImage(gray)

	if got := buf.At(1, 2); got != color.Gray(128, 255) {
		t.Errorf("At(1, 2) = %v, want (128, 128, 128, 255)", got)
	}
	if buf.HasAlpha() {
		t.Error("gray source should not report an alpha channel")
	}
}

func TestFromStdImage_OffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.Set(5, 5, stdcolor.NRGBA{R: 9, G: 8, B: 7, A: 255})

	buf := FromStdImage(src)

	if buf.Width() != 3 || buf.Height() != 2 {
		t.Fatalf("Dimensions = (%d, %d), want (3, 2)", buf.Width(), buf.Height())
	}
	if got := buf.At(0, 0); got != color.RGB(9, 8, 7) {
		t.Errorf("At(0, 0) = %v, want (9, 8, 7, 255)", got)
	}
}

func TestNRGBAClampsChannels(t *testing.T) {
	buf := mustNew(t, 1, 1)
	buf.Set(0, 0, color.RGBA(300, -20, 128, 510))

	got := buf.NRGBA().NRGBAAt(0, 0)
	want := stdcolor.NRGBA{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestEncodeDecodeLossless(t *testing.T) {
	tests := []struct {
		format    Format
		keepAlpha bool
	}{
		{FormatPNG, true},
		{FormatTIFF, true},
		{FormatBMP, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			src := mustNew(t, 6, 4)
			gradient(src)
			src.Set(2, 1, color.RGBA(40, 50, 60, 128))

			var out bytes.Buffer
			if err := src.Encode(&out, tt.format); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := Decode(&out)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			for y := 0; y < 4; y++ {
				for x := 0; x < 6; x++ {
					want := src.At(x, y)
					if !tt.keepAlpha {
						want.A = 255
					}
					if got.At(x, y) != want {
						t.Errorf("At(%d, %d) = %v, want %v", x, y, got.At(x, y), want)
					}
				}
			}
		})
	}
}

func TestEncodeJPEGIsOpaque(t *testing.T) {
	src := mustNew(t, 8, 8)
	src.Fill(color.RGBA(200, 200, 200, 0))

	var out bytes.Buffer
	if err := src.Encode(&out, FormatJPEG); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(&out)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.HasAlpha() {
		t.Error("decoded JPEG should not report an alpha channel")
	}
	if p := got.At(4, 4); p.A != 255 || p.R < 190 || p.R > 210 {
		t.Errorf("At(4, 4) = %v, want opaque near-200 gray", p)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	buf := mustNew(t, 1, 1)
	if err := buf.Encode(&bytes.Buffer{}, Format(99)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(Format(99)) error = %v, want %v", err, ErrUnsupportedFormat)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode() error = %v, want %v", err, ErrUnsupportedFormat)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	src := mustNew(t, 5, 5)
	gradient(src)
	if err := src.Save(path, FormatPNG); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.At(4, 3) != src.At(4, 3) {
		t.Errorf("At(4, 3) = %v, want %v", got.At(4, 3), src.At(4, 3))
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	empty := filepath.Join(dir, "empty.png")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Load() of an empty file error = %v, want %v", err, ErrEmptyData)
	}
}

func TestDownscale(t *testing.T) {
	src := mustNew(t, 40, 20)
	src.Fill(color.RGB(100, 150, 200))

	small := Downscale(src, 10)
	if small.Width() != 10 || small.Height() != 5 {
		t.Errorf("Downscale(40x20, 10) = %dx%d, want 10x5", small.Width(), small.Height())
	}
	if small.HasAlpha() != src.HasAlpha() {
		t.Error("Downscale() lost the alpha flag")
	}

	same := Downscale(src, 0)
	if same == src || !same.SameSize(src) {
		t.Error("Downscale(0) should return a same-sized copy")
	}
	if wide := Downscale(src, 80); wide.Width() != 40 {
		t.Errorf("Downscale(80) width = %d, want 40", wide.Width())
	}
}
