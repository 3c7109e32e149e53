package image

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	// Register decoders beyond the standard library's.
	_ "image/gif"

	_ "golang.org/x/image/webp"

	"github.com/gogpu/colorcode/internal/color"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// jpegQuality is the quality used for JPEG output.
const jpegQuality = 90

// Load decodes the image file at path.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("image: stat file: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyData, path)
	}

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting PNG, JPEG, GIF, BMP,
// TIFF and WebP.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// FromStdImage copies a standard library image into a new Buffer.
// Color models without alpha (Gray, YCbCr, CMYK) yield HasAlpha() == false.
func FromStdImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Rect, img, bounds.Min, draw.Src)
	}

	buf := &Buffer{
		pix:      make([]color.Pixel, width*height),
		width:    width,
		height:   height,
		hasAlpha: modelHasAlpha(img.ColorModel()),
	}
	for y := range height {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := range width {
			p := row[x*4 : x*4+4 : x*4+4]
			buf.pix[y*width+x] = color.Pixel{R: int(p[0]), G: int(p[1]), B: int(p[2]), A: int(p[3])}
		}
	}
	return buf
}

func modelHasAlpha(m stdcolor.Model) bool {
	switch m {
	case stdcolor.GrayModel, stdcolor.Gray16Model, stdcolor.YCbCrModel, stdcolor.CMYKModel:
		return false
	default:
		return true
	}
}

// NRGBA converts the buffer into a standard library image, clamping
// every channel.
func (b *Buffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		row := img.Pix[y*img.Stride : y*img.Stride+b.width*4]
		for x := range b.width {
			c := b.pix[y*b.width+x].NRGBA()
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return img
}

// opaque returns the buffer as an image with alpha forced to 255 and the
// color channels left as stored.
func (b *Buffer) opaque() *image.NRGBA {
	img := b.NRGBA()
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

// Encode writes the buffer to w in the given format. Formats without alpha
// drop it and keep the stored color channels.
func (b *Buffer) Encode(w io.Writer, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, b.NRGBA())
	case FormatJPEG:
		err = jpeg.Encode(w, b.opaque(), &jpeg.Options{Quality: jpegQuality})
	case FormatBMP:
		err = bmp.Encode(w, b.opaque())
	case FormatTIFF:
		err = tiff.Encode(w, b.NRGBA(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", f, err)
	}
	return nil
}

// Save writes the buffer to path in the given format.
func (b *Buffer) Save(path string, f Format) error {
	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.Encode(out, f); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// Downscale returns a copy of b no wider than maxWidth, preserving the
// aspect ratio with Lanczos resampling. A non-positive maxWidth or a
// narrower buffer yields a plain copy.
func Downscale(b *Buffer, maxWidth int) *Buffer {
	if maxWidth <= 0 || b.width <= maxWidth {
		return b.Clone()
	}
	scaled := resize.Resize(uint(maxWidth), 0, b.NRGBA(), resize.Lanczos3)
	out := FromStdImage(scaled)
	out.hasAlpha = b.hasAlpha
	return out
}
