package colorcode

import (
	stdimage "image"
	"io"

	"github.com/gogpu/colorcode/internal/image"
	"github.com/gogpu/colorcode/internal/output"
)

// Format is an encoded raster file format for stage output.
type Format = image.Format

// Output formats.
const (
	FormatPNG  = image.FormatPNG
	FormatJPEG = image.FormatJPEG
	FormatBMP  = image.FormatBMP
	FormatTIFF = image.FormatTIFF
)

// Sink receives named stage buffers. See WithSink.
type Sink = output.Sink

// DirSink writes every stage as one file in a directory.
type DirSink = output.DirSink

// ArchiveSink writes every stage into one zstd-compressed tar stream.
type ArchiveSink = output.ArchiveSink

// Pool hands out reusable buffers keyed by size. See WithPool.
type Pool = image.Pool

// Discard drops every stage.
var Discard Sink = output.Discard

// NewBuffer returns a fully transparent buffer of the given size.
func NewBuffer(width, height int) (*Buffer, error) {
	return image.New(width, height, true)
}

// FromImage copies a standard library image into a new Buffer.
func FromImage(img stdimage.Image) *Buffer {
	return image.FromStdImage(img)
}

// Load decodes the image file at path.
func Load(path string) (*Buffer, error) {
	return image.Load(path)
}

// Decode decodes a PNG, JPEG, GIF, BMP, TIFF or WebP image from r.
func Decode(r io.Reader) (*Buffer, error) {
	return image.Decode(r)
}

// Downscale returns a copy of b no wider than maxWidth.
func Downscale(b *Buffer, maxWidth int) *Buffer {
	return image.Downscale(b, maxWidth)
}

// ParseFormat parses a format name or extension such as "png" or ".tif".
func ParseFormat(s string) (Format, error) {
	return image.ParseFormat(s)
}

// NewDirSink creates dir if needed and returns a sink writing files in
// format f there.
func NewDirSink(dir string, f Format) (*DirSink, error) {
	return output.NewDirSink(dir, f)
}

// NewArchiveSink returns a sink writing a .tar.zst stream to w. Close
// finishes the stream but does not close w.
func NewArchiveSink(w io.Writer, f Format) (*ArchiveSink, error) {
	return output.NewArchiveSink(w, f)
}

// NewPool creates a buffer pool keeping at most maxPerBucket buffers of
// each size; 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return image.NewPool(maxPerBucket)
}
