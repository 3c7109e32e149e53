package image

import (
	"fmt"
	"strings"
)

// Format is an encoded raster file format.
type Format uint8

const (
	// FormatPNG is lossless and keeps the alpha channel.
	FormatPNG Format = iota

	// FormatJPEG drops the alpha channel.
	FormatJPEG

	// FormatBMP drops the alpha channel.
	FormatBMP

	// FormatTIFF is lossless and keeps the alpha channel.
	FormatTIFF

	// formatCount is the number of formats (for internal use).
	formatCount
)

var formatInfo = [formatCount]struct {
	name  string
	ext   string
	alpha bool
}{
	FormatPNG:  {"png", ".png", true},
	FormatJPEG: {"jpeg", ".jpg", false},
	FormatBMP:  {"bmp", ".bmp", false},
	FormatTIFF: {"tiff", ".tiff", true},
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns the format name.
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatInfo[f].name
}

// Ext returns the file extension including the leading dot.
func (f Format) Ext() string {
	if !f.IsValid() {
		return ""
	}
	return formatInfo[f].ext
}

// KeepsAlpha reports whether the format stores an alpha channel.
func (f Format) KeepsAlpha() bool {
	return f.IsValid() && formatInfo[f].alpha
}

// ParseFormat parses a format name or extension such as "png", "jpg" or ".tif".
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}
