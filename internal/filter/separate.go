package filter

import (
	"fmt"

	"github.com/gogpu/colorcode/internal/color"
	"github.com/gogpu/colorcode/internal/image"
)

// Space is the color space a pipeline run separates into.
type Space uint8

const (
	// SpaceCMY separates into cyan, magenta and yellow. Darker blocks get
	// larger dots.
	SpaceCMY Space = iota
	// SpaceRGB separates into red, green and blue. Brighter blocks get
	// larger dots.
	SpaceRGB
)

// String returns "CMY" or "RGB".
func (s Space) String() string {
	switch s {
	case SpaceCMY:
		return "CMY"
	case SpaceRGB:
		return "RGB"
	default:
		return fmt.Sprintf("Space(%d)", uint8(s))
	}
}

// Channel is one of the six projections a buffer can be separated into.
type Channel uint8

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelCyan
	ChannelMagenta
	ChannelYellow

	channelCount
)

// channelInfo holds the separation constants. The CMY pairs isolate a
// primary and add its complement, the RGB ones add opaque black.
var channelInfo = [channelCount]struct {
	name    string
	mult    color.Pixel
	add     color.Pixel
	isolate color.Pixel
}{
	ChannelRed:     {"R", color.RGB(255, 0, 0), color.Gray(0, 255), color.RGB(255, 0, 0)},
	ChannelGreen:   {"G", color.RGB(0, 255, 0), color.Gray(0, 255), color.RGB(0, 255, 0)},
	ChannelBlue:    {"B", color.RGB(0, 0, 255), color.Gray(0, 255), color.RGB(0, 0, 255)},
	ChannelCyan:    {"C", color.RGB(255, 0, 0), color.RGB(0, 255, 255), color.RGB(0, 255, 255)},
	ChannelMagenta: {"M", color.RGB(0, 255, 0), color.RGB(255, 0, 255), color.RGB(255, 0, 255)},
	ChannelYellow:  {"Y", color.RGB(0, 0, 255), color.RGB(255, 255, 0), color.RGB(255, 255, 0)},
}

// String returns the single-letter channel name used in stage names.
func (c Channel) String() string {
	if c >= channelCount {
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
	return channelInfo[c].name
}

// Space returns the color space the channel belongs to.
func (c Channel) Space() Space {
	if c >= ChannelCyan {
		return SpaceCMY
	}
	return SpaceRGB
}

// ChannelsFor returns the three channels of s in compositing order.
func ChannelsFor(s Space) [3]Channel {
	if s == SpaceRGB {
		return [3]Channel{ChannelRed, ChannelGreen, ChannelBlue}
	}
	return [3]Channel{ChannelCyan, ChannelMagenta, ChannelYellow}
}

// Separate sets every pixel to pixel.Multiply(mult).Add(add). Alpha is
// kept and nothing is clamped.
func Separate(buf *image.Buffer, mult, add color.Pixel) {
	buf.Map(func(p *color.Pixel) {
		p.Set(p.Multiply(mult).Add(add))
	})
}

// SeparateChannel projects buf onto c with the pipeline constants.
func SeparateChannel(buf *image.Buffer, c Channel) {
	info := channelInfo[c]
	Separate(buf, info.mult, info.add)
}

// Isolate keeps only the components of c by multiplication, without the
// complement added by SeparateChannel.
func Isolate(buf *image.Buffer, c Channel) {
	mult := channelInfo[c].isolate
	buf.Map(func(p *color.Pixel) {
		p.Set(p.Multiply(mult))
	})
}
