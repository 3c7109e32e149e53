// Package filter provides the pixel filters of the color-separation
// pipeline and the standalone demo filters built on the same traversals.
//
// Pipeline filters:
//   - Pixelation: point sampled or block averaged, optionally with per-band
//     horizontal jitter recorded in an [image.Offsets] table
//   - Channel separation: multiply-then-add projection onto one additive or
//     subtractive primary
//   - Radial masks: an intensity-driven circle per block, anchored at the
//     center, top, bottom-left or bottom-right of the block
//
// Demo filters:
//   - Checker: adds a white/black checkerboard to every pixel
//   - Grayscale and Convolve: luminance then normalized kernel convolution
//
// Every filter mutates the buffer it is given. Callers clone first when the
// input must survive.
package filter
