// Package colorcode renders a "color-separation" version of an image.
//
// # Overview
//
// The image is pixelated at several block sizes. At each size the blocks
// are split into three color channels, every channel block is cut down to
// a circle whose radius follows the block's intensity, and the channels
// are laid over each other. The per-size results are finally stacked into
// one picture, producing the overlapping dot patterns familiar from print
// separations (CMY) and display sub-pixels (RGB).
//
// # Quick Start
//
//	src, err := colorcode.Load("photo.jpg")
//	sink, err := colorcode.NewDirSink("out", colorcode.FormatPNG)
//
//	p := colorcode.New(
//	    colorcode.WithLevels(4),
//	    colorcode.WithSink(sink),
//	    colorcode.WithNames("photo", "v1"),
//	)
//	results, err := p.RunAll(src)
//
// # Levels
//
// A [Schedule] turns the image width and a requested level count into
// block sizes. [SchedulePrimes] divides the width by the squares of
// 1, 2, 3, 5, 7, ... so level grids rarely align. Any level whose block
// would be smaller than [MinBlockSize] ends the schedule.
//
// # Stages
//
// Every intermediate buffer is written to the configured sink under a
// name built by [StageName], for example photo-v1-tri-2-M for the magenta
// channel of level 2 and photo-v1-tri-4-CMY-normal for the final CMY
// composite of a four-level run.
//
// # Determinism
//
// Without [WithJitter] a run is fully deterministic. With jitter, each
// level draws one horizontal shift per band of rows; passing a seeded
// math/rand/v2 source reproduces the output exactly.
package colorcode
