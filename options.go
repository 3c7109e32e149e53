package colorcode

import (
	"math/rand/v2"

	"github.com/gogpu/colorcode/internal/filter"
	"github.com/gogpu/colorcode/internal/image"
	"github.com/gogpu/colorcode/internal/output"
)

// Option configures a Pipeline during creation.
//
// Example:
//
//	p := colorcode.New(
//	    colorcode.WithLevels(4),
//	    colorcode.WithSink(sink),
//	    colorcode.WithNames("photo", "v1"),
//	)
type Option func(*options)

// options holds optional configuration for a Pipeline.
type options struct {
	levels    int
	schedule  Schedule
	jitter    rand.Source
	sink      output.Sink
	cutoff    filter.Cutoff
	cutoffSet bool
	pool      *image.Pool
	base      string
	version   string
	center    bool
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		levels:   1,
		schedule: SchedulePrimes,
		sink:     output.Discard,
		base:     "out",
	}
}

// WithLevels sets how many levels are requested from the schedule.
func WithLevels(n int) Option {
	return func(o *options) {
		o.levels = n
	}
}

// WithSchedule selects how level block sizes are derived.
func WithSchedule(s Schedule) Option {
	return func(o *options) {
		o.schedule = s
	}
}

// WithJitter enables row-band jitter: every level pixelates with random
// horizontal offsets drawn from src and masks along the same bands.
// Passing the same seeded source reproduces a run exactly.
func WithJitter(src rand.Source) Option {
	return func(o *options) {
		o.jitter = src
	}
}

// WithSink sets where stage buffers are written. The pipeline never
// closes the sink.
func WithSink(s Sink) Option {
	return func(o *options) {
		if s == nil {
			s = output.Discard
		}
		o.sink = s
	}
}

// WithCutoff overrides the mask cutoff. By default ScheduleSingle snaps
// outside pixels and the multi-level schedules clear their alpha.
func WithCutoff(c Cutoff) Option {
	return func(o *options) {
		o.cutoff = c
		o.cutoffSet = true
	}
}

// WithPool sets the pool intermediate buffers are drawn from, so several
// pipelines can share one.
func WithPool(p *Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithNames sets the base name and version tag used in stage names.
func WithNames(base, version string) Option {
	return func(o *options) {
		o.base = base
		o.version = version
	}
}

// WithCenterLayer adds the pixelated copy, masked around block centers, as
// a fourth layer under the three channels of every level.
func WithCenterLayer(on bool) Option {
	return func(o *options) {
		o.center = on
	}
}
