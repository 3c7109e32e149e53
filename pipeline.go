package colorcode

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/gogpu/colorcode/internal/blend"
	"github.com/gogpu/colorcode/internal/filter"
	"github.com/gogpu/colorcode/internal/image"
)

// channelAnchors places the three channel circles inside a block, in the
// order of filter.ChannelsFor.
var channelAnchors = [3]filter.Anchor{
	filter.AnchorTop,
	filter.AnchorBottomLeft,
	filter.AnchorBottomRight,
}

// Pipeline renders the color-separation effect.
//
// For every level it pixelates a copy of the source, separates the copy
// into three channels, masks each channel with an intensity-driven circle
// per block and composites the channels (darken for CMY, lighten for RGB).
// The level composites are then stacked with normal blending, coarsest
// level at the bottom.
//
// A Pipeline holds no state between runs apart from its buffer pool and
// jitter source. It is not safe for concurrent use.
type Pipeline struct {
	opts options
	pool *image.Pool
}

// New creates a pipeline with the given options.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pool := o.pool
	if pool == nil {
		pool = image.NewPool(8)
	}
	return &Pipeline{opts: o, pool: pool}
}

// Result describes one completed run.
type Result struct {
	// Space is the color space of the run.
	Space Space
	// Levels are the levels that ran, in order.
	Levels []Level
	// Final is the composite of all levels. The caller owns it.
	Final *Buffer
	// Stages are the names written to the sink, in order.
	Stages []string
}

// StageName returns the sink name of a stage:
// <base>-<version>-tri-<level>-<stage>.
func StageName(base, version string, level int, stage string) string {
	return fmt.Sprintf("%s-%s-tri-%d-%s", base, version, level, stage)
}

// modeFor returns the blend mode channels of s are composited with.
func modeFor(s Space) blend.Mode {
	if s == SpaceRGB {
		return blend.ModeLighten
	}
	return blend.ModeDarken
}

func (p *Pipeline) cutoff() Cutoff {
	if p.opts.cutoffSet {
		return p.opts.cutoff
	}
	if p.opts.schedule == ScheduleSingle {
		return CutoffSnap
	}
	return CutoffAlpha
}

// Run renders src in one color space. src is not modified.
//
// Levels below MinBlockSize are skipped with a warning; when none remain,
// Run returns ErrResolutionTooFine without writing anything. A failing
// sink write stops the run.
func (p *Pipeline) Run(src *Buffer, space Space) (*Result, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	start := time.Now()
	log := runLogger(space)

	levels, err := Levels(src.Width(), p.opts.levels, p.opts.schedule)
	if err != nil {
		if errors.Is(err, ErrResolutionTooFine) {
			log.Warn("all levels skipped", "width", src.Width(), "requested", p.opts.levels, "min_block", MinBlockSize)
		}
		return nil, err
	}
	if p.opts.schedule != ScheduleSingle && len(levels) < p.opts.levels {
		log.Warn("levels skipped", "requested", p.opts.levels, "running", len(levels), "min_block", MinBlockSize)
	}

	res := &Result{Space: space, Levels: levels}

	var final *Buffer
	for _, lv := range levels {
		comp, err := p.runLevel(src, space, lv, res)
		if err != nil {
			p.pool.Put(final)
			return nil, err
		}
		if final == nil {
			final = comp
			continue
		}
		err = blend.Fold(final, blend.ModeNormal, comp)
		p.pool.Put(comp)
		if err != nil {
			p.pool.Put(final)
			return nil, errors.Wrapf(err, "level %d normal composite", lv.Index)
		}
	}

	if p.opts.schedule != ScheduleSingle {
		name := StageName(p.opts.base, p.opts.version, p.opts.levels, space.String()+"-normal")
		if err := p.write(res, name, final); err != nil {
			p.pool.Put(final)
			return nil, err
		}
	}

	res.Final = final
	log.Info("run finished", "levels", len(levels), "stages", len(res.Stages), "elapsed", time.Since(start))
	return res, nil
}

// RunAll renders src in every color space of Spaces, one after the other.
// Results of completed runs are returned alongside an error.
func (p *Pipeline) RunAll(src *Buffer) (map[Space]*Result, error) {
	out := make(map[Space]*Result, len(Spaces))
	for _, s := range Spaces {
		res, err := p.Run(src, s)
		if err != nil {
			return out, errors.Wrapf(err, "%v run", s)
		}
		out[s] = res
	}
	return out, nil
}

// runLevel renders one level and returns its channel composite. All other
// intermediate buffers go back to the pool before it returns.
func (p *Pipeline) runLevel(src *Buffer, space Space, lv Level, res *Result) (*Buffer, error) {
	start := time.Now()
	log := levelLogger(space, lv)
	cutoff := p.cutoff()

	base := p.pool.Clone(src)
	defer p.pool.Put(base)

	var offsets *image.Offsets
	var err error
	t := time.Now()
	if p.opts.jitter != nil {
		offsets, err = filter.PixelateOffsetAverage(base, lv.Size, p.opts.jitter)
	} else {
		err = filter.PixelateAverage(base, lv.Size)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "level %d pixelate", lv.Index)
	}
	stageDone(log, "pixelate", t)

	mask := func(buf *Buffer, a filter.Anchor) error {
		if offsets != nil {
			return filter.MaskOffset(buf, offsets, a, space, cutoff)
		}
		return filter.Mask(buf, lv.Size, a, space, cutoff)
	}

	channels := filter.ChannelsFor(space)
	layers := make([]*Buffer, 0, len(channels)+1)
	defer func() {
		for _, l := range layers {
			if l != base {
				p.pool.Put(l)
			}
		}
	}()

	if p.opts.center {
		layers = append(layers, base)
	}
	for i, ch := range channels {
		t = time.Now()
		buf := p.pool.Clone(base)
		layers = append(layers, buf)

		filter.SeparateChannel(buf, ch)
		if err := mask(buf, channelAnchors[i]); err != nil {
			return nil, errors.Wrapf(err, "level %d mask %v", lv.Index, ch)
		}
		if err := p.write(res, StageName(p.opts.base, p.opts.version, lv.Index, ch.String()), buf); err != nil {
			return nil, err
		}
		stageDone(log, ch.String(), t)
	}

	// The center layer is masked last so the channels copy the unmasked
	// pixelation.
	if p.opts.center {
		t = time.Now()
		if err := mask(base, filter.AnchorCenter); err != nil {
			return nil, errors.Wrapf(err, "level %d mask center", lv.Index)
		}
		if err := p.write(res, StageName(p.opts.base, p.opts.version, lv.Index, space.String()+"-all"), base); err != nil {
			return nil, err
		}
		stageDone(log, "center", t)
	}

	t = time.Now()
	mode := modeFor(space)
	comp := p.pool.Clone(layers[0])
	if err := blend.Fold(comp, mode, layers[1:]...); err != nil {
		p.pool.Put(comp)
		return nil, errors.Wrapf(err, "level %d %v composite", lv.Index, mode)
	}

	stage := mode.String()
	if p.opts.schedule == ScheduleSingle {
		stage = space.String()
	}
	if err := p.write(res, StageName(p.opts.base, p.opts.version, lv.Index, stage), comp); err != nil {
		p.pool.Put(comp)
		return nil, err
	}
	stageDone(log, stage, t)

	log.Info("level finished", "elapsed", time.Since(start))
	return comp, nil
}

// write hands buf to the sink and records the stage name.
func (p *Pipeline) write(res *Result, name string, buf *Buffer) error {
	if err := p.opts.sink.Write(name, buf); err != nil {
		return errors.Wrapf(err, "write stage %s", name)
	}
	res.Stages = append(res.Stages, name)
	return nil
}
