package colorcode

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/colorcode/internal/image"
	"github.com/gogpu/colorcode/internal/output"
)

func TestDefaultOptions(t *testing.T) {
	p := New()
	assert.Equal(t, 1, p.opts.levels)
	assert.Equal(t, SchedulePrimes, p.opts.schedule)
	assert.Equal(t, output.Discard, p.opts.sink)
	assert.Equal(t, "out", p.opts.base)
	assert.Nil(t, p.opts.jitter)
	assert.False(t, p.opts.center)
	assert.NotNil(t, p.pool)
	assert.Equal(t, CutoffAlpha, p.cutoff())
}

func TestOptions(t *testing.T) {
	pool := image.NewPool(2)
	sink := newMemorySink()
	src := rand.NewPCG(1, 1)

	p := New(
		WithLevels(3),
		WithSchedule(SchedulePowers),
		WithJitter(src),
		WithSink(sink),
		WithPool(pool),
		WithNames("photo", "v9"),
		WithCenterLayer(true),
	)
	assert.Equal(t, 3, p.opts.levels)
	assert.Equal(t, SchedulePowers, p.opts.schedule)
	assert.Equal(t, rand.Source(src), p.opts.jitter)
	assert.Same(t, sink, p.opts.sink)
	assert.Same(t, pool, p.pool)
	assert.Equal(t, "photo", p.opts.base)
	assert.Equal(t, "v9", p.opts.version)
	assert.True(t, p.opts.center)
}

func TestWithSinkNil(t *testing.T) {
	p := New(WithSink(nil))
	assert.Equal(t, output.Discard, p.opts.sink)
}

func TestCutoffSelection(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want Cutoff
	}{
		{"multi-level default", nil, CutoffAlpha},
		{"single default", []Option{WithSchedule(ScheduleSingle)}, CutoffSnap},
		{"explicit alpha on single", []Option{WithSchedule(ScheduleSingle), WithCutoff(CutoffAlpha)}, CutoffAlpha},
		{"explicit snap", []Option{WithCutoff(CutoffSnap)}, CutoffSnap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.opts...).cutoff())
		})
	}
}
