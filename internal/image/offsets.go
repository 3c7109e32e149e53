package image

import "math/rand/v2"

// Offsets is a lazily filled table of horizontal shifts, one per band of
// size rows. The first lookup in a band draws a non-zero shift in
// [-size/2, size/2) from the random source, so every band moves; later
// lookups return the same value. Bands of one row cannot move.
//
// An Offsets table belongs to one filter application and the filters that
// must stay aligned with it. It is not safe for concurrent use.
type Offsets struct {
	size     int
	shifts   []int
	assigned []bool
	rng      *rand.Rand
}

// NewOffsets creates an empty table covering height rows in bands of size.
// A nil src uses a randomly seeded PCG source.
func NewOffsets(height, size int, src rand.Source) *Offsets {
	if size <= 0 {
		panic("image: NewOffsets with non-positive size")
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	bands := height/size + 1
	return &Offsets{
		size:     size,
		shifts:   make([]int, bands),
		assigned: make([]bool, bands),
		rng:      rand.New(src),
	}
}

// FixedOffsets creates a fully assigned table from explicit shifts.
func FixedOffsets(size int, shifts []int) *Offsets {
	if size <= 0 {
		panic("image: FixedOffsets with non-positive size")
	}
	o := &Offsets{
		size:     size,
		shifts:   make([]int, len(shifts)),
		assigned: make([]bool, len(shifts)),
	}
	copy(o.shifts, shifts)
	for i := range o.assigned {
		o.assigned[i] = true
	}
	return o
}

// Size returns the band height.
func (o *Offsets) Size() int {
	return o.size
}

// Bands returns the number of bands in the table.
func (o *Offsets) Bands() int {
	return len(o.shifts)
}

// Shift returns the shift for the band containing row y, assigning it on
// first use.
func (o *Offsets) Shift(y int) int {
	band := y / o.size
	if !o.assigned[band] {
		o.shifts[band] = o.draw()
		o.assigned[band] = true
	}
	return o.shifts[band]
}

// Values returns a copy of the shifts. Bands not yet visited report 0.
func (o *Offsets) Values() []int {
	out := make([]int, len(o.shifts))
	copy(out, o.shifts)
	return out
}

// draw returns a non-zero shift, or 0 when size 1 leaves no other choice.
func (o *Offsets) draw() int {
	span := o.size/2 + o.size/2
	if span == 0 || o.rng == nil {
		return 0
	}
	for {
		if v := o.rng.IntN(span) - o.size/2; v != 0 {
			return v
		}
	}
}

// wrap maps x into [0, width).
func wrap(x, width int) int {
	x %= width
	if x < 0 {
		x += width
	}
	return x
}
