package image

import "github.com/gogpu/colorcode/internal/color"

// MapFunc mutates a pixel in place.
type MapFunc func(p *color.Pixel)

// CoarseFunc receives a pixel together with the representative pixel of
// the block it belongs to, and the pixel's linear index.
type CoarseFunc func(dst *color.Pixel, src color.Pixel, index int)

// IndexedFunc receives a pixel and its linear index (y*width + x).
type IndexedFunc func(p *color.Pixel, index int)

// KernelFunc receives the dim x dim neighborhood centered on the pixel at
// index, in row-major order. Entries outside the buffer are nil.
// The slice is reused between calls.
type KernelFunc func(neighborhood []*color.Pixel, index int)

// Map applies f to every pixel.
func (b *Buffer) Map(f MapFunc) {
	for i := range b.pix {
		f(&b.pix[i])
	}
}

// IndexedMap applies f to every pixel with its linear index.
func (b *Buffer) IndexedMap(f IndexedFunc) {
	for i := range b.pix {
		f(&b.pix[i], i)
	}
}

// IndexedMapOffset applies f to every pixel after shifting each band of
// rows horizontally by its offset, wrapping at the buffer edge. The index
// passed to f is the unshifted position, so position-dependent filters
// line up with blocks produced by an offset pixelation using the same table.
func (b *Buffer) IndexedMapOffset(offsets *Offsets, f IndexedFunc) {
	for y := 0; y < b.height; y++ {
		shift := offsets.Shift(y)
		row := b.pix[y*b.width : (y+1)*b.width]
		for x := 0; x < b.width; x++ {
			f(&row[wrap(x+shift, b.width)], y*b.width+x)
		}
	}
}

// CoarseMap applies f to every pixel with the block's center pixel as the
// representative (point sampling). Centers past the buffer edge are clamped.
// Representatives are read before any pixel is visited.
func (b *Buffer) CoarseMap(size int, f CoarseFunc) error {
	if size <= 0 {
		return ErrInvalidSize
	}
	cols := (b.width + size - 1) / size
	rows := (b.height + size - 1) / size
	reps := make([]color.Pixel, rows*cols)
	for by := 0; by < rows; by++ {
		cy := Clamp(by*size+size/2, 0, b.height-1)
		for bx := 0; bx < cols; bx++ {
			cx := Clamp(bx*size+size/2, 0, b.width-1)
			reps[by*cols+bx] = b.pix[cy*b.width+cx]
		}
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := y*b.width + x
			f(&b.pix[i], reps[(y/size)*cols+x/size], i)
		}
	}
	return nil
}

// CoarseMapAverage applies f to every pixel with the mean of its block as
// the representative. Edge blocks are clipped to the buffer and averaged
// over the pixels they actually contain. The mean is opaque.
func (b *Buffer) CoarseMapAverage(size int, f CoarseFunc) error {
	if size <= 0 {
		return ErrInvalidSize
	}
	cols := (b.width + size - 1) / size
	rows := (b.height + size - 1) / size
	reps := make([]color.Pixel, rows*cols)
	for by := 0; by < rows; by++ {
		for bx := 0; bx < cols; bx++ {
			sum := color.Gray(0, 255)
			weight := 0
			for y := by * size; y < min(by*size+size, b.height); y++ {
				for x := bx * size; x < min(bx*size+size, b.width); x++ {
					sum = sum.Add(b.pix[y*b.width+x])
					weight++
				}
			}
			reps[by*cols+bx] = mean(sum, weight)
		}
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := y*b.width + x
			f(&b.pix[i], reps[(y/size)*cols+x/size], i)
		}
	}
	return nil
}

// OffsetCoarseMap is CoarseMap with every band of rows shifted by its
// offset. Pixel access and block centers wrap around horizontally.
func (b *Buffer) OffsetCoarseMap(size int, offsets *Offsets, f CoarseFunc) error {
	if size <= 0 || offsets.Size() != size {
		return ErrInvalidSize
	}
	cols := (b.width + size - 1) / size
	rows := (b.height + size - 1) / size
	reps := make([]color.Pixel, rows*cols)
	for by := 0; by < rows; by++ {
		shift := offsets.Shift(by * size)
		cy := Clamp(by*size+size/2, 0, b.height-1)
		for bx := 0; bx < cols; bx++ {
			cx := wrap(bx*size+size/2+shift, b.width)
			reps[by*cols+bx] = b.pix[cy*b.width+cx]
		}
	}

	b.applyShifted(size, cols, offsets, reps, f)
	return nil
}

// OffsetCoarseMapAverage is CoarseMapAverage with every band of rows
// shifted by its offset. Each block averages exactly the shifted pixels
// it is later assigned to.
func (b *Buffer) OffsetCoarseMapAverage(size int, offsets *Offsets, f CoarseFunc) error {
	if size <= 0 || offsets.Size() != size {
		return ErrInvalidSize
	}
	cols := (b.width + size - 1) / size
	rows := (b.height + size - 1) / size
	reps := make([]color.Pixel, rows*cols)
	for by := 0; by < rows; by++ {
		shift := offsets.Shift(by * size)
		for bx := 0; bx < cols; bx++ {
			sum := color.Gray(0, 255)
			weight := 0
			for y := by * size; y < min(by*size+size, b.height); y++ {
				for x := bx * size; x < min(bx*size+size, b.width); x++ {
					sum = sum.Add(b.pix[y*b.width+wrap(x+shift, b.width)])
					weight++
				}
			}
			reps[by*cols+bx] = mean(sum, weight)
		}
	}

	b.applyShifted(size, cols, offsets, reps, f)
	return nil
}

func (b *Buffer) applyShifted(size, cols int, offsets *Offsets, reps []color.Pixel, f CoarseFunc) {
	for y := 0; y < b.height; y++ {
		shift := offsets.Shift(y)
		row := b.pix[y*b.width : (y+1)*b.width]
		for x := 0; x < b.width; x++ {
			f(&row[wrap(x+shift, b.width)], reps[(y/size)*cols+x/size], y*b.width+x)
		}
	}
}

// KernelMap calls f once per pixel with its dim x dim neighborhood.
// Neighbors outside the buffer are reported as nil rather than clamped
// or wrapped.
func (b *Buffer) KernelMap(dim int, f KernelFunc) error {
	if dim <= 0 || dim%2 == 0 {
		return ErrInvalidKernel
	}
	half := dim / 2
	hood := make([]*color.Pixel, dim*dim)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			for ky := 0; ky < dim; ky++ {
				ny := y + ky - half
				for kx := 0; kx < dim; kx++ {
					nx := x + kx - half
					if nx < 0 || nx >= b.width || ny < 0 || ny >= b.height {
						hood[ky*dim+kx] = nil
						continue
					}
					hood[ky*dim+kx] = &b.pix[ny*b.width+nx]
				}
			}
			f(hood, y*b.width+x)
		}
	}
	return nil
}

// mean divides the color channels of sum by weight. Alpha is kept.
func mean(sum color.Pixel, weight int) color.Pixel {
	if weight == 0 {
		return sum
	}
	return color.Pixel{R: sum.R / weight, G: sum.G / weight, B: sum.B / weight, A: sum.A}
}
