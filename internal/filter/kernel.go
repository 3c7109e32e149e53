package filter

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/colorcode/internal/color"
	"github.com/gogpu/colorcode/internal/image"
)

// gaussian5 is the integer 5x5 Gaussian used by the edges demo.
var gaussian5 = []int{
	1, 4, 7, 4, 1,
	4, 16, 26, 16, 4,
	7, 26, 41, 26, 7,
	4, 16, 26, 16, 4,
	1, 4, 7, 4, 1,
}

// NormalizeKernel divides every weight by the sum of weights. A kernel
// whose sum is not positive is returned as plain float64 values.
func NormalizeKernel(weights []int) []float64 {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		sum = 1
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = float64(w) / float64(sum)
	}
	return out
}

// GaussianKernel5 returns the normalized 5x5 integer Gaussian.
func GaussianKernel5() []float64 {
	return NormalizeKernel(gaussian5)
}

// GaussianKernel generates a square Gaussian kernel for the given radius,
// flattened in row-major order and normalized to sum 1.
//
// The side is 2 * ceil(radius * 3) + 1, which covers 3 standard
// deviations. For radius <= 0 it returns the 1x1 identity kernel.
func GaussianKernel(radius float64) []float64 {
	if radius <= 0 {
		return []float64{1.0}
	}

	half := int(math.Ceil(radius * 3))
	side := half*2 + 1

	// Separable: the 2D weight is the product of two 1D weights.
	row := make([]float64, side)
	twoSigmaSq := 2 * radius * radius
	for i := range row {
		x := float64(i - half)
		row[i] = math.Exp(-(x * x) / twoSigmaSq)
	}

	kernel := make([]float64, side*side)
	sum := 0.0
	for y := range side {
		for x := range side {
			v := row[y] * row[x]
			kernel[y*side+x] = v
			sum += v
		}
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// BoxKernel generates a dim x dim kernel of equal weights.
// A non-positive dim yields the identity kernel.
func BoxKernel(dim int) []float64 {
	if dim <= 0 {
		return []float64{1.0}
	}
	kernel := make([]float64, dim*dim)
	val := 1.0 / float64(len(kernel))
	for i := range kernel {
		kernel[i] = val
	}
	return kernel
}

// kernelCache caches Gaussian kernels by quantized radius.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float64
	maxLen int
}

var defaultKernelCache = newKernelCache(16)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float64),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(radius float64) []float64 {
	key := int(radius * 100)

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(radius)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		clear(c.cache)
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a shared Gaussian kernel for the radius,
// quantized to 0.01. The result must not be modified.
func CachedGaussianKernel(radius float64) []float64 {
	return defaultKernelCache.get(radius)
}

// kernelDim returns the side of a square kernel with n weights, or 0 if n
// is not the square of an odd number.
func kernelDim(n int) int {
	dim := int(math.Sqrt(float64(n)))
	for dim*dim < n {
		dim++
	}
	if dim*dim != n || dim%2 == 0 {
		return 0
	}
	return dim
}

// Grayscale replaces every pixel with its BT.709 luminance, fully opaque.
func Grayscale(buf *image.Buffer) {
	buf.Map(func(p *color.Pixel) {
		p.Set(color.Gray(p.Luminance(), 255))
	})
}

// Saturation replaces every pixel with its HSL saturation as an opaque
// gray, rounded to the nearest level.
func Saturation(buf *image.Buffer) {
	buf.Map(func(p *color.Pixel) {
		p.Set(color.Gray(int(p.Saturation()*255+0.5), 255))
	})
}

// Convolve applies a square kernel of odd side to buf. Neighbors outside
// the buffer contribute nothing, so edges darken instead of smearing.
// Results are computed from the unmodified input, clamped and fully opaque.
func Convolve(buf *image.Buffer, kernel []float64) error {
	dim := kernelDim(len(kernel))
	if dim == 0 {
		return fmt.Errorf("filter: convolve with %d weights: %w", len(kernel), image.ErrInvalidKernel)
	}

	res := make([]color.Pixel, buf.Width()*buf.Height())
	err := buf.KernelMap(dim, func(hood []*color.Pixel, index int) {
		acc := color.Gray(0, 255)
		for i, p := range hood {
			if p != nil {
				acc = acc.Add(p.ScaleFloat(kernel[i]))
			}
		}
		acc.Clamp()
		res[index] = acc
	})
	if err != nil {
		return fmt.Errorf("filter: convolve: %w", err)
	}

	buf.IndexedMap(func(p *color.Pixel, index int) {
		p.Set(res[index])
	})
	return nil
}
