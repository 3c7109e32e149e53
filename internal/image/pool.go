package image

import "sync"

// Pool is a thread-safe pool for reusing Buffer instances.
//
// Pool groups buffers by their dimensions. The pipeline returns a level's
// intermediate buffers here once the level is composited, so the next
// level reuses them instead of allocating a fresh set.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identically sized buffers.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a new buffer pool retaining at most maxPerBucket buffers
// of each size. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a transparent buffer of the given size, reusing a pooled
// one when available. It returns nil for invalid dimensions.
func (p *Pool) Get(width, height int, hasAlpha bool) *Buffer {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.hasAlpha = hasAlpha
		return buf
	}
	p.mu.Unlock()

	buf, err := New(width, height, hasAlpha)
	if err != nil {
		return nil
	}
	return buf
}

// Clone returns a deep copy of src backed by a pooled buffer.
func (p *Pool) Clone(src *Buffer) *Buffer {
	buf := p.Get(src.width, src.height, src.hasAlpha)
	buf.CopyFrom(src)
	return buf
}

// Put clears buf and returns it to the pool. Nil buffers and buffers
// beyond the bucket capacity are dropped.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil {
		return
	}

	buf.Clear()

	key := poolKey{width: buf.width, height: buf.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers of the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}
