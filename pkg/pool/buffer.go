package pool

import (
	"sync"
)

// BufferPool manages fixed-capacity staging buffers. Both compression
// pipelines stage codec output in buffers of one fixed size, so recycling
// them avoids an allocation per session.
type BufferPool struct {
	size int       // Capacity of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// Creates a new buffer pool with a specified buffer size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				return make([]byte, size)
			},
		},
	}
}

// Size returns the capacity of the buffers managed by this pool.
func (bp *BufferPool) Size() int {
	return bp.size
}

// Retrieves a buffer from the pool. The returned slice has length and
// capacity equal to the pool's buffer size.
func (bp *BufferPool) Get() []byte {
	return bp.pool.Get().([]byte)[:bp.size]
}

// Returns a buffer to the pool.
func (bp *BufferPool) Put(buf []byte) {
	// Don't pool foreign buffers of the wrong capacity.
	if cap(buf) < bp.size {
		return
	}
	bp.pool.Put(buf[:bp.size])
}
