// Package pool provides a pooled, growable byte buffer used by the encoder
// to accumulate a single top-level item's wire bytes without repeated
// reallocation.
package pool

import "sync"

// Default sizing for encoder scratch buffers. Most CBOR items (a handful of
// map/array entries, a tagged scalar) fit comfortably under 4KiB; the pool
// grows buffers that outgrow it rather than capping them.
const (
	DefaultSize   = 1024 * 4   // 4KiB
	MaxThreshold  = 1024 * 256 // 256KiB, buffers larger than this are discarded rather than pooled
	growThreshold = 4 * DefaultSize
)

// ByteBuffer is a growable byte slice wrapper with the handful of operations
// the encoder needs: append, grow-to-fit, and reset-without-freeing.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written so far.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but keeps its backing array for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// ExtendOrGrow extends the buffer length by n bytes, growing the backing
// array first if there isn't enough spare capacity. The newly extended
// region is left with whatever bytes were previously there; callers write
// into it directly via Bytes()[oldLen:].
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	curLen := len(bb.B)
	if cap(bb.B)-curLen >= n {
		bb.B = bb.B[:curLen+n]
		return
	}

	growBy := DefaultSize
	if cap(bb.B) > growThreshold {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, curLen, curLen+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf[:curLen+n]
}

// ByteBufferPool pools ByteBuffers of a given default size via sync.Pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and
// are discarded (not pooled) once they grow past maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool, discarding it if it grew too large.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(DefaultSize, MaxThreshold)

// Get retrieves a ByteBuffer from the package-default pool.
func Get() *ByteBuffer { return defaultPool.Get() }

// Put returns a ByteBuffer to the package-default pool.
func Put(bb *ByteBuffer) { defaultPool.Put(bb) }
