package pool

import "sync"

// FrameBufferDefaultSize is the default capacity of a Buffer handed out by
// the default frame pool: large enough for the common UDP-safe OSC packet
// size without ever growing.
const (
	FrameBufferDefaultSize  = 1472
	FrameBufferMaxThreshold = 1024 * 64
)

// Buffer is a reusable byte slice returned to a Pool when no longer needed.
type Buffer struct {
	B []byte
}

// NewBuffer creates a Buffer with the given default capacity.
func NewBuffer(defaultSize int) *Buffer {
	return &Buffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *Buffer) Bytes() []byte { return bb.B }

// Reset empties the buffer, retaining its capacity for reuse.
func (bb *Buffer) Reset() { bb.B = bb.B[:0] }

// Pool is a sync.Pool of Buffers, discarding any buffer that has grown
// past maxThreshold rather than retaining it indefinitely.
type Pool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewPool creates a Pool whose buffers default to defaultSize capacity.
// maxThreshold of 0 means no limit.
func NewPool(defaultSize, maxThreshold int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return NewBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a Buffer from the pool, empty and ready to use.
func (p *Pool) Get() *Buffer {
	bb, _ := p.pool.Get().(*Buffer)
	return bb
}

// Put returns a Buffer to the pool for reuse. Buffers grown past
// maxThreshold are discarded instead, so one oversized frame doesn't keep
// every later frame's allocation large.
func (p *Pool) Put(bb *Buffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var defaultFramePool = NewPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)

// GetFrameBuffer retrieves a Buffer from the default frame-sized pool.
func GetFrameBuffer() *Buffer { return defaultFramePool.Get() }

// PutFrameBuffer returns a Buffer to the default frame-sized pool.
func PutFrameBuffer(bb *Buffer) { defaultFramePool.Put(bb) }
