package outboard

// BufferPool recycles fixed-size byte buffers across transport frames to
// keep steady-state framing allocation-free. It is built on a buffered
// channel, so Get and Put are lock-free and safe for concurrent use.
type BufferPool struct {
	pool    chan []byte
	bufSize int
}

// NewBufferPool creates a pool pre-populated with count buffers of bufSize
// bytes each.
func NewBufferPool(bufSize, count int) *BufferPool {
	pool := make(chan []byte, count)
	for i := 0; i < count; i++ {
		pool <- make([]byte, bufSize)
	}
	return &BufferPool{pool: pool, bufSize: bufSize}
}

// Get returns a buffer of length bufSize, allocating a fresh one when the
// pool is empty.
func (bp *BufferPool) Get() []byte {
	select {
	case buf := <-bp.pool:
		return buf
	default:
		return make([]byte, bp.bufSize)
	}
}

// Put returns a buffer to the pool. Buffers with the wrong capacity are
// dropped, and when the pool is already full the buffer is left to the
// garbage collector.
func (bp *BufferPool) Put(buf []byte) {
	if cap(buf) != bp.bufSize {
		return
	}
	select {
	case bp.pool <- buf[:bp.bufSize]:
	default:
	}
}
