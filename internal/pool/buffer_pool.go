package pool

import (
	"strings"
	"sync"
)

// MaxRetainedCapacity caps the capacity of buffers returned to a pool, so a
// single huge document does not pin its buffer for the life of the process.
const MaxRetainedCapacity = 1 << 20

// BufferPool implements a pool of byte slices used as scanner buffers.
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a full-length buffer from the pool
func (bp *BufferPool) Get() *[]byte {
	buffer := bp.pool.Get().(*[]byte)
	*buffer = (*buffer)[:cap(*buffer)]
	return buffer
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buffer *[]byte) {
	if buffer == nil || cap(*buffer) > MaxRetainedCapacity {
		return
	}
	bp.pool.Put(buffer)
}

// StringBuilderPool implements a pool of builders used to assemble articles and rewritten text.
type StringBuilderPool struct {
	pool sync.Pool
}

// NewStringBuilderPool creates a new builder pool
func NewStringBuilderPool() *StringBuilderPool {
	return &StringBuilderPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(StringBuilder)
			},
		},
	}
}

// Get retrieves a StringBuilder from the pool or creates a new one if none are available
func (sbp *StringBuilderPool) Get() *StringBuilder {
	return sbp.pool.Get().(*StringBuilder)
}

// Put returns a StringBuilder to the pool for reuse
func (sbp *StringBuilderPool) Put(sb *StringBuilder) {
	if sb.builder.Cap() > MaxRetainedCapacity {
		return
	}
	sb.Reset()
	sbp.pool.Put(sb)
}

// StringBuilder wraps strings.Builder with helpers for rune slices.
type StringBuilder struct {
	builder strings.Builder
}

// WriteRune writes a rune to the builder
func (sb *StringBuilder) WriteRune(r rune) {
	sb.builder.WriteRune(r)
}

// WriteString writes a string to the builder
func (sb *StringBuilder) WriteString(s string) {
	sb.builder.WriteString(s)
}

// WriteRunes writes every rune of rs to the builder.
func (sb *StringBuilder) WriteRunes(rs []rune) {
	for _, r := range rs {
		sb.builder.WriteRune(r)
	}
}

// Grow grows the builder's capacity by at least n bytes.
func (sb *StringBuilder) Grow(n int) {
	sb.builder.Grow(n)
}

// Len returns the number of accumulated bytes.
func (sb *StringBuilder) Len() int {
	return sb.builder.Len()
}

// String returns the accumulated string
func (sb *StringBuilder) String() string {
	return sb.builder.String()
}

// Reset resets the builder for reuse
func (sb *StringBuilder) Reset() {
	sb.builder.Reset()
}

// RuneBufferPool implements a pool of rune slices used as working copies of a text.
type RuneBufferPool struct {
	pool sync.Pool
	size int
}

// NewRuneBufferPool creates a new pool of rune slices with the specified capacity
func NewRuneBufferPool(size int) *RuneBufferPool {
	return &RuneBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]rune, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves an empty rune buffer from the pool
func (rbp *RuneBufferPool) Get() *[]rune {
	return rbp.pool.Get().(*[]rune)
}

// Load retrieves a rune buffer from the pool holding the code points of text.
func (rbp *RuneBufferPool) Load(text string) *[]rune {
	buffer := rbp.Get()
	for _, r := range text {
		*buffer = append(*buffer, r)
	}
	return buffer
}

// Put returns a rune buffer to the pool
func (rbp *RuneBufferPool) Put(buffer *[]rune) {
	if buffer == nil || cap(*buffer) > MaxRetainedCapacity {
		return
	}
	*buffer = (*buffer)[:0]
	rbp.pool.Put(buffer)
}
