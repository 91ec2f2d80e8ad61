package mem

import "github.com/tvnhan/go-vec128/vec128"

// AlignedBuffer is a growable float32 container whose backing block is
// guaranteed 16-byte aligned. The buffer is the sole owner of its block;
// handing the buffer to another owner transfers the block with it, and
// nothing here reference-counts or aliases the owning handle.
//
// Size tracks how many leading elements are logically valid; it never
// exceeds the capacity. A buffer must not be accessed from more than one
// goroutine without external synchronization.
type AlignedBuffer struct {
	data []float32 // len(data) == capacity, aligned; nil when capacity is 0
	size int
}

// NewAlignedBuffer allocates a buffer with the given capacity. On
// allocation failure the returned buffer has Cap() == 0 and a nil data
// span; checking Cap() is the failure signal at this layer, there is no
// error return.
func NewAlignedBuffer(capacity int) *AlignedBuffer {
	b := &AlignedBuffer{}
	if capacity > 0 {
		b.data = AllocFloat32(capacity)
	}
	return b
}

// Size returns the number of logically valid elements.
func (b *AlignedBuffer) Size() int {
	return b.size
}

// Cap returns the allocated capacity in elements.
func (b *AlignedBuffer) Cap() int {
	return len(b.data)
}

// Data returns the full capacity span. The first Size() elements are the
// logically valid ones. The span aliases the buffer's storage; it is
// invalidated by Resize and Destroy.
func (b *AlignedBuffer) Data() []float32 {
	return b.data
}

// SetSize records how many leading elements are logically valid,
// clamped to [0, Cap()].
func (b *AlignedBuffer) SetSize(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(b.data) {
		n = len(b.data)
	}
	b.size = n
}

// Resize grows the buffer to newCapacity elements, preserving the first
// Size() elements of the old content. A request at or below the current
// capacity is accepted as a no-op: the contract is grow-only, shrinking
// never happens.
//
// On allocation failure Resize returns ErrOutOfMemory and leaves the
// buffer fully intact; there is no partial mutation on any error path.
func (b *AlignedBuffer) Resize(newCapacity int) error {
	if b == nil {
		return vec128.ErrNilBuffer
	}
	if newCapacity <= len(b.data) {
		return nil
	}

	fresh := AllocFloat32(newCapacity)
	if fresh == nil {
		return vec128.ErrOutOfMemory
	}
	copy(fresh[:b.size], b.data[:b.size])
	b.data = fresh
	return nil
}

// Clear zeroes the storage of all capacity elements and resets the size
// to zero. No-op on a nil or destroyed buffer.
func (b *AlignedBuffer) Clear() {
	if b == nil || b.data == nil {
		return
	}
	clear(b.data)
	b.size = 0
}

// Destroy drops the backing block and zeroes size and capacity. Safe to
// call repeatedly; a destroyed buffer behaves like a zero-capacity one.
func (b *AlignedBuffer) Destroy() {
	if b == nil {
		return
	}
	b.data = nil
	b.size = 0
}
