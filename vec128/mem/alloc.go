// Package mem provides alignment-guaranteed allocation and the
// AlignedBuffer container used by the vector kernels.
//
// Alignment of a raw span is a runtime-checked property, never a
// type-level guarantee; every bulk operation re-verifies it with
// IsAligned before taking a vector fast path.
package mem

import (
	"unsafe"

	"github.com/tvnhan/go-vec128/vec128"
)

// allocBytes is the raw allocator behind AllocAligned. A variable so
// tests can simulate allocation failure.
var allocBytes = func(n int) []byte {
	return make([]byte, n)
}

// AllocAligned allocates size bytes whose first byte sits on an
// alignment-byte boundary. Alignment must be a nonzero power of two,
// otherwise ErrInvalidAlignment is returned. A size of zero or less
// yields a nil slice and no error.
//
// The allocation over-allocates by alignment bytes and reslices at the
// aligned offset; the garbage collector keeps the backing array alive
// through the returned slice, so release is simply dropping the
// reference. There is no explicit free and no double-free hazard.
func AllocAligned(size, alignment int) ([]byte, error) {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, vec128.ErrInvalidAlignment
	}
	if size <= 0 {
		return nil, nil
	}

	buf := allocBytes(size + alignment)
	if buf == nil {
		return nil, vec128.ErrOutOfMemory
	}

	addr := uintptr(unsafe.Pointer(&buf[0]))
	align := uintptr(alignment)
	offset := (align - addr&(align-1)) & (align - 1)
	return buf[offset : offset+uintptr(size)], nil
}

// AllocFloat32 allocates count float32 elements aligned to the vector
// width (16 bytes). It returns nil when count <= 0 or the allocation
// fails; callers that need to distinguish check for nil.
func AllocFloat32(count int) []float32 {
	if count <= 0 {
		return nil
	}
	raw, err := AllocAligned(count*4, vec128.Alignment)
	if err != nil || raw == nil {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&raw[0])), count)
}

// IsAligned reports whether the span starts on a vector-width boundary.
// Empty spans are considered aligned.
func IsAligned(s []float32) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))&(vec128.Alignment-1) == 0
}

// CheckAligned returns ErrMisaligned when the span does not satisfy the
// vector alignment. For callers that require the fast path rather than
// accepting a scalar fallback.
func CheckAligned(s []float32) error {
	if !IsAligned(s) {
		return vec128.ErrMisaligned
	}
	return nil
}
