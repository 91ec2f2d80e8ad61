// Package vec128 provides 128-bit SIMD-style numeric primitives with
// runtime capability dispatch.
//
// The package models one hardware vector register as a fixed four-lane
// float32 value, Float32x4, and builds elementwise arithmetic, horizontal
// reductions, and approximate transcendentals on top of it. Operations
// automatically pick the best strategy the target supports (fused
// multiply-add, native horizontal reductions) and fall back to portable
// code elsewhere.
//
// Basic usage:
//
//	a := vec128.Load(data1)
//	b := vec128.Load(data2)
//	sum := vec128.ReduceSum(vec128.Mul(a, b))
//
// All operations are pure computations over caller-supplied memory. Nothing
// in this package locks: a span or buffer must not be mutated from more than
// one goroutine without external synchronization, while distinct inputs may
// be processed concurrently.
package vec128

import "fmt"

const (
	// Alignment is the byte boundary required for the fast vector
	// load/store paths.
	Alignment = 16

	// NumLanes is the number of float32 elements in one vector value.
	NumLanes = 4
)

// Float32x4 is one vector register's worth of data: four float32 lanes.
// It is a transient, copy-by-value computation value with no independent
// lifecycle; it is never heap-allocated by this package.
//
// Float32x4 values are created with Load, Broadcast, Zero, or Ones.
type Float32x4 [NumLanes]float32

// Load creates a vector from the first four elements of src.
// It panics if len(src) < 4.
func Load(src []float32) Float32x4 {
	return Float32x4{src[0], src[1], src[2], src[3]}
}

// LoadBroadcast loads a single scalar from src and replicates it into
// all four lanes. It panics if src is empty.
func LoadBroadcast(src []float32) Float32x4 {
	return Broadcast(src[0])
}

// Broadcast replicates a scalar into all four lanes.
func Broadcast(value float32) Float32x4 {
	return Float32x4{value, value, value, value}
}

// Zero returns a vector with all lanes set to zero.
func Zero() Float32x4 {
	return Float32x4{}
}

// Ones returns a vector with all lanes set to one.
func Ones() Float32x4 {
	return Float32x4{1, 1, 1, 1}
}

// Store writes the four lanes to the first four elements of dst.
// It panics if len(dst) < 4.
func (v Float32x4) Store(dst []float32) {
	dst[0] = v[0]
	dst[1] = v[1]
	dst[2] = v[2]
	dst[3] = v[3]
}

// Lane returns the value of lane i.
func (v Float32x4) Lane(i int) float32 {
	return v[i]
}

// String formats the lanes for debugging.
func (v Float32x4) String() string {
	return fmt.Sprintf("[%g %g %g %g]", v[0], v[1], v[2], v[3])
}

// maskTrue is the all-ones lane value produced by comparisons.
const maskTrue uint32 = 0xFFFFFFFF

// Mask32x4 is the result of a per-lane comparison. Each lane is either
// all ones or all zeros, so it can drive the bitwise blend in Select.
//
// Mask32x4 values should not be built by hand; use comparisons such as
// Greater.
type Mask32x4 [NumLanes]uint32

// AllTrue reports whether every lane of the mask is set.
func (m Mask32x4) AllTrue() bool {
	for _, bits := range m {
		if bits != maskTrue {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane of the mask is set.
func (m Mask32x4) AnyTrue() bool {
	for _, bits := range m {
		if bits == maskTrue {
			return true
		}
	}
	return false
}
