// Package algo provides bulk operations over float32 spans.
//
// Each operation checks span alignment at runtime and picks one of two
// internal strategies: an unrolled vector path when the spans sit on
// 16-byte boundaries, or scalar code otherwise. The two paths produce
// identical results; only the speed differs.
package algo

import (
	"github.com/tvnhan/go-vec128/vec128"
	"github.com/tvnhan/go-vec128/vec128/mem"
)

// Copy copies count elements from src to dst. The spans must not overlap
// and must each hold at least count elements.
//
// When both spans are aligned, elements move in chunks of 16 (four
// load/store pairs, interleaved so the loads issue back to back), then
// chunks of 4, then one at a time. Otherwise the builtin copy handles
// the whole span.
func Copy(dst, src []float32, count int) {
	if count <= 0 {
		return
	}
	dst = dst[:count]
	src = src[:count]

	if !mem.IsAligned(dst) || !mem.IsAligned(src) {
		copy(dst, src)
		return
	}

	i := 0
	for ; i+16 <= count; i += 16 {
		v0 := vec128.Load(src[i:])
		v1 := vec128.Load(src[i+4:])
		v2 := vec128.Load(src[i+8:])
		v3 := vec128.Load(src[i+12:])

		v0.Store(dst[i:])
		v1.Store(dst[i+4:])
		v2.Store(dst[i+8:])
		v3.Store(dst[i+12:])
	}
	for ; i+4 <= count; i += 4 {
		vec128.Load(src[i:]).Store(dst[i:])
	}
	for ; i < count; i++ {
		dst[i] = src[i]
	}
}

// Fill sets the first count elements of dst to value. Exactly count
// elements are written; nothing beyond them is touched.
//
// Aligned destinations take the same 16/4/1 chunking as Copy with the
// value broadcast once; unaligned destinations take a scalar loop.
func Fill(dst []float32, value float32, count int) {
	if count <= 0 {
		return
	}
	dst = dst[:count]

	if !mem.IsAligned(dst) {
		for i := range dst {
			dst[i] = value
		}
		return
	}

	v := vec128.Broadcast(value)

	i := 0
	for ; i+16 <= count; i += 16 {
		v.Store(dst[i:])
		v.Store(dst[i+4:])
		v.Store(dst[i+8:])
		v.Store(dst[i+12:])
	}
	for ; i+4 <= count; i += 4 {
		v.Store(dst[i:])
	}
	for ; i < count; i++ {
		dst[i] = value
	}
}
