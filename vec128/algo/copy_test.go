package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvnhan/go-vec128/vec128/mem"
)

// boundaryLengths exercises every tier combination: empty, scalar-only
// tails, one 4-lane chunk, the 16-element unrolled tier, and misaligned
// totals around each boundary.
var boundaryLengths = []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 100}

func fillSequence(s []float32) {
	for i := range s {
		s[i] = float32(i) + 0.5
	}
}

func TestCopyAligned(t *testing.T) {
	for _, n := range boundaryLengths {
		src := mem.AllocFloat32(n + 4)
		dst := mem.AllocFloat32(n + 4)
		fillSequence(src)
		Fill(dst, -1, n+4)

		Copy(dst, src, n)

		for i := 0; i < n; i++ {
			assert.Equal(t, src[i], dst[i], "n=%d i=%d", n, i)
		}
		for i := n; i < n+4; i++ {
			assert.Equal(t, float32(-1), dst[i], "n=%d: element %d beyond count touched", n, i)
		}
	}
}

func TestCopyMisaligned(t *testing.T) {
	for _, n := range boundaryLengths {
		backing := mem.AllocFloat32(n + 8)
		src := backing[1 : n+1] // deliberately off the 16-byte boundary
		if n > 0 {
			require.False(t, mem.IsAligned(src))
		}

		dst := mem.AllocFloat32(n + 1)[1:]
		fillSequence(src)

		Copy(dst, src, n)
		for i := 0; i < n; i++ {
			assert.Equal(t, src[i], dst[i], "n=%d i=%d", n, i)
		}
	}
}

func TestCopyMixedAlignment(t *testing.T) {
	// One aligned span, one not: the scalar fallback must still produce
	// identical output.
	src := mem.AllocFloat32(40)
	fillSequence(src)
	dst := mem.AllocFloat32(41)[1:]

	Copy(dst, src, 40)
	assert.Equal(t, src[:40], dst[:40])
}

func TestCopyZeroAndNegativeCount(t *testing.T) {
	dst := []float32{9, 9}
	Copy(dst, []float32{1, 2}, 0)
	Copy(dst, []float32{1, 2}, -1)
	assert.Equal(t, []float32{9, 9}, dst)
}

func TestFillAligned(t *testing.T) {
	for _, n := range boundaryLengths {
		dst := mem.AllocFloat32(n + 4)
		Fill(dst, -1, n+4)

		Fill(dst, 2.25, n)

		for i := 0; i < n; i++ {
			assert.Equal(t, float32(2.25), dst[i], "n=%d i=%d", n, i)
		}
		for i := n; i < n+4; i++ {
			assert.Equal(t, float32(-1), dst[i], "n=%d: element %d beyond count touched", n, i)
		}
	}
}

func TestFillMisaligned(t *testing.T) {
	for _, n := range boundaryLengths {
		dst := mem.AllocFloat32(n + 1)[1:]

		Fill(dst, 7.5, n)
		for i := 0; i < n; i++ {
			assert.Equal(t, float32(7.5), dst[i], "n=%d i=%d", n, i)
		}
	}
}

func BenchmarkCopyAligned(b *testing.B) {
	src := mem.AllocFloat32(4096)
	dst := mem.AllocFloat32(4096)
	fillSequence(src)
	b.SetBytes(4096 * 4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Copy(dst, src, 4096)
	}
}

func BenchmarkFillAligned(b *testing.B) {
	dst := mem.AllocFloat32(4096)
	b.SetBytes(4096 * 4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Fill(dst, 1.5, 4096)
	}
}
