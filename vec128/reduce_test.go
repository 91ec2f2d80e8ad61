package vec128

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceSum(t *testing.T) {
	assert.Equal(t, float32(10), ReduceSum(Float32x4{1, 2, 3, 4}))
	assert.Equal(t, float32(0), ReduceSum(Zero()))
}

func TestReduceMax(t *testing.T) {
	assert.Equal(t, float32(5), ReduceMax(Float32x4{1, 5, 3, 2}))
	assert.Equal(t, float32(-1), ReduceMax(Float32x4{-4, -1, -3, -2}))
}

func TestReduceMin(t *testing.T) {
	assert.Equal(t, float32(1), ReduceMin(Float32x4{1, 5, 3, 2}))
	assert.Equal(t, float32(-4), ReduceMin(Float32x4{-4, -1, -3, -2}))
}

func TestDot4(t *testing.T) {
	got := Dot4(Float32x4{1, 2, 3, 4}, Float32x4{5, 6, 7, 8})
	assert.Equal(t, float32(70), got)
}

// The direct fold and the pairwise fold associate additions differently,
// so sums agree within tolerance rather than bit-exactly. Min and max are
// exact under reassociation.
func TestReduceStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 100; iter++ {
		var v Float32x4
		for i := range v {
			v[i] = rng.Float32()*200 - 100
		}

		assert.InDelta(t, float64(reduceSumDirect(v)), float64(reduceSumPairwise(v)), 1e-3)
		assert.Equal(t, reduceMaxDirect(v), reduceMaxPairwise(v))
		assert.Equal(t, reduceMinDirect(v), reduceMinPairwise(v))
	}
}

func BenchmarkDot4(b *testing.B) {
	x := Float32x4{1, 2, 3, 4}
	y := Float32x4{5, 6, 7, 8}
	var sink float32
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink += Dot4(x, y)
	}
	_ = sink
}
