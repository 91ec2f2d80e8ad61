// Package stats implements array-level statistics over float32 spans:
// dot product, mean, variance, and tolerance comparison.
//
// Every operation chunks its input into four-lane vectors, aggregates
// with the vec128 reduction primitives, and folds the 0-3 remaining tail
// elements with scalar arithmetic, so arbitrary lengths are handled.
package stats

import (
	"github.com/chewxy/math32"

	"github.com/tvnhan/go-vec128/vec128"
)

// DotProduct returns the dot product of the first count elements of a
// and b. Both spans must hold at least count elements.
func DotProduct(a, b []float32, count int) float32 {
	var sum float32

	i := 0
	for ; i+vec128.NumLanes <= count; i += vec128.NumLanes {
		sum += vec128.Dot4(vec128.Load(a[i:]), vec128.Load(b[i:]))
	}
	for ; i < count; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Mean returns the arithmetic mean of the first count elements.
//
// count must be positive; Mean(data, 0) divides by zero and returns NaN
// or an infinity. This is a precondition, not a signaled error.
func Mean(data []float32, count int) float32 {
	var sum float32

	i := 0
	for ; i+vec128.NumLanes <= count; i += vec128.NumLanes {
		sum += vec128.ReduceSum(vec128.Load(data[i:]))
	}
	for ; i < count; i++ {
		sum += data[i]
	}
	return sum / float32(count)
}

// Variance returns the population variance of the first count elements
// around the supplied mean. The mean is a parameter rather than being
// recomputed so repeated variance calls can share one; keeping it
// consistent with the data is the caller's responsibility. count must be
// positive, as for Mean.
func Variance(data []float32, count int, mean float32) float32 {
	m := vec128.Broadcast(mean)
	var sum float32

	i := 0
	for ; i+vec128.NumLanes <= count; i += vec128.NumLanes {
		d := vec128.Sub(vec128.Load(data[i:]), m)
		sum += vec128.Dot4(d, d)
	}
	for ; i < count; i++ {
		d := data[i] - mean
		sum += d * d
	}
	return sum / float32(count)
}

// EqualWithTolerance reports whether every corresponding pair among the
// first count elements differs by at most tol in absolute value. It
// stops at the first violation.
func EqualWithTolerance(a, b []float32, count int, tol float32) bool {
	for i := 0; i < count; i++ {
		if math32.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
