package vec128

// Horizontal reductions collapse the four lanes of a vector into one
// scalar. Two interchangeable strategies exist:
//
//   - direct: a single left-to-right fold, the software analog of the
//     ARMv8 vaddvq/vmaxvq/vminvq reduction instructions;
//   - pairwise: split into low and high two-lane halves, combine the
//     halves, then combine the surviving pair, the way 32-bit targets
//     chain vpadd/vpmax/vpmin.
//
// bind picks one at startup. The two associate floating-point operations
// differently, so their sums agree only within tolerance, not bit-exactly.

// ReduceSum returns the sum of the four lanes.
func ReduceSum(v Float32x4) float32 {
	return reduceSumImpl(v)
}

// ReduceMax returns the largest lane.
func ReduceMax(v Float32x4) float32 {
	return reduceMaxImpl(v)
}

// ReduceMin returns the smallest lane.
func ReduceMin(v Float32x4) float32 {
	return reduceMinImpl(v)
}

// Dot4 returns the dot product of two vectors:
// a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3].
func Dot4(a, b Float32x4) float32 {
	return ReduceSum(Mul(a, b))
}

func reduceSumDirect(v Float32x4) float32 {
	return v[0] + v[1] + v[2] + v[3]
}

func reduceSumPairwise(v Float32x4) float32 {
	s0 := v[0] + v[2]
	s1 := v[1] + v[3]
	return s0 + s1
}

func reduceMaxDirect(v Float32x4) float32 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func reduceMaxPairwise(v Float32x4) float32 {
	m0 := max2(v[0], v[2])
	m1 := max2(v[1], v[3])
	return max2(m0, m1)
}

func reduceMinDirect(v Float32x4) float32 {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func reduceMinPairwise(v Float32x4) float32 {
	m0 := min2(v[0], v[2])
	m1 := min2(v[1], v[3])
	return min2(m0, m1)
}

func max2(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min2(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
