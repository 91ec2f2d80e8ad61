package vec128

import "math"

// Elementwise operations over Float32x4 values. All of them are pure and
// total: no errors, no stored state, results depend only on the inputs.

// Add returns a + b per lane.
func Add(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// Sub returns a - b per lane.
func Sub(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// Mul returns a * b per lane.
func Mul(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// FMA returns a*b + c per lane.
//
// When the target exposes fused multiply-add (HasFMA), the result is
// computed in a single rounding step. Otherwise it is multiply-then-add
// with two roundings; the low bits of the result can differ between the
// two strategies.
func FMA(a, b, c Float32x4) Float32x4 {
	return fmaImpl(a, b, c)
}

func fmaFused(a, b, c Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = float32(math.FMA(float64(a[i]), float64(b[i]), float64(c[i])))
	}
	return r
}

func fmaMulAdd(a, b, c Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = a[i]*b[i] + c[i]
	}
	return r
}

// Div returns a / b per lane.
//
// On targets with hardware vector divide this is exact division. On
// targets without it, the quotient is a*recip(b) where recip is an
// estimate refined by one Newton-Raphson step; the result carries a small
// approximation error (within 1e-2 relative, typically far less), it is
// not bit-exact division.
func Div(a, b Float32x4) Float32x4 {
	return divImpl(a, b)
}

func divNative(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = a[i] / b[i]
	}
	return r
}

func divRecip(a, b Float32x4) Float32x4 {
	return Mul(a, Reciprocal(b))
}

// Neg negates all lanes.
func Neg(v Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = -v[i]
	}
	return r
}

// Abs returns the absolute value per lane.
func Abs(v Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = math.Float32frombits(math.Float32bits(v[i]) &^ (1 << 31))
	}
	return r
}

// Min returns the element-wise minimum.
func Min(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		if a[i] < b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// Max returns the element-wise maximum.
func Max(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// Clamp limits every lane to [lo, hi], computed as min(max(v, lo), hi).
// Useful for ReLU6 and quantization ranges.
func Clamp(v Float32x4, lo, hi float32) Float32x4 {
	return Min(Max(v, Broadcast(lo)), Broadcast(hi))
}

// Greater compares a > b per lane, producing an all-ones or all-zeros
// lane mask for use with Select.
func Greater(a, b Float32x4) Mask32x4 {
	var m Mask32x4
	for i := range m {
		if a[i] > b[i] {
			m[i] = maskTrue
		}
	}
	return m
}

// Select returns a where the mask is set and b elsewhere. The blend is
// bitwise, so conditional logic stays branchless:
//
//	relu := vec128.Select(vec128.Greater(x, vec128.Zero()), x, vec128.Zero())
func Select(m Mask32x4, a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		bits := math.Float32bits(a[i])&m[i] | math.Float32bits(b[i])&^m[i]
		r[i] = math.Float32frombits(bits)
	}
	return r
}
