package vec128

import "math"

// Approximate transcendentals built from the elementwise primitives.
// These trade accuracy for speed and a branch-free body; the contract of
// each function states its error bound.

// Polynomial coefficients and range constants for ApproxExp.
var (
	expC2    float32 = 0.5        // 1/2!
	expC3    float32 = 0.16666667 // 1/3!
	expC4    float32 = 0.04166667 // 1/4!
	expClamp float32 = 88.0
)

// Magic constants for the reciprocal and reciprocal-square-root initial
// estimates, the software analogs of vrecpeq and vrsqrteq.
const (
	recipMagic uint32 = 0x7EF311C3
	rsqrtMagic uint32 = 0x5F3759DF
)

// ApproxExp computes a fast approximate e^x per lane using the degree-4
// Maclaurin polynomial 1 + x + x²/2 + x³/6 + x⁴/24. The input is clamped
// to [-88, 88] first, so the result is finite for every input.
//
// Accuracy contract: this is a bounded-error fast exponential, not a
// drop-in for math.Exp. Relative error is under 0.5% for |x| <= 1 and
// grows to a few percent and beyond as |x| increases.
func ApproxExp(x Float32x4) Float32x4 {
	x = Clamp(x, -expClamp, expClamp)

	x2 := Mul(x, x)
	x3 := Mul(x2, x)
	x4 := Mul(x3, x)

	r := Add(Ones(), x)
	r = FMA(x2, Broadcast(expC2), r)
	r = FMA(x3, Broadcast(expC3), r)
	r = FMA(x4, Broadcast(expC4), r)
	return r
}

// ApproxSqrt computes an approximate square root per lane: a reciprocal
// square-root estimate refined by two Newton-Raphson steps, then
// sqrt(x) = x * (1/sqrt(x)). Relative error is within 1e-4.
//
// Negative inputs produce garbage; the caller is responsible for the
// domain. Zero maps to zero.
func ApproxSqrt(x Float32x4) Float32x4 {
	r := rsqrtEstimate(x)
	r = Mul(r, rsqrtStep(Mul(x, r), r))
	r = Mul(r, rsqrtStep(Mul(x, r), r))
	return Mul(x, r)
}

// Reciprocal computes an approximate 1/x per lane: an initial estimate
// refined by one Newton-Raphson step r' = r*(2 - x*r). Relative error is
// within 1e-2, typically far less. It backs the Div fallback on targets
// without hardware vector divide.
func Reciprocal(x Float32x4) Float32x4 {
	r := recipEstimate(x)
	return Mul(r, Sub(Broadcast(2), Mul(x, r)))
}

// rsqrtStep mirrors the vrsqrtsq refinement factor (3 - a*b)/2.
func rsqrtStep(a, b Float32x4) Float32x4 {
	return Mul(Broadcast(0.5), Sub(Broadcast(3), Mul(a, b)))
}

func rsqrtEstimate(x Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = math.Float32frombits(rsqrtMagic - math.Float32bits(x[i])>>1)
	}
	return r
}

func recipEstimate(x Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = math.Float32frombits(recipMagic - math.Float32bits(x[i]))
	}
	return r
}
