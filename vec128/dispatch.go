package vec128

import (
	"os"
	"strconv"
)

// Level identifies the instruction-set capabilities the kernels assume.
type Level int

const (
	// LevelScalar indicates portable pure-Go strategies everywhere.
	LevelScalar Level = iota

	// LevelSSE2 indicates x86-64 baseline 128-bit vectors.
	LevelSSE2

	// LevelNEON indicates ARM64 NEON (ASIMD) 128-bit vectors.
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Detected capabilities. Set once by the per-arch init in dispatch_*.go
// before bind runs; read-only afterwards.
var (
	currentLevel Level

	hasFMA          bool
	hasNativeDivide bool
	hasNativeReduce bool
)

// Strategy bindings. Each public operation with more than one valid
// implementation calls through one of these; bind selects the
// implementation once at startup so the hot path carries no branches.
var (
	fmaImpl       func(a, b, c Float32x4) Float32x4
	divImpl       func(a, b Float32x4) Float32x4
	reduceSumImpl func(v Float32x4) float32
	reduceMaxImpl func(v Float32x4) float32
	reduceMinImpl func(v Float32x4) float32
)

// CurrentLevel returns the instruction-set level selected at startup.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns a human-readable name for the selected level.
func CurrentName() string {
	return currentLevel.String()
}

// HasFMA reports whether FMA computes a*b+c in a single rounding step.
// When false, FMA is multiply-then-add with two roundings.
func HasFMA() bool {
	return hasFMA
}

// VectorWidth returns the vector register width in bytes.
func VectorWidth() int {
	return Alignment
}

// PureGoEnv checks the VEC128_PUREGO environment variable. When set, the
// portable strategies are used regardless of CPU capabilities. Useful for
// testing and debugging.
func PureGoEnv() bool {
	val := os.Getenv("VEC128_PUREGO")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// bind selects strategy implementations from the detected capabilities.
// Called from the per-arch init functions.
func bind() {
	if PureGoEnv() {
		currentLevel = LevelScalar
		hasFMA = false
		hasNativeDivide = false
		hasNativeReduce = false
	}

	if hasFMA {
		fmaImpl = fmaFused
	} else {
		fmaImpl = fmaMulAdd
	}

	if hasNativeDivide {
		divImpl = divNative
	} else {
		divImpl = divRecip
	}

	if hasNativeReduce {
		reduceSumImpl = reduceSumDirect
		reduceMaxImpl = reduceMaxDirect
		reduceMinImpl = reduceMinDirect
	} else {
		reduceSumImpl = reduceSumPairwise
		reduceMaxImpl = reduceMaxPairwise
		reduceMinImpl = reduceMinPairwise
	}
}
