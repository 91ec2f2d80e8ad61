//go:build arm64

package vec128

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 always has NEON (ASIMD); it is part of the ARMv8-A base
	// architecture. The cpu check is kept for consistency with other
	// targets.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
	} else {
		currentLevel = LevelScalar
	}

	// ARMv8 provides vfmaq, vdivq, and the single-instruction horizontal
	// reductions (vaddvq, vmaxvq, vminvq). 32-bit ARM has none of these;
	// it takes the pairwise-fold and reciprocal-refinement strategies,
	// same as VEC128_PUREGO.
	hasFMA = currentLevel == LevelNEON
	hasNativeDivide = currentLevel == LevelNEON
	hasNativeReduce = currentLevel == LevelNEON

	bind()
}
