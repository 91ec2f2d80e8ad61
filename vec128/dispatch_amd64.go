//go:build amd64

package vec128

import "golang.org/x/sys/cpu"

func init() {
	// SSE2 is the amd64 baseline, so 128-bit vectors and hardware divide
	// are always available. FMA arrived with Haswell and needs a check.
	currentLevel = LevelSSE2
	hasFMA = cpu.X86.HasFMA
	hasNativeDivide = true

	// x86 has no single-instruction horizontal reduce; reductions use the
	// pairwise fold (the movhlps/shufps idiom).
	hasNativeReduce = false

	bind()
}
