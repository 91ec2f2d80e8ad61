//go:build !amd64 && !arm64

package vec128

func init() {
	// Other architectures take the portable strategies. Hardware divide
	// stays on: the Go divide instruction is exact everywhere, and the
	// reciprocal-refinement path exists to model targets whose vector
	// unit lacks divide, not as a general fallback.
	currentLevel = LevelScalar
	hasFMA = false
	hasNativeDivide = true
	hasNativeReduce = false

	bind()
}
