// Package perf collects lightweight timing metrics for kernel runs.
// It consumes the numeric core and adds no algorithmic behavior.
package perf

import "time"

// Metrics summarizes one measured kernel run.
type Metrics struct {
	// ElapsedMS is the wall time of the run in milliseconds.
	ElapsedMS float64

	// GFLOPS is the achieved throughput in billions of floating-point
	// operations per second, derived from the caller-supplied op count.
	GFLOPS float64

	// MemoryBytes is the working-set size the caller reported.
	MemoryBytes int

	// Speedup is the ratio against a baseline run, 0 when unknown.
	Speedup float64
}

// RelativeTo fills in Speedup against a baseline measurement.
func (m Metrics) RelativeTo(baseline Metrics) Metrics {
	if m.ElapsedMS > 0 {
		m.Speedup = baseline.ElapsedMS / m.ElapsedMS
	}
	return m
}

// Stopwatch measures a single run.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
}

// Start begins timing.
func (s *Stopwatch) Start() {
	s.start = time.Now()
}

// Stop ends timing. Start/Stop pairs may be reused; each Stop replaces
// the previous measurement.
func (s *Stopwatch) Stop() {
	s.elapsed = time.Since(s.start)
}

// Elapsed returns the last measured duration.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// MetricsFor derives throughput numbers from the last measurement.
// flops is the number of floating-point operations the run performed,
// bytes its working-set size.
func (s *Stopwatch) MetricsFor(flops, bytes int) Metrics {
	sec := s.elapsed.Seconds()
	m := Metrics{
		ElapsedMS:   sec * 1e3,
		MemoryBytes: bytes,
	}
	if sec > 0 {
		m.GFLOPS = float64(flops) / sec / 1e9
	}
	return m
}
