// Package nanobench estimates the cost of very small pieces of code.
//
// # Overview
//
// A single timed call of a sub-microsecond function is mostly clock noise.
// nanobench instead runs the function in batches of growing size, times each
// batch, and fits a line through the (iterations, elapsed) samples:
//
//	elapsed(n) = β·n + α
//
// Where:
//   - β (slope): Nanoseconds per iteration, the reported cost
//   - α (intercept): Fixed per-batch overhead (timer reads, loop setup)
//   - R²: How well the line explains the samples (1.0 = perfect)
//
// Batch sizes follow a de-duplicated geometric sequence (1, 2, 3, ... growing
// by Options.Factor each step) until the time budget is spent.
//
// # Quick Start
//
//	opts := nanobench.DefaultOptions().WithTime(2 * time.Second)
//
//	nanobench.Bench(opts, "iterative_16", func() uint64 {
//	    return fibonacci(16)
//	})
//
// prints
//
//	iterative_16 (2.0s) ...                  281.733 ns/iter (0.998 R²)
//
// # Variants
//
//   - Bench: time f back to back.
//   - BenchDrop: keep every result alive until the batch is timed, so
//     releasing results is not measured.
//   - BenchSetup: build every input first, then time only f(input).
//
// BenchDrop and BenchSetup hold one value per iteration at once. A batch that
// would need more than Options.Memory stops sampling before it allocates.
//
// # Trustworthy estimates
//
// A result with fewer than two samples, or a negative slope, is reported as
// "not enough samples". A negative slope means the clock could not resolve
// the work being measured.
//
// # Testing
//
// Use assertions to check estimates from tests:
//
//	func TestHashCost(t *testing.T) {
//	    result := nanobench.Bench(opts, "hash", hashOnce)
//
//	    nanobench.AssertGoodFit(t, result, nanobench.DefaultAssertionConfig())
//	    nanobench.AssertCostNear(t, result, 50*time.Nanosecond, nanobench.DefaultAssertionConfig())
//	}
//
// # See Also
//
//   - examples/fibonacci - Command-line runner with Prometheus export
package nanobench
