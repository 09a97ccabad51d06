package nanobench

import (
	"math/bits"
	"unsafe"
)

// MaxIterations caps the iteration count of a single sample.
const MaxIterations uint64 = 1_000_000_000_000_000

// Sample is the wall-clock time taken by one batch of iterations.
type Sample struct {
	Iterations uint64
	Elapsed    Nanoseconds
}

// Measurement times one batch of the given number of iterations.
// It returns false instead of a time when the batch would exceed a budget.
type Measurement func(iterations uint64) (Nanoseconds, bool)

// Collect runs m with geometrically increasing iteration counts until the
// time budget is spent, MaxIterations is passed, or m reports an exhausted
// budget. Iteration counts only grow, so the loop ends at the first
// exhausted round rather than retrying a smaller one.
func Collect(opts Options, m Measurement) []Sample {
	opts.mustValidate()
	log := opts.logger()

	sw := StartStopwatch()
	seq := NewGeometricSequence(1, opts.Factor)

	var samples []Sample
	for {
		iterations := seq.Next()
		if iterations > MaxIterations {
			log.Debug("sampling stopped", "reason", "iteration ceiling", "samples", len(samples))
			break
		}
		if elapsed := sw.Elapsed(); elapsed > opts.Time {
			log.Debug("sampling stopped", "reason", "time budget",
				"samples", len(samples), "elapsed", elapsed, "budget", opts.Time)
			break
		}

		elapsed, ok := m(iterations)
		if !ok {
			log.Debug("sampling stopped", "reason", "budget exhausted",
				"samples", len(samples), "iterations", iterations)
			break
		}
		samples = append(samples, Sample{Iterations: iterations, Elapsed: elapsed})
	}

	return samples
}

// measurePlain times f called iterations times in a row.
func measurePlain[T any](f func() T) Measurement {
	return func(iterations uint64) (Nanoseconds, bool) {
		sw := StartStopwatch()
		for range iterations {
			Retain(f())
		}
		return sw.Elapsed(), true
	}
}

// measureDrop times building a buffer of iterations results of f. The buffer
// is released after the stopwatch is read.
func measureDrop[T any](opts Options, f func() T) Measurement {
	size := elementSize[T]()
	return func(iterations uint64) (Nanoseconds, bool) {
		if !fitsBudget(iterations, size, opts.Memory) {
			return 0, false
		}

		sw := StartStopwatch()
		results := make([]T, 0, iterations)
		for range iterations {
			results = append(results, f())
		}
		elapsed := sw.Elapsed()

		Retain(results)
		clear(results)
		return elapsed, true
	}
}

// measureSetup prepares iterations inputs with setup, then times f applied
// to each of them.
func measureSetup[I, O any](opts Options, setup func() I, f func(I) O) Measurement {
	size := elementSize[I]()
	return func(iterations uint64) (Nanoseconds, bool) {
		if !fitsBudget(iterations, size, opts.Memory) {
			return 0, false
		}

		inputs := make([]I, iterations)
		for i := range inputs {
			inputs[i] = Retain(setup())
		}

		sw := StartStopwatch()
		for _, input := range inputs {
			Retain(f(input))
		}
		elapsed := sw.Elapsed()

		clear(inputs)
		return elapsed, true
	}
}

// elementSize is the budgeted size of one T; zero-sized types count as one byte.
func elementSize[T any]() uint64 {
	var zero T
	return max(1, uint64(unsafe.Sizeof(zero)))
}

// fitsBudget reports whether iterations values of size bytes fit in budget.
func fitsBudget(iterations, size uint64, budget Bytes) bool {
	hi, required := bits.Mul64(iterations, size)
	return hi == 0 && required <= uint64(budget)
}
