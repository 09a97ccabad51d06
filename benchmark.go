package nanobench

// Result is the outcome of one named benchmark.
type Result struct {
	Name       string
	Elapsed    Nanoseconds // Wall time of the whole collection phase
	Samples    []Sample
	Analysis   Analysis
	Sufficient bool // False when the estimate cannot be trusted
}

// Estimate returns the fitted model and whether it is trustworthy.
func (r Result) Estimate() (Analysis, bool) {
	return r.Analysis, r.Sufficient
}

// Bench measures f, which is called back to back with its results
// discarded through Retain.
//
//	nanobench.Bench(nanobench.DefaultOptions(), "iterative_16", func() uint64 {
//	    return fibonacci(16)
//	})
func Bench[T any](opts Options, name string, f func() T) Result {
	return run(opts, name, measurePlain(f))
}

// BenchDrop measures f while keeping every result alive until the batch is
// timed, so the cost of releasing results is excluded.
//
// Each round holds iterations results at once; a round that would need more
// than opts.Memory ends sampling.
func BenchDrop[T any](opts Options, name string, f func() T) Result {
	return run(opts, name, measureDrop(opts, f))
}

// BenchSetup measures f applied to inputs produced by setup. Inputs are all
// built before the stopwatch starts, so setup cost is excluded.
//
// Each round holds iterations inputs at once; a round that would need more
// than opts.Memory ends sampling.
func BenchSetup[I, O any](opts Options, name string, setup func() I, f func(I) O) Result {
	return run(opts, name, measureSetup(opts, setup, f))
}

func run(opts Options, name string, m Measurement) Result {
	opts.mustValidate()

	sw := StartStopwatch()
	samples := Collect(opts, m)
	elapsed := sw.Elapsed()

	result := Analyze(name, elapsed, samples)
	opts.reporter().Report(result)
	return result
}

// Analyze fits samples and applies the trust policy: fewer than two samples,
// or a negative slope, mean the clock could not resolve the work and the
// result is marked insufficient. A NaN slope passes the policy.
func Analyze(name string, elapsed Nanoseconds, samples []Sample) Result {
	result := Result{
		Name:    name,
		Elapsed: elapsed,
		Samples: samples,
	}
	if len(samples) < 2 {
		return result
	}

	data := make([]Point, len(samples))
	for i, s := range samples {
		data[i] = Point{X: float64(s.Iterations), Y: float64(s.Elapsed)}
	}
	result.Analysis = Regression(data)
	result.Sufficient = !(result.Analysis.Slope < 0)

	return result
}
