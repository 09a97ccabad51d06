package nanobench

import (
	"math"
	"slices"
)

// Summary describes the spread of per-iteration cost across samples.
// It complements the regression slope, which weights large batches most.
type Summary struct {
	Mean   float64 // Mean ns/iter over samples
	Stddev float64
	Min    float64
	P50    float64
	P95    float64
	P99    float64
}

// Summarize computes per-iteration statistics of samples.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	perIter := make([]float64, len(samples))
	for i, s := range samples {
		perIter[i] = float64(s.Elapsed) / float64(s.Iterations)
	}
	slices.Sort(perIter)

	mean := Mean(perIter)

	// Population standard deviation
	var variance KahanSummer
	for _, v := range perIter {
		d := v - mean
		variance.Add(float64(d * d))
	}
	stddev := math.Sqrt(variance.Sum() / float64(len(perIter)))

	return Summary{
		Mean:   mean,
		Stddev: stddev,
		Min:    perIter[0],
		P50:    perIter[len(perIter)*50/100],
		P95:    perIter[len(perIter)*95/100],
		P99:    perIter[len(perIter)*99/100],
	}
}

// Summary summarizes the samples of r.
func (r Result) Summary() Summary {
	return Summarize(r.Samples)
}
