package nanobench

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		x         float64
		precision int
		want      string
	}{
		{281.733, 3, "281.733"},
		{1234567.891, 3, "1,234,567.891"},
		{0.5, 3, "0.500"},
		{999.9996, 3, "1,000.000"},
		{-1234.5, 3, "-1,234.500"},
		{-0.25, 3, "-0.250"},
		{1234, 0, "1,234"},
		{0.998, 3, "0.998"},
		{math.NaN(), 3, "NaN"},
		{math.Inf(1), 3, "+Inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.x, tt.precision), "x=%v", tt.x)
	}
}

func TestFormatResult(t *testing.T) {
	estimated := Result{
		Name:       "iterative_16",
		Elapsed:    5_000_000_000,
		Samples:    make([]Sample, 2),
		Analysis:   Analysis{Slope: 281.733, RSquared: 0.998},
		Sufficient: true,
	}
	assert.Equal(t,
		"iterative_16 (5.0s) ...                  281.733 ns/iter (0.998 R²)",
		FormatResult(estimated))

	insufficient := Result{Name: "iterative_16", Elapsed: 5_000_000_000}
	assert.Equal(t,
		"iterative_16 (5.0s) ...              not enough samples",
		FormatResult(insufficient))

	large := estimated
	large.Analysis.Slope = 1234567.891
	assert.Contains(t, FormatResult(large), "1,234,567.891 ns/iter")
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTextReporter(&buf)

	rep.Report(Result{Name: "a", Elapsed: 1e9})
	rep.Report(Result{Name: "b", Elapsed: 2e9})

	assert.Equal(t,
		"a (1.0s) ...              not enough samples\n"+
			"b (2.0s) ...              not enough samples\n",
		buf.String())
}

func TestMultiReporter(t *testing.T) {
	var order []string
	first := ReporterFunc(func(r Result) { order = append(order, "first:"+r.Name) })
	second := ReporterFunc(func(r Result) { order = append(order, "second:"+r.Name) })

	MultiReporter(first, Discard, second).Report(Result{Name: "x"})

	assert.Equal(t, []string{"first:x", "second:x"}, order)
}
