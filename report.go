package nanobench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
)

// Reporter receives finished benchmark results.
type Reporter interface {
	Report(Result)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Result)

// Report calls f(r).
func (f ReporterFunc) Report(r Result) { f(r) }

// MultiReporter forwards every result to each of reporters in order.
func MultiReporter(reporters ...Reporter) Reporter {
	return ReporterFunc(func(r Result) {
		for _, rep := range reporters {
			rep.Report(r)
		}
	})
}

// Discard is a Reporter that drops results.
var Discard Reporter = ReporterFunc(func(Result) {})

// TextReporter writes one human-readable line per result.
type TextReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTextReporter returns a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report writes the formatted result followed by a newline.
// Write errors are ignored.
func (t *TextReporter) Report(r Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, FormatResult(r))
}

// FormatResult renders r as a single line, for example
//
//	iterative_16 (5.0s) ...                  281.733 ns/iter (0.998 R²)
//	iterative_16 (5.0s) ...              not enough samples
func FormatResult(r Result) string {
	if analysis, ok := r.Estimate(); ok {
		return fmt.Sprintf("%s (%s) ... %24s ns/iter (%.3f R²)",
			r.Name, r.Elapsed, FormatNumber(analysis.Slope, 3), analysis.RSquared)
	}
	return fmt.Sprintf("%s (%s) ... %31s", r.Name, r.Elapsed, "not enough samples")
}

// FormatNumber renders x with the given number of decimal places and a comma
// between each group of three integral digits, e.g. 1234567.891 -> "1,234,567.891".
func FormatNumber(x float64, precision int) string {
	s := strconv.FormatFloat(x, 'f', precision, 64)
	integral, fractional, hasFraction := strings.Cut(s, ".")

	// NaN, ±Inf and integers past int64 are left ungrouped.
	if n, err := strconv.ParseInt(integral, 10, 64); err == nil {
		grouped := humanize.Comma(n)
		if n == 0 && strings.HasPrefix(integral, "-") {
			grouped = "-" + grouped
		}
		integral = grouped
	}

	if !hasFraction {
		return integral
	}
	return integral + "." + fractional
}
