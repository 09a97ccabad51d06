package nanobench

import (
	"testing"
	"time"
)

// AssertionConfig contains thresholds for benchmark estimates.
type AssertionConfig struct {
	// Relative tolerance around the expected cost (0.10 = ±10%)
	Tolerance float64

	// Minimum R² for model fit quality
	MinRSquared float64
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance:   0.10, // ±10% of expected cost
		MinRSquared: 0.95, // 95% model fit
	}
}

// AssertEstimated verifies the result carries a trustworthy estimate.
func AssertEstimated(t testing.TB, result Result) Analysis {
	t.Helper()

	analysis, ok := result.Estimate()
	if !ok {
		t.Fatalf("%s: not enough samples (%d collected in %s)\n"+
			"Increase the time budget or the cost per iteration.",
			result.Name, len(result.Samples), result.Elapsed)
	}
	return analysis
}

// AssertCostNear verifies the estimated cost per iteration is within
// cfg.Tolerance of expected.
func AssertCostNear(t testing.TB, result Result, expected time.Duration, cfg AssertionConfig) {
	t.Helper()

	analysis := AssertEstimated(t, result)
	want := float64(expected.Nanoseconds())
	lo, hi := want*(1-cfg.Tolerance), want*(1+cfg.Tolerance)

	if analysis.Slope < lo || analysis.Slope > hi {
		t.Errorf("%s: cost %.3f ns/iter outside [%.3f, %.3f]\n"+
			"Expected %v ± %.0f%%.",
			result.Name, analysis.Slope, lo, hi, expected, cfg.Tolerance*100)
		return
	}

	t.Logf("✓ %s: %s ns/iter (expected %v ± %.0f%%)",
		result.Name, FormatNumber(analysis.Slope, 3), expected, cfg.Tolerance*100)
}

// AssertGoodFit verifies R² is at least cfg.MinRSquared.
func AssertGoodFit(t testing.TB, result Result, cfg AssertionConfig) {
	t.Helper()

	analysis := AssertEstimated(t, result)
	if analysis.RSquared < cfg.MinRSquared {
		t.Errorf("%s: poor model fit: R² = %.4f (min: %.4f)\n"+
			"Linear model doesn't explain the samples. Check for measurement noise.",
			result.Name, analysis.RSquared, cfg.MinRSquared)
		return
	}

	t.Logf("✓ %s: model fit R² = %.4f", result.Name, analysis.RSquared)
}

// PrintAnalysis outputs the estimate and per-sample spread to the test log.
func PrintAnalysis(t testing.TB, result Result) {
	t.Helper()

	t.Logf("\n=== %s ===", result.Name)
	t.Logf("Collected %d samples in %s", len(result.Samples), result.Elapsed)

	analysis, ok := result.Estimate()
	if !ok {
		t.Logf("  ✗ not enough samples")
		return
	}

	t.Logf("  β (slope)     = %s ns/iter", FormatNumber(analysis.Slope, 3))
	t.Logf("  α (intercept) = %s ns", FormatNumber(analysis.Intercept, 3))
	t.Logf("  R²            = %.4f", analysis.RSquared)

	s := result.Summary()
	t.Logf("\nPer-sample ns/iter:")
	t.Logf("  mean=%.3f stddev=%.3f min=%.3f p50=%.3f p95=%.3f p99=%.3f",
		s.Mean, s.Stddev, s.Min, s.P50, s.P95, s.P99)

	if analysis.RSquared > 0.98 {
		t.Logf("  ✓ Excellent model fit (R² > 0.98)")
	} else if analysis.RSquared > 0.95 {
		t.Logf("  ✓ Good model fit (R² > 0.95)")
	} else {
		t.Logf("  ⚠ Noisy model fit (R² ≤ 0.95) - check for background load")
	}
}
