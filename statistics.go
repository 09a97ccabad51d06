package nanobench

// KahanSummer accumulates float64 values with Kahan compensated summation.
// The zero value is an empty sum.
type KahanSummer struct {
	sum        float64
	correction float64
}

// Add adds v to the running sum.
func (k *KahanSummer) Add(v float64) {
	y := v - k.correction
	t := k.sum + y
	k.correction = (t - k.sum) - y
	k.sum = t
}

// Sum returns the compensated sum of every value added so far.
func (k *KahanSummer) Sum() float64 {
	return k.sum
}

// KahanSum returns the sum of xs using Kahan summation.
func KahanSum(xs []float64) float64 {
	var k KahanSummer
	for _, x := range xs {
		k.Add(x)
	}
	return k.Sum()
}

// Mean returns the Kahan-summed mean of xs. The mean of no values is NaN.
func Mean(xs []float64) float64 {
	return KahanSum(xs) / float64(len(xs))
}

// Point is one (x, y) observation fed to Regression.
type Point struct {
	X float64
	Y float64
}

// Analysis is a fitted linear model y = Slope·x + Intercept.
type Analysis struct {
	Intercept float64 // α
	Slope     float64 // β: nanoseconds per iteration when fitted to samples
	RSquared  float64 // R²: explained variance over total variance
}

// Predict evaluates the model at x.
func (a Analysis) Predict(x float64) float64 {
	return float64(a.Slope*x) + a.Intercept
}

// Regression fits data with ordinary least squares.
//
// Every reduction uses Kahan summation, and every product is rounded before
// it is summed so results do not depend on fused multiply-add. Goodness of
// fit is computed as
//
//	R² = Σ(ŷᵢ - ȳ)² / Σ(yᵢ - ȳ)²
//
// rather than 1 - SSres/SStot, so unusual fits can land outside [0, 1].
// Degenerate input (fewer than two distinct x values) yields NaN or ±Inf
// fields instead of an error.
func Regression(data []Point) Analysis {
	n := float64(len(data))

	var sx, sy KahanSummer
	for _, p := range data {
		sx.Add(p.X)
		sy.Add(p.Y)
	}
	xmean := sx.Sum() / n
	ymean := sy.Sum() / n

	// β = Σ(x-x̄)(y-ȳ) / Σ(x-x̄)²
	var num, den KahanSummer
	for _, p := range data {
		dx := p.X - xmean
		num.Add(float64(dx * (p.Y - ymean)))
		den.Add(float64(dx * dx))
	}
	beta := num.Sum() / den.Sum()
	alpha := ymean - float64(beta*xmean)

	var explained, total KahanSummer
	for _, p := range data {
		de := (float64(beta*p.X) + alpha) - ymean
		dy := p.Y - ymean
		explained.Add(float64(de * de))
		total.Add(float64(dy * dy))
	}

	return Analysis{
		Intercept: alpha,
		Slope:     beta,
		RSquared:  explained.Sum() / total.Sum(),
	}
}
