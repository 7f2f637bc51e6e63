package tuplemath

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ADResult captures an Anderson-Darling normality test's outcome, in the
// style of the teacher's hypothesis-test result structs.
type ADResult struct {
	Statistic     float64 // adjusted A-squared statistic
	CriticalValue float64 // threshold the statistic was compared against
	Gaussian      bool    // true iff Statistic < CriticalValue (do not split)
	SampleSize    int
	Degenerate    bool // true if the sample was too small or had zero variance
}

// defaultCriticalValue is the canonical Anderson-Darling critical value at
// the DefaultADSignificance (0.0001) significance level, per the
// D'Agostino-Stephens table for the case of unknown mean and variance.
const defaultCriticalValue = 1.8692

// minSampleSize is the smallest sample AndersonDarlingGaussian will actually
// test; below this the test is considered degenerate and reports Gaussian.
const minSampleSize = 8

// AndersonDarlingGaussian centers and scales sample by its mean and sample
// standard deviation, then computes the Anderson-Darling A-squared
// statistic against the standard normal CDF (spec §4.1). A degenerate
// sample (fewer than 8 points, or zero variance) is reported as Gaussian,
// i.e. "do not split".
func AndersonDarlingGaussian(sample []float64, criticalValue float64) ADResult {
	n := len(sample)
	if n < minSampleSize {
		return ADResult{Gaussian: true, SampleSize: n, Degenerate: true, CriticalValue: criticalValue}
	}

	mean, variance := stat.MeanVariance(sample, nil)
	if variance <= 0 {
		return ADResult{Gaussian: true, SampleSize: n, Degenerate: true, CriticalValue: criticalValue}
	}
	std := math.Sqrt(variance)

	z := make([]float64, n)
	for i, x := range sample {
		z[i] = (x - mean) / std
	}
	sort.Float64s(z)

	normal := distuv.Normal{Mu: 0, Sigma: 1}
	sum := 0.0
	for i := 0; i < n; i++ {
		// zᵢ is 0-indexed here; spec's 1-indexed (2i-1) becomes (2(i+1)-1).
		weight := float64(2*(i+1) - 1)
		phiLow := normal.CDF(z[i])
		phiHigh := 1 - normal.CDF(z[n-1-i])
		phiLow = clampProbability(phiLow)
		phiHigh = clampProbability(phiHigh)
		sum += weight * (math.Log(phiLow) + math.Log(phiHigh))
	}

	aSquared := -float64(n) - sum/float64(n)
	// Finite-sample correction for the case of unknown mean and variance
	// (D'Agostino & Stephens, 1986).
	nf := float64(n)
	adjusted := aSquared * (1 + 0.75/nf + 2.25/(nf*nf))

	cv := criticalValue
	if cv <= 0 {
		cv = defaultCriticalValue
	}

	return ADResult{
		Statistic:     adjusted,
		CriticalValue: cv,
		Gaussian:      adjusted < cv,
		SampleSize:    n,
	}
}

// clampProbability keeps a CDF value strictly inside (0, 1) so its
// logarithm stays finite even at the extremes of a standardized sample.
func clampProbability(p float64) float64 {
	const eps = 1e-12
	if p < eps {
		return eps
	}
	if p > 1-eps {
		return 1 - eps
	}
	return p
}
