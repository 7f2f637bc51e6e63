package tuplemath

import (
	"math"
	"math/rand"
	"testing"
)

func TestAndersonDarlingDegenerateSmallSample(t *testing.T) {
	result := AndersonDarlingGaussian([]float64{1, 2, 3}, 0)
	if !result.Gaussian || !result.Degenerate {
		t.Errorf("expected degenerate Gaussian=true for n<8, got %+v", result)
	}
}

func TestAndersonDarlingDegenerateZeroVariance(t *testing.T) {
	sample := make([]float64, 20)
	for i := range sample {
		sample[i] = 5
	}
	result := AndersonDarlingGaussian(sample, 0)
	if !result.Gaussian || !result.Degenerate {
		t.Errorf("expected degenerate Gaussian=true for zero variance, got %+v", result)
	}
}

func TestAndersonDarlingAcceptsGaussianSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sample := make([]float64, 500)
	for i := range sample {
		sample[i] = rng.NormFloat64()
	}
	result := AndersonDarlingGaussian(sample, 0)
	if !result.Gaussian {
		t.Errorf("expected a large standard normal sample to pass, got statistic %v critical %v", result.Statistic, result.CriticalValue)
	}
}

func TestAndersonDarlingRejectsBimodalSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sample := make([]float64, 1000)
	for i := range sample {
		if i%2 == 0 {
			sample[i] = -5 + rng.NormFloat64()
		} else {
			sample[i] = 5 + rng.NormFloat64()
		}
	}
	result := AndersonDarlingGaussian(sample, 0)
	if result.Gaussian {
		t.Errorf("expected a well-separated bimodal sample to fail Gaussianity, got statistic %v critical %v", result.Statistic, result.CriticalValue)
	}
}

func TestAndersonDarlingCustomCriticalValue(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	sample := make([]float64, 200)
	for i := range sample {
		sample[i] = rng.NormFloat64()
	}
	loose := AndersonDarlingGaussian(sample, math.Inf(1))
	if !loose.Gaussian {
		t.Error("expected an infinite critical value to always accept")
	}
}
