package sim

import (
	"fmt"
	"math"
)

// logisticMean evaluates the deterministic logistic solution
//
//	k / (1 + ((k - n0) / n0) * exp(-b*t))
//
// at each time. For n0 == 0 the process never leaves zero, so the result is
// all zeros without touching the formula (the (k-n0)/n0 term would divide
// by zero).
func logisticMean(n0 int64, p Parameters, times []float64) []float64 {
	values := make([]float64, len(times))
	if n0 == 0 {
		return values
	}

	b := p.GrowthRate()
	k := p.CarryingCapacity()
	ratio := (k - float64(n0)) / float64(n0)
	for i, t := range times {
		values[i] = k / (1 + ratio*math.Exp(-b*t))
	}
	return values
}

// logisticVariance is a permanent capability gap: no closed-form variance is
// provided, and callers must treat the error as terminal rather than retry.
func logisticVariance(Parameters, []float64) ([]float64, error) {
	return nil, fmt.Errorf("variance of the stochastic logistic model: %w", ErrNotImplemented)
}
