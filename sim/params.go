package sim

import "fmt"

// NumParameters is the arity of the logistic model: growth rate and
// carrying capacity, in that order.
const NumParameters = 2

// Parameters is the ordered (growth rate b, carrying capacity k) pair.
// Both entries must be strictly positive.
type Parameters []float64

// GrowthRate returns b, the per-capita birth rate at low population.
func (p Parameters) GrowthRate() float64 { return p[0] }

// CarryingCapacity returns k, the absorbing upper bound on population size.
func (p Parameters) CarryingCapacity() float64 { return p[1] }

// Validate checks arity and strict positivity of both parameters.
func (p Parameters) Validate() error {
	if len(p) != NumParameters {
		return fmt.Errorf("model takes %d parameters (growth rate, carrying capacity), got %d: %w",
			NumParameters, len(p), ErrValidation)
	}
	if p.GrowthRate() <= 0 {
		return fmt.Errorf("growth rate must be positive, got %v: %w", p.GrowthRate(), ErrValidation)
	}
	if p.CarryingCapacity() <= 0 {
		return fmt.Errorf("carrying capacity must be positive, got %v: %w", p.CarryingCapacity(), ErrValidation)
	}
	return nil
}

// validateTimes rejects any negative observation time.
func validateTimes(times []float64) error {
	for i, t := range times {
		if t < 0 {
			return fmt.Errorf("times must be non-negative, got %v at index %d: %w", t, i, ErrValidation)
		}
	}
	return nil
}
