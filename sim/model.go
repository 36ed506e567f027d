// Model is the user-facing facade: it owns the initial population and the
// partitioned RNG, validates inputs, and composes the Gillespie engine with
// the step-function resampler.

package sim

import (
	"fmt"
	"time"

	"github.com/logistic-sim/logistic-sim/sim/trace"
)

// Suggested defaults for demonstration and calibration runs.
const (
	// SuggestedTimeCount is the length of the default observation grid.
	SuggestedTimeCount = 101
	// SuggestedHorizon is the end of the default observation grid.
	SuggestedHorizon = 100.0

	suggestedGrowthRate       = 0.1
	suggestedCarryingCapacity = 50.0
)

// Model simulates stochastic logistic population growth from a fixed initial
// population. The only persistent state is the initial population and the
// RNG handle; parameters and observation times are per-call inputs.
//
// Not safe for concurrent use: Simulate draws from the model's RNG streams.
type Model struct {
	initialPopulation int64
	rng               *PartitionedRNG
	trajectoryTrace   *trace.TrajectoryTrace
}

// NewModel creates a model with a time-derived simulation key. Use
// NewModelWithKey (or Reseed) when reproducibility matters.
func NewModel(initialPopulation int) (*Model, error) {
	return NewModelWithKey(initialPopulation, NewSimulationKey(time.Now().UnixNano()))
}

// NewModelWithKey creates a model whose randomness is fully determined by key.
func NewModelWithKey(initialPopulation int, key SimulationKey) (*Model, error) {
	if initialPopulation < 0 {
		return nil, fmt.Errorf("initial population must be non-negative, got %d: %w",
			initialPopulation, ErrValidation)
	}
	return &Model{
		initialPopulation: int64(initialPopulation),
		rng:               NewPartitionedRNG(key),
	}, nil
}

// InitialPopulation returns the population the process starts from.
func (m *Model) InitialPopulation() int {
	return int(m.initialPopulation)
}

// Reseed resets all RNG streams to a fresh key. Two models reseeded with the
// same key produce identical output for identical call sequences.
func (m *Model) Reseed(key SimulationKey) {
	m.rng = NewPartitionedRNG(key)
}

// EnableTrace turns on birth-event recording at the given level and returns
// the trace for inspection after simulation calls. Each SimulateRaw resets
// the record list; the returned handle stays valid.
func (m *Model) EnableTrace(config trace.TraceConfig) *trace.TrajectoryTrace {
	m.trajectoryTrace = trace.NewTrajectoryTrace(config)
	return m.trajectoryTrace
}

// SimulateRaw runs one exact Gillespie realization and returns the raw
// event-time trajectory. Exposed for diagnostics; Simulate is the normal
// entry point. Validation happens before any randomness is consumed.
func (m *Model) SimulateRaw(params Parameters) (*Trajectory, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if m.trajectoryTrace != nil {
		m.trajectoryTrace.Births = m.trajectoryTrace.Births[:0]
	}
	rng := m.rng.ForSubsystem(SubsystemBirths)
	return simulateBirths(m.initialPopulation, params.GrowthRate(), params.CarryingCapacity(), rng, m.trajectoryTrace), nil
}

// Simulate runs one stochastic realization and resamples it onto times.
// The returned slice is aligned by index with times.
func (m *Model) Simulate(params Parameters, times []float64) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := validateTimes(times); err != nil {
		return nil, err
	}
	traj, err := m.SimulateRaw(params)
	if err != nil {
		return nil, err
	}
	return Interpolate(traj, times, params), nil
}

// Mean returns the deterministic logistic expectation at each time.
func (m *Model) Mean(params Parameters, times []float64) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := validateTimes(times); err != nil {
		return nil, err
	}
	return logisticMean(m.initialPopulation, params, times), nil
}

// Variance always fails with ErrNotImplemented after input validation.
// The gap is a documented contract, not a deferred feature.
func (m *Model) Variance(params Parameters, times []float64) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := validateTimes(times); err != nil {
		return nil, err
	}
	return logisticVariance(params, times)
}

// SuggestedTimes returns the default observation grid: SuggestedTimeCount
// points evenly spaced over [0, SuggestedHorizon].
func (m *Model) SuggestedTimes() []float64 {
	return Linspace(0, SuggestedHorizon, SuggestedTimeCount)
}

// SuggestedParameters returns a strictly positive default parameter pair.
func (m *Model) SuggestedParameters() Parameters {
	return Parameters{suggestedGrowthRate, suggestedCarryingCapacity}
}

// Linspace returns n evenly spaced points from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	points := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range points {
		points[i] = start + float64(i)*step
	}
	return points
}
