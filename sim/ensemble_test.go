package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsemble_ShapeAndBounds(t *testing.T) {
	model, err := NewModelWithKey(1, NewSimulationKey(42))
	require.NoError(t, err)

	times := Linspace(0, 100, 11)
	result, err := model.Ensemble(Parameters{0.1, 50}, times, 20)
	require.NoError(t, err)

	require.Len(t, result.Mean, len(times))
	require.Len(t, result.StdDev, len(times))
	assert.Equal(t, 20, result.Replicates)

	// Every trajectory lives in [n0, k], so the empirical mean must too.
	for i, m := range result.Mean {
		assert.GreaterOrEqual(t, m, 1.0, "mean at index %d", i)
		assert.LessOrEqual(t, m, 50.0, "mean at index %d", i)
	}
	// At t=0 every replicate sits at the initial population exactly.
	assert.Equal(t, 1.0, result.Mean[0])
	assert.Equal(t, 0.0, result.StdDev[0])
}

func TestEnsemble_MeanNonDecreasing(t *testing.T) {
	model, err := NewModelWithKey(1, NewSimulationKey(7))
	require.NoError(t, err)

	times := Linspace(0, 200, 21)
	result, err := model.Ensemble(Parameters{0.1, 50}, times, 10)
	require.NoError(t, err)

	// Birth-only process: each replicate is non-decreasing, so the mean is.
	for i := 1; i < len(result.Mean); i++ {
		assert.GreaterOrEqual(t, result.Mean[i], result.Mean[i-1], "index %d", i)
	}
}

func TestEnsemble_AbsorbedAtCapacityForLargeTimes(t *testing.T) {
	model, err := NewModelWithKey(1, NewSimulationKey(11))
	require.NoError(t, err)

	times := []float64{0, 10000}
	result, err := model.Ensemble(Parameters{0.1, 50}, times, 15)
	require.NoError(t, err)

	// Far past the expected absorption time every replicate holds at k,
	// so the empirical mean is exactly k with zero spread.
	assert.Equal(t, 50.0, result.Mean[1])
	assert.Equal(t, 0.0, result.StdDev[1])
}

func TestEnsemble_ReproducibleAcrossModels(t *testing.T) {
	times := Linspace(0, 100, 11)
	params := Parameters{0.1, 50}

	m1, err := NewModelWithKey(1, NewSimulationKey(42))
	require.NoError(t, err)
	m2, err := NewModelWithKey(1, NewSimulationKey(42))
	require.NoError(t, err)

	r1, err := m1.Ensemble(params, times, 10)
	require.NoError(t, err)
	r2, err := m2.Ensemble(params, times, 10)
	require.NoError(t, err)

	assert.Equal(t, r1.Mean, r2.Mean)
	assert.Equal(t, r1.StdDev, r2.StdDev)
}

func TestEnsemble_ValidatesInputs(t *testing.T) {
	model, err := NewModelWithKey(1, NewSimulationKey(1))
	require.NoError(t, err)

	_, err = model.Ensemble(Parameters{0.1}, []float64{0, 1}, 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = model.Ensemble(Parameters{0.1, 50}, []float64{-1, 1}, 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = model.Ensemble(Parameters{0.1, 50}, []float64{0, 1}, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEnsembleResult_MaxAbsDeviation(t *testing.T) {
	r := &EnsembleResult{Mean: []float64{1, 2, 3}}

	dev, err := r.MaxAbsDeviation([]float64{1, 1.5, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dev, 1e-12)

	_, err = r.MaxAbsDeviation([]float64{1, 2})
	assert.ErrorIs(t, err, ErrValidation)
}
