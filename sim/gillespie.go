// Implements the exact stochastic simulation of the logistic birth process.
// One exponential waiting time per birth, unit increments, absorbing at the
// carrying capacity.

package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/logistic-sim/logistic-sim/sim/trace"
)

// Trajectory is the raw output of the Gillespie run: one entry per event,
// Times strictly increasing starting at 0, Populations strictly increasing
// integers starting at the initial population. Immutable after creation.
type Trajectory struct {
	Times       []float64
	Populations []int64
}

// Len returns the number of recorded events, including the initial state.
func (tr *Trajectory) Len() int {
	return len(tr.Times)
}

// Final returns the population after the last event. For a started process
// this is the carrying capacity; for an empty start it is 0.
func (tr *Trajectory) Final() int64 {
	return tr.Populations[len(tr.Populations)-1]
}

// simulateBirths runs the continuous-time birth process from population n0
// under (b, k), drawing waiting times from rng. The first recorded point is
// always (0, n0). A nil tt disables event tracing.
//
// Termination: the population is a strictly increasing integer bounded by k,
// so the loop runs at most ceil(k)-n0 times. n0 == 0 is absorbing (no births
// possible) and yields the single point (0, 0).
func simulateBirths(n0 int64, b, k float64, rng *rand.Rand, tt *trace.TrajectoryTrace) *Trajectory {
	capHint := 1
	if gap := int(k) - int(n0) + 1; gap > capHint {
		capHint = gap
	}
	tr := &Trajectory{
		Times:       make([]float64, 1, capHint),
		Populations: make([]int64, 1, capHint),
	}
	tr.Times[0] = 0
	tr.Populations[0] = n0

	if n0 == 0 {
		return tr
	}

	t := 0.0
	n := n0
	for float64(n) < k {
		rate := b * float64(n) * (1 - float64(n)/k)
		wait := rng.ExpFloat64() / rate
		t += wait
		n++
		tr.Times = append(tr.Times, t)
		tr.Populations = append(tr.Populations, n)
		tt.RecordBirth(trace.BirthRecord{
			Time:        t,
			Population:  n,
			WaitingTime: wait,
			Propensity:  rate,
		})
	}

	logrus.Debugf("trajectory complete: %d events, absorbed at n=%d, t=%.4f", tr.Len()-1, n, t)
	return tr
}
