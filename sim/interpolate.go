package sim

import "sort"

// Interpolate resamples a raw trajectory onto arbitrary query times using
// right-continuous step-function semantics: the value at time t is the
// population of the last event whose time is <= t. A query time exactly equal
// to an event time takes that event's population. Times before the first
// event clamp to the initial population; times after the last event hold the
// absorbing level. Query times may be unsorted and repeated; each is resolved
// independently and output order matches input order.
//
// The params argument mirrors the signature of the mean function and does
// not affect the interpolation.
func Interpolate(traj *Trajectory, queryTimes []float64, params Parameters) []float64 {
	_ = params

	values := make([]float64, len(queryTimes))
	for i, t := range queryTimes {
		// First event index with time >= t.
		idx := sort.SearchFloat64s(traj.Times, t)
		if idx < len(traj.Times) && traj.Times[idx] == t {
			values[i] = float64(traj.Populations[idx])
			continue
		}
		if idx == 0 {
			// Query before the trajectory start: clamp to the initial state.
			values[i] = float64(traj.Populations[0])
			continue
		}
		values[i] = float64(traj.Populations[idx-1])
	}
	return values
}
