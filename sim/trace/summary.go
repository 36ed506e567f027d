package trace

// TraceSummary aggregates statistics from a TrajectoryTrace.
type TraceSummary struct {
	Events          int
	FinalPopulation int64
	Span            float64 // time of the last recorded birth
	MinWait         float64
	MeanWait        float64
	MaxWait         float64
	PeakPropensity  float64
}

// Summarize computes aggregate statistics from a TrajectoryTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(tt *TrajectoryTrace) *TraceSummary {
	summary := &TraceSummary{}
	if tt == nil || len(tt.Births) == 0 {
		return summary
	}

	summary.Events = len(tt.Births)
	last := tt.Births[len(tt.Births)-1]
	summary.FinalPopulation = last.Population
	summary.Span = last.Time

	totalWait := 0.0
	summary.MinWait = tt.Births[0].WaitingTime
	for _, b := range tt.Births {
		totalWait += b.WaitingTime
		if b.WaitingTime < summary.MinWait {
			summary.MinWait = b.WaitingTime
		}
		if b.WaitingTime > summary.MaxWait {
			summary.MaxWait = b.WaitingTime
		}
		if b.Propensity > summary.PeakPropensity {
			summary.PeakPropensity = b.Propensity
		}
	}
	summary.MeanWait = totalWait / float64(summary.Events)

	return summary
}
