// Package trace provides birth-event recording for trajectory diagnostics.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// BirthRecord captures a single birth event of the jump process.
type BirthRecord struct {
	Time        float64 // absolute event time
	Population  int64   // population level after the birth
	WaitingTime float64 // exponential waiting time that led to this event
	Propensity  float64 // birth rate b*n*(1-n/k) that generated the waiting time
}
