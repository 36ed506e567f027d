// Package sim implements an exact stochastic simulator for logistic
// population growth, plus the analytic moments used to validate it.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - gillespie.go: the continuous-time birth process and its raw Trajectory output
//   - interpolate.go: right-continuous step-function resampling onto query times
//   - model.go: the Model facade that validates inputs and composes the two
//
// # Architecture
//
// The process is a birth-only continuous-time Markov jump process with
// propensity b*n*(1-n/k): each event draws an exponential waiting time from
// the current rate and adds one individual, until the population is absorbed
// at the carrying capacity. Simulate resamples the resulting event-time
// trajectory onto caller-supplied observation times; Mean evaluates the
// deterministic logistic solution independently of any simulation.
//
// Randomness is explicit: every Model owns a PartitionedRNG keyed by a
// SimulationKey, with isolated streams for the birth clock and for each
// ensemble replicate (rng.go). Reseeding with the same key reproduces output
// exactly.
//
// Supporting pieces:
//   - ensemble.go: replicated Monte Carlo runs with empirical mean/std-dev
//   - scenario.go: named YAML presets for CLI runs
//   - sim/trace/: optional per-birth event recording and summary statistics
package sim
