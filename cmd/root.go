package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/logistic-sim/logistic-sim/sim"
	"github.com/logistic-sim/logistic-sim/sim/trace"
)

var (
	// CLI flags shared by the simulation commands
	seed              int64   // Seed for the simulation key
	logLevel          string  // Log verbosity level
	initialPopulation int     // Population the process starts from
	growthRate        float64 // Logistic growth rate b
	carryingCapacity  float64 // Absorbing carrying capacity k
	horizon           float64 // End of the observation grid
	points            int     // Number of observation times
	traceLevel        string  // Birth-event trace level (none, events)
	replicates        int     // Ensemble replicate count
	scenariosFile     string  // Path to a scenarios YAML file
	scenarioName      string  // Named preset to load from the scenarios file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "logistic-sim",
	Short: "Exact stochastic simulator for logistic population growth",
}

// setupRun applies logging flags and resolves the model and observation grid
// for a simulation command, from either CLI flags or a named scenario preset.
func setupRun() (*sim.Model, sim.Parameters, []float64) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	n0 := initialPopulation
	params := sim.Parameters{growthRate, carryingCapacity}
	times := sim.Linspace(0, horizon, points)
	key := sim.NewSimulationKey(seed)

	if scenarioName != "" {
		scenarios, err := sim.LoadScenarios(scenariosFile)
		if err != nil {
			logrus.Fatalf("Failed to load scenarios: %v", err)
		}
		sc, ok := scenarios[scenarioName]
		if !ok {
			logrus.Fatalf("Scenario %q not found in %s", scenarioName, scenariosFile)
		}
		n0 = sc.InitialPopulation
		params = sc.Parameters()
		times = sc.Times()
		key = sim.NewSimulationKey(sc.Seed)
	}

	model, err := sim.NewModelWithKey(n0, key)
	if err != nil {
		logrus.Fatalf("Invalid model configuration: %v", err)
	}
	return model, params, times
}

// runCmd simulates a single trajectory and prints the resampled values.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one stochastic trajectory and resample it onto the observation grid",
	Run: func(cmd *cobra.Command, args []string) {
		model, params, times := setupRun()

		var tt *trace.TrajectoryTrace
		if traceLevel != "" && traceLevel != string(trace.TraceLevelNone) {
			if !trace.IsValidTraceLevel(traceLevel) {
				logrus.Fatalf("Invalid trace level: %s", traceLevel)
			}
			tt = model.EnableTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})
		}

		logrus.Infof("Simulating n0=%d, b=%v, k=%v over %d observation times",
			model.InitialPopulation(), params.GrowthRate(), params.CarryingCapacity(), len(times))

		values, err := model.Simulate(params, times)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		printSeries(times, values)

		if tt != nil {
			s := trace.Summarize(tt)
			logrus.Infof("Trace: %d births, span=%.4f, wait min/mean/max=%.4g/%.4g/%.4g, peak propensity=%.4g",
				s.Events, s.Span, s.MinWait, s.MeanWait, s.MaxWait, s.PeakPropensity)
		}
	},
}

// meanCmd prints the analytic logistic expectation on the observation grid.
var meanCmd = &cobra.Command{
	Use:   "mean",
	Short: "Evaluate the analytic logistic mean on the observation grid",
	Run: func(cmd *cobra.Command, args []string) {
		model, params, times := setupRun()

		values, err := model.Mean(params, times)
		if err != nil {
			logrus.Fatalf("Mean evaluation failed: %v", err)
		}
		printSeries(times, values)
	},
}

// ensembleCmd runs replicated simulations and compares the empirical mean
// against the analytic one.
var ensembleCmd = &cobra.Command{
	Use:   "ensemble",
	Short: "Run replicated simulations and validate the empirical mean against the analytic mean",
	Run: func(cmd *cobra.Command, args []string) {
		model, params, times := setupRun()

		result, err := model.Ensemble(params, times, replicates)
		if err != nil {
			logrus.Fatalf("Ensemble failed: %v", err)
		}
		analytic, err := model.Mean(params, times)
		if err != nil {
			logrus.Fatalf("Mean evaluation failed: %v", err)
		}
		maxDev, err := result.MaxAbsDeviation(analytic)
		if err != nil {
			logrus.Fatalf("Deviation computation failed: %v", err)
		}

		for i, t := range result.Times {
			fmt.Printf("%g\t%g\t%g\t%g\n", t, result.Mean[i], result.StdDev[i], analytic[i])
		}
		logrus.Infof("Ensemble of %d replicates: max |empirical - analytic| = %.4f",
			result.Replicates, maxDev)
	},
}

// printSeries writes a time/value table to stdout.
func printSeries(times, values []float64) {
	for i, t := range times {
		fmt.Printf("%g\t%g\n", t, values[i])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, meanCmd, ensembleCmd} {
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for the simulation key")
		c.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().IntVar(&initialPopulation, "initial-population", 1, "Population the process starts from")
		c.Flags().Float64Var(&growthRate, "growth-rate", 0.1, "Logistic growth rate b")
		c.Flags().Float64Var(&carryingCapacity, "carrying-capacity", 50, "Carrying capacity k")
		c.Flags().Float64Var(&horizon, "horizon", sim.SuggestedHorizon, "End of the observation grid")
		c.Flags().IntVar(&points, "points", sim.SuggestedTimeCount, "Number of observation times")
		c.Flags().StringVar(&scenariosFile, "scenarios", "scenarios.yaml", "Path to a scenarios YAML file")
		c.Flags().StringVar(&scenarioName, "scenario", "", "Named preset to load instead of individual flags")
	}
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Birth-event trace level (none, events)")
	ensembleCmd.Flags().IntVar(&replicates, "replicates", 100, "Number of independent replicates")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(meanCmd)
	rootCmd.AddCommand(ensembleCmd)
}
