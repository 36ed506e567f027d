package trace

// TraceLevel controls the verbosity of trajectory tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures every birth event with its waiting time
	// and the propensity that produced it.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether records should be collected at all.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelEvents
}

// TrajectoryTrace collects birth event records during a simulation run.
type TrajectoryTrace struct {
	Config TraceConfig
	Births []BirthRecord
}

// NewTrajectoryTrace creates a TrajectoryTrace ready for recording.
func NewTrajectoryTrace(config TraceConfig) *TrajectoryTrace {
	return &TrajectoryTrace{
		Config: config,
		Births: make([]BirthRecord, 0),
	}
}

// RecordBirth appends a birth event record. No-op below TraceLevelEvents,
// so the recording call can stay unconditional in the simulation loop.
func (tt *TrajectoryTrace) RecordBirth(record BirthRecord) {
	if tt == nil || !tt.Config.Enabled() {
		return
	}
	tt.Births = append(tt.Births, record)
}
