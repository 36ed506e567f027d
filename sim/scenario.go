package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named preset bundling everything needed for one run:
// the model's initial population, the parameter pair, and the observation
// grid. Zero Points falls back to the suggested grid shape.
type Scenario struct {
	InitialPopulation int     `yaml:"initial_population"`
	GrowthRate        float64 `yaml:"growth_rate"`
	CarryingCapacity  float64 `yaml:"carrying_capacity"`
	Horizon           float64 `yaml:"horizon"`
	Points            int     `yaml:"points"`
	Seed              int64   `yaml:"seed"`
}

// ScenarioFile is the full structure of a scenarios YAML document.
type ScenarioFile struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Validate checks a scenario the same way the model facade would, so a bad
// preset fails at load time rather than mid-run.
func (s Scenario) Validate() error {
	if s.InitialPopulation < 0 {
		return fmt.Errorf("initial_population must be non-negative, got %d: %w",
			s.InitialPopulation, ErrValidation)
	}
	if err := s.Parameters().Validate(); err != nil {
		return err
	}
	if s.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %v: %w", s.Horizon, ErrValidation)
	}
	if s.Points < 0 {
		return fmt.Errorf("points must be non-negative, got %d: %w", s.Points, ErrValidation)
	}
	return nil
}

// Parameters returns the scenario's (growth rate, carrying capacity) pair.
func (s Scenario) Parameters() Parameters {
	return Parameters{s.GrowthRate, s.CarryingCapacity}
}

// Times returns the scenario's observation grid. Horizon and Points of zero
// fall back to the suggested defaults.
func (s Scenario) Times() []float64 {
	horizon := s.Horizon
	if horizon == 0 {
		horizon = SuggestedHorizon
	}
	points := s.Points
	if points == 0 {
		points = SuggestedTimeCount
	}
	return Linspace(0, horizon, points)
}

// LoadScenarios reads and validates a scenarios YAML file. Unknown fields are
// rejected so preset typos fail loudly instead of silently defaulting.
func LoadScenarios(path string) (map[string]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios file: %w", err)
	}

	var file ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing scenarios file %s: %w", path, err)
	}

	for name, sc := range file.Scenarios {
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", name, err)
		}
	}
	return file.Scenarios, nil
}
