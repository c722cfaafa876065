package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTolerance is the convergence tolerance applied when a scenario
// file leaves it unset.
const DefaultTolerance = 1e-4

// DefaultIterations is the outer-iteration budget applied when a
// scenario file leaves it unset.
const DefaultIterations = 100

// Load reads a simulation scenario from a YAML file.
func Load(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var cfg SimulationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// LoadProject loads a simulation scenario from a project directory.
// It looks for room.yaml in the given directory.
func LoadProject(projectDir string) (*SimulationConfig, error) {
	return Load(filepath.Join(projectDir, "room.yaml"))
}

// ApplyDefaults fills unset optional fields with their documented
// defaults: laminar closure, 100 iterations, 1e-4 tolerance.
func (c *SimulationConfig) ApplyDefaults() {
	if c.Turbulence == "" {
		c.Turbulence = TurbulenceLaminar
	}
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
}
