package telemetry

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed telemetry.yml
var defaultConfigData []byte

// Config is the root of the telemetry endpoints file. It lists every known
// simulator with the process names that identify it and the REST resources
// worth polling while it runs.
type Config struct {
	Sims []SimConfig `yaml:"sims" json:"sims"`
}

// SimConfig describes one simulator.
type SimConfig struct {
	Name      string     `yaml:"name" json:"name"`
	Exe       []string   `yaml:"exe" json:"exe"`
	Port      int        `yaml:"port" json:"port"`
	Endpoints []Endpoint `yaml:"endpoints" json:"endpoints"`
}

// Endpoint maps one REST resource to the snapshot key holding its payload.
type Endpoint struct {
	Key  string `yaml:"key" json:"key"`
	Path string `yaml:"path" json:"path"`
}

// LoadConfig reads and validates the YAML endpoints file. An empty path loads
// the embedded default table.
func LoadConfig(file string) (*Config, error) {
	data := defaultConfigData
	if file != "" {
		b, err := os.ReadFile(file) // #nosec G304 - path comes from the command line
		if err != nil {
			return nil, fmt.Errorf("read telemetry config %s: %w", file, err)
		}
		data = b
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse telemetry config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid telemetry config: %w", err)
	}
	return &cfg, nil
}

// Validate performs basic validation of required fields.
func (c *Config) Validate() error {
	// check that we have at least one sim
	if len(c.Sims) == 0 {
		return fmt.Errorf("at least one sim is required")
	}

	seen := map[string]bool{}
	for i, sim := range c.Sims {
		num := i + 1
		if sim.Name == "" {
			return fmt.Errorf("sim %d: name is required", num)
		}
		if seen[sim.Name] {
			return fmt.Errorf("sim %d: duplicate name %q", num, sim.Name)
		}
		seen[sim.Name] = true

		if len(sim.Exe) == 0 {
			return fmt.Errorf("sim %d: at least one exe name is required", num)
		}
		if sim.Port < 1 || sim.Port > 65535 {
			return fmt.Errorf("sim %d: port must be between 1 and 65535", num)
		}
		if len(sim.Endpoints) == 0 {
			return fmt.Errorf("sim %d: at least one endpoint is required", num)
		}

		keys := map[string]bool{}
		for j, ep := range sim.Endpoints {
			if ep.Key == "" {
				return fmt.Errorf("sim %d: endpoint %d: key is required", num, j+1)
			}
			if keys[ep.Key] {
				return fmt.Errorf("sim %d: endpoint %d: duplicate key %q", num, j+1, ep.Key)
			}
			keys[ep.Key] = true
			if !strings.HasPrefix(ep.Path, "/") {
				return fmt.Errorf("sim %d: endpoint %d: path must start with /", num, j+1)
			}
		}
	}
	return nil
}

// SimByName returns the configured simulator with the given name.
func (c *Config) SimByName(name string) (SimConfig, bool) {
	for _, sim := range c.Sims {
		if strings.EqualFold(sim.Name, name) {
			return sim, true
		}
	}
	return SimConfig{}, false
}
