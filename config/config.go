// Package config loads scenario parameters for an outbreak run.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/outbreak/agent"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps every out-of-range configuration value.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all scenario parameters.
type Config struct {
	Landscape LandscapeConfig `yaml:"landscape"`
	Timestep  TimestepConfig  `yaml:"timestep"`
	Seed      int64           `yaml:"seed"`
	Selection SelectionConfig `yaml:"selection"`
	Agent     AgentConfig     `yaml:"agent"`
	Output    OutputConfig    `yaml:"output"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// LandscapeConfig describes the grid. CellsFile, when set, replaces the
// all-active Rows×Columns grid with the cells read from that CSV.
type LandscapeConfig struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	CellLength float64 `yaml:"cell_length"` // metres per cell side
	CellsFile  string  `yaml:"cells_file"`
}

// TimestepConfig holds the simulated time and the timestep duration.
type TimestepConfig struct {
	Current int `yaml:"current"`
	Length  int `yaml:"length"` // years
}

// SelectionConfig holds epicenter selection knobs.
type SelectionConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // 0 = derived cap
}

// AgentConfig mirrors agent.Agent with the template written as its
// parameter-file name.
type AgentConfig struct {
	Name                    string  `yaml:"name"`
	DispersalRate           float64 `yaml:"dispersal_rate"`     // metres per year
	DispersalTemplate       string  `yaml:"dispersal_template"` // MaxRadius, 4N, 8N, 12N, 24N
	EpidemicThresh          float64 `yaml:"epidemic_thresh"`
	OutbreakEpicenterThresh float64 `yaml:"outbreak_epicenter_thresh"`
	OutbreakEpicenterCoeff  float64 `yaml:"outbreak_epicenter_coeff"`
	SeedEpicenter           bool    `yaml:"seed_epicenter"`
	SeedEpicenterMax        int     `yaml:"seed_epicenter_max"`
	SeedEpicenterCoeff      float64 `yaml:"seed_epicenter_coeff"`
	EpicenterNum            int     `yaml:"epicenter_num"`
}

// OutputConfig controls where results are written. Empty Dir disables output.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// DerivedConfig holds values computed from the loaded parameters.
type DerivedConfig struct {
	DispersalDistance float64
	Template          agent.DispersalTemplate
	Neighborhood      agent.Neighborhood
}

// Load reads configuration from a YAML file, using embedded defaults for
// missing values. If path is empty, only the defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Landscape.CellsFile == "" && (c.Landscape.Rows < 1 || c.Landscape.Columns < 1):
		return fmt.Errorf("%w: landscape must have at least one row and column, got %dx%d",
			ErrInvalid, c.Landscape.Rows, c.Landscape.Columns)
	case !(c.Landscape.CellLength > 0):
		return fmt.Errorf("%w: cell_length must be positive, got %v", ErrInvalid, c.Landscape.CellLength)
	case c.Timestep.Length < 1:
		return fmt.Errorf("%w: timestep length must be at least 1, got %d", ErrInvalid, c.Timestep.Length)
	case c.Selection.MaxAttempts < 0:
		return fmt.Errorf("%w: max_attempts cannot be negative, got %d", ErrInvalid, c.Selection.MaxAttempts)
	}
	return nil
}

func (c *Config) computeDerived() error {
	tpl, n, err := agent.ParseTemplate(c.Agent.DispersalTemplate)
	if err != nil {
		return fmt.Errorf("%w: dispersal_template: %w", ErrInvalid, err)
	}
	c.Derived.Template = tpl
	c.Derived.Neighborhood = n
	c.Derived.DispersalDistance = c.Agent.DispersalRate * float64(c.Timestep.Length)
	return nil
}

// NewAgent builds the agent described by c, with its dispersal kernel sized
// for the configured cell length and timestep, and validates it.
func (c *Config) NewAgent() (*agent.Agent, error) {
	a := c.Agent
	ag := &agent.Agent{
		Name:                    a.Name,
		DispersalRate:           a.DispersalRate,
		DispersalTemplate:       c.Derived.Template,
		Neighborhood:            c.Derived.Neighborhood,
		EpidemicThresh:          a.EpidemicThresh,
		OutbreakEpicenterThresh: a.OutbreakEpicenterThresh,
		OutbreakEpicenterCoeff:  a.OutbreakEpicenterCoeff,
		SeedEpicenter:           a.SeedEpicenter,
		SeedEpicenterMax:        a.SeedEpicenterMax,
		SeedEpicenterCoeff:      a.SeedEpicenterCoeff,
		EpicenterNum:            a.EpicenterNum,
	}
	if err := ag.BuildKernel(c.Landscape.CellLength, c.Timestep.Length); err != nil {
		return nil, err
	}
	if err := ag.Validate(); err != nil {
		return nil, err
	}
	return ag, nil
}

// WriteYAML saves the current config to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
