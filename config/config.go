// Package config loads the YAML run configuration of the pressure CLI.
//
// Loading starts from Default(), decodes the file over it with unknown
// fields rejected, then validates the result:
//
//	start: AA
//	undirected: false
//	allow_unreachable: false
//	workers: 4
//	symmetry_reduction: true
//	metrics_file: /var/lib/node_exporter/pressure.prom
//	log:
//	  level: info
//	  format: text
//	scenarios:
//	  - name: single
//	    actors: 1
//	    budget: 30
//	  - name: dual
//	    actors: 2
//	    budget: 26
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value that fails validation.
var ErrInvalid = errors.New("config: invalid value")

// Scenario is one search to run.
type Scenario struct {
	Name   string `yaml:"name"`
	Actors int    `yaml:"actors"`
	Budget uint32 `yaml:"budget"`
}

// Log configures the CLI logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the full run configuration.
type Config struct {
	Start             string     `yaml:"start"`
	Undirected        bool       `yaml:"undirected"`
	AllowUnreachable  bool       `yaml:"allow_unreachable"`
	Workers           int        `yaml:"workers"`
	SymmetryReduction bool       `yaml:"symmetry_reduction"`
	MetricsFile       string     `yaml:"metrics_file"`
	Log               Log        `yaml:"log"`
	Scenarios         []Scenario `yaml:"scenarios"`
}

// Default returns the configuration of the two reference scenarios.
func Default() Config {
	return Config{
		Start:   "AA",
		Workers: 1,
		Log:     Log{Level: "info", Format: "text"},
		Scenarios: []Scenario{
			{Name: "single", Actors: 1, Budget: 30},
			{Name: "dual", Actors: 2, Budget: 26},
		},
	}
}

// Load reads the YAML file at path over Default. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r over Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field domains.
func (c Config) Validate() error {
	if c.Start == "" {
		return fmt.Errorf("%w: start is empty", ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d", ErrInvalid, c.Workers)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level=%q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format=%q", ErrInvalid, c.Log.Format)
	}
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalid)
	}
	seen := make(map[string]struct{}, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("%w: scenarios[%d].name is empty", ErrInvalid, i)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: duplicate scenario %q", ErrInvalid, s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.Actors != 1 && s.Actors != 2 {
			return fmt.Errorf("%w: scenario %q actors=%d (want 1 or 2)", ErrInvalid, s.Name, s.Actors)
		}
	}

	return nil
}
