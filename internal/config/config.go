package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexgrid/pkg/hex"
)

// DefaultGreeting is printed by the greet command when no config overrides it.
const DefaultGreeting = "Hello, world!"

// Config holds all demo configuration
type Config struct {
	Pairs    []PairConfig `yaml:"pairs"`
	Greeting string       `yaml:"greeting"`
}

// AxialConfig is a cell written as axial coordinates
type AxialConfig struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

// PairConfig names two cells whose distance is reported
type PairConfig struct {
	From AxialConfig `yaml:"from"`
	To   AxialConfig `yaml:"to"`
}

// Pair is a resolved PairConfig.
type Pair struct {
	From hex.Hex
	To   hex.Hex
}

// Default returns the built-in configuration: Hex(-3, 0) against Hex(-2, 1).
func Default() *Config {
	return &Config{
		Pairs: []PairConfig{
			{From: AxialConfig{Q: -3, R: 0}, To: AxialConfig{Q: -2, R: 1}},
		},
		Greeting: DefaultGreeting,
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	def := Default()
	if len(cfg.Pairs) == 0 {
		cfg.Pairs = def.Pairs
	}
	if cfg.Greeting == "" {
		cfg.Greeting = def.Greeting
	}

	return &cfg, nil
}

// Resolve builds the configured pairs, rejecting coordinates whose derived
// s component would overflow.
func (c *Config) Resolve() ([]Pair, error) {
	pairs := make([]Pair, 0, len(c.Pairs))
	for i, p := range c.Pairs {
		from, err := hex.NewChecked(p.From.Q, p.From.R)
		if err != nil {
			return nil, fmt.Errorf("pair %d from: %w", i, err)
		}
		to, err := hex.NewChecked(p.To.Q, p.To.R)
		if err != nil {
			return nil, fmt.Errorf("pair %d to: %w", i, err)
		}
		pairs = append(pairs, Pair{From: from, To: to})
	}
	return pairs, nil
}
