package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fluidlab/internal/fluid"
)

const (
	DefaultWidth    = 10
	DefaultHeight   = 10
	DefaultDt       = 0.016
	DefaultDuration = 10.0
	DefaultRate     = 15.0
	DefaultGain     = 2.0
	DefaultMinSpeed = 0.5
	DefaultMaxSpeed = 10.0
)

type Config struct {
	Width    int          `yaml:"width"`
	Height   int          `yaml:"height"`
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	Rate     float64      `yaml:"rate"`
	Sweeps   int          `yaml:"sweeps"`
	Substeps int          `yaml:"substeps"`
	Seed     int64        `yaml:"seed"`
	Init     string       `yaml:"init"`
	Spike    SpikeConfig  `yaml:"spike"`
	Random   RandomConfig `yaml:"random"`
	// Gain scales screen-space pointer deltas into grid-space velocity
	// when the live view injects a perturbation.
	Gain float64 `yaml:"gain"`
}

type SpikeConfig struct {
	X       int     `yaml:"x"`
	Y       int     `yaml:"y"`
	VX      float64 `yaml:"vx"`
	VY      float64 `yaml:"vy"`
	Density float64 `yaml:"density"`
}

type RandomConfig struct {
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Rate:     DefaultRate,
		Sweeps:   fluid.DefaultSweeps,
		Substeps: fluid.DefaultSubsteps,
		Init:     "spike",
		Spike:    SpikeConfig{X: 4, Y: 4, VX: 20, VY: 20},
		Random:   RandomConfig{MinSpeed: DefaultMinSpeed, MaxSpeed: DefaultMaxSpeed},
		Gain:     DefaultGain,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Seeder builds the grid seeder selected by the init mode.
func (c *Config) Seeder() (fluid.Seeder, error) {
	switch c.Init {
	case "", "zero":
		return fluid.ZeroSeed(), nil
	case "spike":
		return fluid.SpikeSeed(c.Spike.X, c.Spike.Y,
			fluid.Vec2{X: c.Spike.VX, Y: c.Spike.VY}, c.Spike.Density), nil
	case "random":
		return fluid.RandomSeed(fluid.NewRand(c.Seed),
			c.Random.MinSpeed, c.Random.MaxSpeed), nil
	default:
		return nil, fmt.Errorf("unknown init mode: %s", c.Init)
	}
}

// NewGrid constructs a grid configured with the solver tunables.
func (c *Config) NewGrid() (*fluid.Grid, error) {
	seed, err := c.Seeder()
	if err != nil {
		return nil, err
	}
	g := fluid.New(c.Width, c.Height, seed)
	if c.Rate > 0 {
		g.Rate = c.Rate
	}
	if c.Sweeps > 0 {
		g.Sweeps = c.Sweeps
	}
	if c.Substeps > 0 {
		g.Substeps = c.Substeps
	}
	return g, nil
}
