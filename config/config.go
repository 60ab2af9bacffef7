// Package config loads blockfall settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Seed of the piece generator. Zero picks a random seed.
	Seed   uint64 `yaml:"seed"`
	Debug  bool   `yaml:"debug"`
	Game   Game   `yaml:"game"`
	Window Window `yaml:"window"`
}

type Game struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	GravityTicks int           `yaml:"gravity_ticks"`
	ClearDelay   int           `yaml:"clear_delay"`
	Preview      int           `yaml:"preview"`
	Tick         time.Duration `yaml:"tick"`
}

type Window struct {
	Title    string `yaml:"title"`
	CellSize int    `yaml:"cell_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := tetris.DefaultOptions()
	return Config{
		Game: Game{
			Width:        opts.Width,
			Height:       opts.Height,
			GravityTicks: opts.GravityTicks,
			ClearDelay:   opts.ClearDelay,
			Preview:      opts.PreviewLength,
			Tick:         loop.DefaultStep,
		},
		Window: Window{
			Title:    "blockfall",
			CellSize: 28,
		},
	}
}

// Options converts the game section into session options.
func (c Config) Options() tetris.Options {
	return tetris.Options{
		Width:         c.Game.Width,
		Height:        c.Game.Height,
		GravityTicks:  c.Game.GravityTicks,
		ClearDelay:    c.Game.ClearDelay,
		PreviewLength: c.Game.Preview,
	}
}

func (c Config) Validate() error {
	var errs []error
	if err := c.Options().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Game.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick %v must be positive", c.Game.Tick))
	}
	if c.Window.CellSize < 1 {
		errs = append(errs, fmt.Errorf("cell size %d must be positive", c.Window.CellSize))
	}
	return errors.Join(errs...)
}

// Parse decodes YAML on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns the defaults when path is empty.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Rand returns the piece generator for this configuration and the seed it
// was built from. A zero seed is replaced by a random one.
func (c Config) Rand() (*rand.Rand, uint64) {
	seed := c.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
