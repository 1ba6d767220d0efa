// Package config loads game configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"darkdungeon/pkg/game/world"
)

type Config struct {
	Buckets uint32        `toml:"buckets"` // bucket count shared by every map's table
	Maps    []MapConfig   `toml:"maps"`
	Logging LoggingConfig `toml:"logging"`
}

type MapConfig struct {
	Name   string `toml:"name"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "text"
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	cfg := &Config{
		Buckets: 50,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
	for _, spec := range world.DefaultMapSpecs() {
		cfg.Maps = append(cfg.Maps, MapConfig{Name: spec.Name, Width: spec.Width, Height: spec.Height})
	}
	return cfg
}

// Load reads path over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()

	// toml reuses existing slice elements, so configured maps must not be
	// decoded over the default ones.
	defaultMaps := cfg.Maps
	cfg.Maps = nil
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if !md.IsDefined("maps") {
		cfg.Maps = defaultMaps
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants the spatial layer relies on
func (c *Config) Validate() error {
	if c.Buckets == 0 {
		return errors.New("buckets must be at least 1")
	}
	if len(c.Maps) == 0 {
		return errors.New("at least one map is required")
	}
	for i, m := range c.Maps {
		if m.Width < 1 || m.Height < 1 {
			return fmt.Errorf("map %d (%q): dimensions %dx%d must be positive", i, m.Name, m.Width, m.Height)
		}
	}
	return nil
}

// MapSpecs converts the configured maps for world.NewAtlas
func (c *Config) MapSpecs() []world.MapSpec {
	specs := make([]world.MapSpec, len(c.Maps))
	for i, m := range c.Maps {
		specs[i] = world.MapSpec{Name: m.Name, Width: m.Width, Height: m.Height}
	}
	return specs
}
