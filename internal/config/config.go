// Package config holds the viewer configuration: catalog source,
// animation speed and frame rate, display toggles, and audio. Loaded from
// YAML with defaults filled in first, so partial files work.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/exosim/internal/simclock"
)

const (
	DefaultSpeed      = 1.0
	DefaultFPS        = 30
	DefaultSVGSize    = 800
	DefaultPathPoints = 100
)

type Config struct {
	Catalog    string  `yaml:"catalog"` // path to CSV/JSON; empty = built-in demo
	Speed      float64 `yaml:"speed"`   // simulated days per real second
	FPS        int     `yaml:"fps"`
	ShowOrbits bool    `yaml:"show_orbits"`
	ShowHZ     bool    `yaml:"show_hz"`
	ShowLabels bool    `yaml:"show_labels"`
	Audio      bool    `yaml:"audio"`
	SVGSize    int     `yaml:"svg_size"`
	PathPoints int     `yaml:"path_points"`
	DataDir    string  `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Speed:      DefaultSpeed,
		FPS:        DefaultFPS,
		ShowOrbits: true,
		ShowHZ:     true,
		ShowLabels: true,
		SVGSize:    DefaultSVGSize,
		PathPoints: DefaultPathPoints,
		DataDir:    ".exosim",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.clamp()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// clamp keeps loaded values inside the ranges the rest of the program
// assumes.
func (c *Config) clamp() {
	if c.Speed < simclock.MinSpeed {
		c.Speed = simclock.MinSpeed
	}
	if c.Speed > simclock.MaxSpeed {
		c.Speed = simclock.MaxSpeed
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.SVGSize <= 0 {
		c.SVGSize = DefaultSVGSize
	}
	if c.PathPoints <= 0 {
		c.PathPoints = DefaultPathPoints
	}
}
