// Package config loads host-integration settings for the Scurry shell.
// Gameplay tuning (speeds, radii, scoring) is compiled into the game
// package and deliberately not configurable here.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every host-facing setting.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Game      GameConfig      `yaml:"game"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// AudioConfig holds sound output settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // master volume, 0..1
}

// TelemetryConfig controls the run-history export.
type TelemetryConfig struct {
	Enabled   bool   `yaml:"enabled"`
	OutputDir string `yaml:"output_dir"`
}

// GameConfig holds per-session simulation settings.
type GameConfig struct {
	Seed uint64 `yaml:"seed"` // 0 = derive from the clock at startup
}

var global *Config

// Init loads the configuration and installs it as the global instance.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is Init that panics on failure, for use in main.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was never called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load parses the embedded defaults, then overlays the user file at path if
// one is given. Fields absent from the user file keep their default values.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.Audio.Volume < 0 {
		cfg.Audio.Volume = 0
	}
	if cfg.Audio.Volume > 1 {
		cfg.Audio.Volume = 1
	}

	return cfg, nil
}

// WriteYAML writes the effective configuration to a YAML file.
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
