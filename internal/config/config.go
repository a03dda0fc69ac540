// SPDX-License-Identifier: EPL-2.0

// Package config loads the audcut command configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is the complete command configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// OutputConfig says where exports go. Dir "-" writes to stdout.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Filename string `yaml:"filename"`
}

// RenderConfig selects the graph the selection is rendered through.
// A zero SampleRate keeps the input rate.
type RenderConfig struct {
	SampleRate int  `yaml:"sample_rate"`
	Mono       bool `yaml:"mono"`
	Quantum    int  `yaml:"quantum"` // frames
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:      ".",
			Filename: "cut-audio.wav",
		},
		Render: RenderConfig{
			Quantum: 128,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Namespace: "audcut",
		},
	}
}

// Load reads path over the defaults and validates the result. Keys missing
// from the file keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics config: %w", err)
	}

	return nil
}

func (o *OutputConfig) Validate() error {
	if o.Dir == "" {
		return fmt.Errorf("%w: dir cannot be empty", ErrInvalid)
	}

	if strings.ContainsAny(o.Filename, `/\`) {
		return fmt.Errorf("%w: filename must not contain a path separator, got %q", ErrInvalid, o.Filename)
	}

	return nil
}

func (r *RenderConfig) Validate() error {
	if r.SampleRate < 0 || r.SampleRate > 768000 {
		return fmt.Errorf("%w: sample_rate must be between 0 and 768000, got %d", ErrInvalid, r.SampleRate)
	}

	if r.Quantum < 1 {
		return fmt.Errorf("%w: quantum must be at least 1 frame, got %d", ErrInvalid, r.Quantum)
	}

	return nil
}

func (l *LoggingConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: level must be one of [debug, info, warn, error], got '%s'", ErrInvalid, l.Level)
	}

	switch l.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w: format must be 'json' or 'text', got '%s'", ErrInvalid, l.Format)
	}

	return nil
}

func (m *MetricsConfig) Validate() error {
	if m.Enabled && m.Namespace == "" {
		return fmt.Errorf("%w: namespace cannot be empty when metrics are enabled", ErrInvalid)
	}

	return nil
}
