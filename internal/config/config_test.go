// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		modify   func(*Config)
		errorMsg string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "stdout output", modify: func(c *Config) { c.Output.Dir = "-" }},
		{name: "resample and mono", modify: func(c *Config) {
			c.Render.SampleRate = 22050
			c.Render.Mono = true
		}},
		{name: "empty dir", modify: func(c *Config) { c.Output.Dir = "" }, errorMsg: "dir cannot be empty"},
		{name: "filename with separator", modify: func(c *Config) { c.Output.Filename = "a/b.wav" }, errorMsg: "path separator"},
		{name: "negative sample rate", modify: func(c *Config) { c.Render.SampleRate = -1 }, errorMsg: "sample_rate"},
		{name: "zero quantum", modify: func(c *Config) { c.Render.Quantum = 0 }, errorMsg: "quantum"},
		{name: "unknown level", modify: func(c *Config) { c.Logging.Level = "trace" }, errorMsg: "level must be one of"},
		{name: "unknown format", modify: func(c *Config) { c.Logging.Format = "xml" }, errorMsg: "format must be"},
		{name: "metrics without namespace", modify: func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Namespace = ""
		}, errorMsg: "namespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.errorMsg == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}

			if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("Validate() error = %v, want one containing %q", err, tt.errorMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "audcut.yaml")
	content := `
output:
  dir: /srv/clips
render:
  sample_rate: 16000
  mono: true
logging:
  level: debug
  format: json
metrics:
  enabled: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Dir != "/srv/clips" || cfg.Render.SampleRate != 16000 || !cfg.Render.Mono {
		t.Errorf("Load() = %+v, values from the file are missing", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" || !cfg.Metrics.Enabled {
		t.Errorf("Load() logging/metrics = %+v %+v", cfg.Logging, cfg.Metrics)
	}

	// Keys absent from the file keep their defaults.
	if cfg.Output.Filename != "cut-audio.wav" || cfg.Render.Quantum != 128 || cfg.Metrics.Namespace != "audcut" {
		t.Errorf("Load() did not keep defaults: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("render: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load(broken) error = %v, want parse failure", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("logging:\n  level: loud\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(invalid) error = %v, want ErrInvalid", err)
	}
}
