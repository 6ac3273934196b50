// Package config holds the settings shared by the sprite extraction CLI and the
// MCP server.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for sprite extraction.
// Fields may be loaded from a YAML file and overridden by command-line flags.
type Config struct {
	Debug bool `yaml:"debug"`

	// Output layout
	OutputDir     string `yaml:"output_dir"`
	NamePattern   string `yaml:"name_pattern"`   // fmt pattern taking the source base name and sprite index
	WriteCleaned  bool   `yaml:"write_cleaned"`  // also save the source image with sprites erased
	CleanedSuffix string `yaml:"cleaned_suffix"` // appended to the base name of the cleaned image
	WriteManifest bool   `yaml:"write_manifest"` // save a YAML manifest of sprite bounds

	// Batch processing
	Workers int `yaml:"workers"`

	// PreviewScale resizes base64 sprite previews returned by the MCP server.
	PreviewScale float64 `yaml:"preview_scale"`
}

const (
	defaultNamePattern   = "%s_%03d.png"
	defaultCleanedSuffix = "_cleaned"
	maxPreviewScale      = 16
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		OutputDir:     "sprites",
		NamePattern:   defaultNamePattern,
		WriteCleaned:  true,
		CleanedSuffix: defaultCleanedSuffix,
		WriteManifest: false,
		Workers:       runtime.NumCPU(),
		PreviewScale:  1.0,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.PreviewScale <= 0 || c.PreviewScale > maxPreviewScale {
		c.PreviewScale = 1.0
	}
	if c.CleanedSuffix == "" {
		c.CleanedSuffix = defaultCleanedSuffix
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.NamePattern == "" {
		c.NamePattern = defaultNamePattern
	}
	if !validNamePattern(c.NamePattern) {
		bad := c.NamePattern
		c.NamePattern = defaultNamePattern
		return fmt.Errorf("invalid name_pattern %q: want %%s then an integer verb, and a .png suffix", bad)
	}
	return nil
}

// validNamePattern reports whether pattern formats a base name and an index,
// in that order, into distinct .png file names.
func validNamePattern(pattern string) bool {
	first := fmt.Sprintf(pattern, "x", 0)
	second := fmt.Sprintf(pattern, "x", 1)
	return !strings.Contains(first, "%!") &&
		strings.HasSuffix(first, ".png") &&
		first != second
}

// SpriteName formats the file name of the index-th sprite cut from base.
func (c *Config) SpriteName(base string, index int) string {
	return fmt.Sprintf(c.NamePattern, base, index)
}

// CleanedName returns the file name for the erased copy of base.
func (c *Config) CleanedName(base string) string {
	return base + c.CleanedSuffix + ".png"
}

// Load reads configuration from the given YAML file path. If the file does not
// exist it returns DefaultConfig(). Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in YAML format.
// Values are normalized by Validate first; a config that fails validation is
// not written.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
