// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"

	"github.com/ik5/streamfmt/asbd"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config file
// location.
const EnvPath = "STREAMFMT_CONFIG"

// DefaultPath is used when neither a flag nor EnvPath names a file.
const DefaultPath = "streamfmt.yaml"

// Config represents the CLI configuration
type Config struct {
	// Descriptor used when Format is empty or malformed
	DefaultFormat string `yaml:"default_format"`

	// Preferred stream format, in descriptor notation
	Format string `yaml:"format,omitempty"`

	// Descriptors ranked by "rank" when no arguments are given
	Candidates []string `yaml:"candidates,omitempty"`

	Log LogConfig `yaml:"log"`
}

// LogConfig represents logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultFormat: "LEI16@44100,2",
		Candidates:    []string{},
		Log: LogConfig{
			Level:  "info",
			Pretty: false,
		},
	}
}

// Path picks the config file location: flag first, then EnvPath, then
// DefaultPath.
func Path(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that default_format and every candidate decode. Format
// is left alone so a bad value can fall back to DefaultFormat at use time.
func (c *Config) Validate() error {
	if _, err := asbd.Decode(c.DefaultFormat); err != nil {
		return fmt.Errorf("invalid default_format: %w", err)
	}

	for i, text := range c.Candidates {
		if _, err := asbd.Decode(text); err != nil {
			return fmt.Errorf("invalid candidates[%d]: %w", i, err)
		}
	}

	return nil
}

// Fallback returns the decoded DefaultFormat, or the zero descriptor when it
// does not decode.
func (c *Config) Fallback() asbd.Descriptor {
	d, _ := asbd.Decode(c.DefaultFormat)
	return d
}

// CandidateDescriptors decodes every candidate, stopping at the first
// malformed one.
func (c *Config) CandidateDescriptors() ([]asbd.Descriptor, error) {
	out := make([]asbd.Descriptor, 0, len(c.Candidates))
	for i, text := range c.Candidates {
		d, err := asbd.Decode(text)
		if err != nil {
			return nil, fmt.Errorf("invalid candidates[%d]: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}
