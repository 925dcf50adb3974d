// Package config loads layerlint's project configuration from a TOML file,
// following the same discovery conventions (explicit path, then walk up
// from the target looking for a well-known filename) used throughout the
// tool's ambient stack.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the default project configuration filename.
const ConfigFileName = ".layerlint.toml"

// OutputConfig controls where generated reports are written.
type OutputConfig struct {
	Directory string `toml:"directory" mapstructure:"directory"`
}

// ContractToml is the on-disk shape of one layering rule.
type ContractToml struct {
	Containers []string `toml:"containers"`
	Layers     []string `toml:"layers"`
}

// GraphToml configures where the declarative graph descriptor lives.
type GraphToml struct {
	Path string `toml:"path"`
}

// Config is the fully parsed project configuration.
type Config struct {
	Output    OutputConfig   `toml:"output"`
	Graph     GraphToml      `toml:"graph"`
	Contracts []ContractToml `toml:"contract"`

	// Exclude lists glob patterns (matched against full module names) for
	// modules to drop from the graph before analysis.
	Exclude []string `toml:"exclude"`
}

// Default returns a Config with the same defaults applied when no project
// configuration file is found.
func Default() *Config {
	return &Config{}
}

// Load reads and parses the TOML configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigWithTarget resolves the configuration to use for a run.
//
// If explicitPath is non-empty it is used directly. Otherwise, starting
// from target (a file or directory; the current directory if target is
// empty), LoadConfigWithTarget walks upward looking for ConfigFileName. If
// none is found, Default() is returned with a nil error: an absent config
// file is not itself an error, since every setting has a sensible default.
func LoadConfigWithTarget(explicitPath, target string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}

	dir := target
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Default(), nil
		}
		dir = cwd
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return Default(), nil
}
