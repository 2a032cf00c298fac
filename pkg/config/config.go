// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads semlint settings from a project file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	yaml "github.com/goccy/go-yaml"
	flag "github.com/spf13/pflag"

	"go-darwin.dev/semlint/pkg/lint/passes/largedatapass"
)

const (
	FlagConfig    = "config"
	FlagSizeLimit = largedatapass.OptionName
	FlagDisable   = "disable"
	FlagFormat    = "format"
	FlagJobs      = "jobs"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// FileNames are the config files looked up by Find, in order of preference.
var FileNames = []string{".semlint.yml", ".semlint.yaml", "semlint.toml"}

// Config represents a semlint config.
type Config struct {
	// LargeDataSizeMinLimit overrides the default size limit in bytes.
	LargeDataSizeMinLimit *uint64  `yaml:"large-data-size-min-limit,omitempty" toml:"large-data-size-min-limit"`
	Disable               []string `yaml:"disable,omitempty" toml:"disable"`
	Format                string   `yaml:"format,omitempty" toml:"format"`
	Jobs                  int      `yaml:"jobs,omitempty" toml:"jobs"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{Format: FormatText}
}

// ReadConfig reads a YAML config from r.
func ReadConfig(r io.Reader) (*Config, error) {
	config := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return config, config.Validate()
}

// ReadTOML reads a TOML config from r.
func ReadTOML(r io.Reader) (*Config, error) {
	config := Default()
	if _, err := toml.NewDecoder(r).Decode(config); err != nil {
		return nil, err
	}

	return config, config.Validate()
}

// Load reads the config file at path, choosing the syntax by extension.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s config file: %w", path, err)
	}
	defer f.Close()

	var config *Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		config, err = ReadTOML(f)
	} else {
		config, err = ReadConfig(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return config, nil
}

// Find looks for a config file in dir and its parents. It returns "" when
// there is none.
func Find(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Validate reports malformed settings.
func (c *Config) Validate() error {
	switch c.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative: %d", c.Jobs)
	}

	return nil
}

// Disabled reports whether rule was turned off.
func (c *Config) Disabled(rule string) bool {
	for _, d := range c.Disable {
		if d == rule {
			return true
		}
	}
	return false
}

// RegisterFlags adds the config flags to flags.
func RegisterFlags(flags *flag.FlagSet) {
	flags.String(FlagConfig, "", "config file (default: search "+strings.Join(FileNames, ", ")+")")
	flags.Uint64(FlagSizeLimit, 0, "size limit in bytes for "+largedatapass.Name+" (default: twice the target pointer width)")
	flags.StringSlice(FlagDisable, nil, "rules to disable")
	flags.String(FlagFormat, FormatText, "output format (text|json)")
	flags.Int(FlagJobs, 0, "max parallel units (0=GOMAXPROCS)")
}

// ConfigFromFlags loads the config file named by the config flag, or the one
// found from the working directory, and overlays the flags that were set.
func ConfigFromFlags(flags *flag.FlagSet) (*Config, error) {
	configFile, err := flags.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	if configFile == "" {
		if configFile, err = Find("."); err != nil {
			return nil, err
		}
	}

	config := Default()
	if configFile != "" {
		if config, err = Load(configFile); err != nil {
			return nil, err
		}
	}

	if flags.Changed(FlagSizeLimit) {
		limit, err := flags.GetUint64(FlagSizeLimit)
		if err != nil {
			return nil, err
		}
		config.LargeDataSizeMinLimit = &limit
	}
	if flags.Changed(FlagDisable) {
		disable, err := flags.GetStringSlice(FlagDisable)
		if err != nil {
			return nil, err
		}
		config.Disable = append(config.Disable, disable...)
	}
	if flags.Changed(FlagFormat) || config.Format == "" {
		if config.Format, err = flags.GetString(FlagFormat); err != nil {
			return nil, err
		}
	}
	if flags.Changed(FlagJobs) {
		if config.Jobs, err = flags.GetInt(FlagJobs); err != nil {
			return nil, err
		}
	}

	return config, config.Validate()
}
