// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles openapi2zod project configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

const (
	// FileName is the name of the project configuration file.
	FileName = ".openapi2zod.yaml"
	// EnvPrefix prefixes every environment variable read into a Config.
	EnvPrefix = "OPENAPI2ZOD_"
	// DefaultTarget is used when no target is configured.
	DefaultTarget = "zod"
)

var (
	// ErrUnsupportedVersion indicates a config file written for another format version.
	ErrUnsupportedVersion = errors.New("unsupported config version")
	// ErrUnknownTarget indicates a target no translator is registered for.
	ErrUnknownTarget = errors.New("unknown target")
)

// Targets lists the accepted values of Config.Target.
var Targets = []string{"zod", "jsonschema"}

// Config represents the .openapi2zod.yaml project configuration file.
type Config struct {
	Version       int    `yaml:"version"`
	Input         string `yaml:"input,omitempty" env:"INPUT"`
	Output        string `yaml:"output,omitempty" env:"OUTPUT"`
	Target        string `yaml:"target,omitempty" env:"TARGET"`
	IntegerBounds bool   `yaml:"integerBounds,omitempty" env:"INTEGER_BOUNDS"`
	Strict        bool   `yaml:"strict,omitempty" env:"STRICT"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Target:  DefaultTarget,
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
// An empty target is accepted and means DefaultTarget.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}
	if c.Target != "" && !slices.Contains(Targets, c.Target) {
		return fmt.Errorf("%w %q (available: %s)", ErrUnknownTarget, c.Target, strings.Join(Targets, ", "))
	}
	return nil
}

// ApplyEnv overlays the OPENAPI2ZOD_* variables found in environ.
// Fields without a matching variable keep their value. A nil environ holds
// no variables.
func (c *Config) ApplyEnv(environ map[string]string) error {
	if environ == nil {
		environ = map[string]string{}
	}
	if err := env.ParseWithOptions(c, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// Environ merges the variables of the given dotenv files with environ
// ("KEY=value" pairs, as returned by os.Environ). Variables from environ win.
// Missing dotenv files are skipped.
func Environ(environ []string, dotenv ...string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, name := range dotenv {
		m, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		maps.Copy(vars, m)
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars, nil
}

// Resolve builds the effective configuration: defaults, then the file at path,
// then environment variables. A missing file is an error only when required.
func Resolve(path string, required bool, environ map[string]string) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		switch {
		case err == nil:
			cfg = loaded
			if cfg.Target == "" {
				cfg.Target = DefaultTarget
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(environ); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
