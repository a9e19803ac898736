// Package config provides configuration management for the quarry CLI.
//
// Configuration is layered: built-in defaults, then quarry.yaml, then
// QUARRY_* environment variables, then command-line flags.
package config

import (
	sharedcfg "github.com/quarrylabs/quarry/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	MacrosDir    string               `koanf:"macros_dir"`
	ValidTo      string               `koanf:"valid_to"`
	Environment  string               `koanf:"environment"`
	Verbose      bool                 `koanf:"verbose"`
	OutputFormat string               `koanf:"output"`
	Environments map[string]EnvConfig `koanf:"environments"`
}

// EnvConfig holds environment-specific configuration overrides.
type EnvConfig struct {
	MacrosDir string `koanf:"macros_dir"`
	ValidTo   string `koanf:"valid_to"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultMacrosDir = sharedcfg.DefaultMacrosDir
	DefaultValidTo   = sharedcfg.DefaultValidTo
	DefaultEnv       = sharedcfg.DefaultEnv
	DefaultOutput    = sharedcfg.DefaultOutput
)
