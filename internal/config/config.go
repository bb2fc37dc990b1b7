// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/spf13/pflag"

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "ENVAR_"

// Supported values of [Output.Format].
const (
	FormatJSON   = "json"
	FormatDotenv = "dotenv"
)

// StructuredConfig is the top-level configuration container for the envar
// command. It is populated by merging defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// Manifest locates the variable manifest consumed by the check command.
	Manifest Manifest `envPrefix:"MANIFEST_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Output controls how resolved values are printed.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via ENVAR_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Manifest holds the location of the variable manifest.
type Manifest struct {
	// Path is a JSON or YAML manifest file.
	// Env: ENVAR_MANIFEST_PATH
	Path string `env:"PATH" validate:"omitempty,file"`
}

// Log holds logger settings.
type Log struct {
	// Level is the minimum level written to stderr.
	// Env: ENVAR_LOG_LEVEL
	Level string `env:"LEVEL" validate:"oneof=trace debug info warn error disabled"`
}

// Output controls how resolved values are printed.
type Output struct {
	// Format is either "json" (ordered object) or "dotenv" (KEY=value lines).
	// Env: ENVAR_OUTPUT_FORMAT
	Format string `env:"FORMAT" validate:"oneof=json dotenv"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Log:    Log{Level: "info"},
		Output: Output{Format: FormatJSON},
	}
}

// GetStructuredConfig loads, merges, and validates the command configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags bound with [BindFlags]
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

// BindFlags registers the configuration flags on fs and returns the config
// they populate once fs is parsed.
//
// Flags:
//
//	-m/--manifest   manifest file path
//	--log-level     log level (trace, debug, info, warn, error, disabled)
//	-o/--format     output format (json, dotenv)
//	-c/--config     JSON config file path
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Manifest.Path, "manifest", "m", "", "Manifest file path (JSON or YAML)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
	fs.StringVarP(&cfg.Output.Format, "format", "o", "", "Output format (json, dotenv)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
