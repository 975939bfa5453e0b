// Package config provides Viper-based configuration loading for the h3tc
// command-line tools.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConvertConfig holds conversion defaults the CLI applies when flags are
// omitted.
type ConvertConfig struct {
	// DefaultTarget is the output format used when -to is not given:
	// "sod", "hota", or "hota18".
	DefaultTarget string `mapstructure:"default_target"`
	// LegacyPadding pads SOD output to 183 columns, byte-compatible with
	// files the original game editor writes.
	LegacyPadding bool `mapstructure:"legacy_padding"`
	// PackName overrides the pack name applied on legacy-to-extended
	// upgrades; empty means "use the input file stem".
	PackName string `mapstructure:"pack_name"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level tool configuration.
type Config struct {
	Convert ConvertConfig `mapstructure:"convert"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateConvert(c.Convert); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateConvert(c ConvertConfig) error {
	validTargets := map[string]bool{"": true, "sod": true, "hota": true, "hota18": true}
	if !validTargets[c.DefaultTarget] {
		return fmt.Errorf("convert.default_target must be one of [sod, hota, hota18], got %q", c.DefaultTarget)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path yields the
// defaults (still subject to environment overrides).
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with H3TC_ prefix
	v.SetEnvPrefix("H3TC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	if v == nil {
		return Config{}, errors.New("nil viper instance")
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("convert.default_target", "")
	v.SetDefault("convert.legacy_padding", false)
	v.SetDefault("convert.pack_name", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
