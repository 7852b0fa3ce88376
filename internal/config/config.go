// Package config provides Viper-based configuration loading for the
// hero factory.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig holds the locations of the hero-creation content tables.
type ContentConfig struct {
	// ClassesDir is the directory of per-class YAML definition files.
	ClassesDir string `mapstructure:"classes_dir"`
	// SpecsDir is the directory of per-specialization YAML definition files.
	SpecsDir string `mapstructure:"specs_dir"`
	// BloodlinesFile is the single-file bloodline table.
	BloodlinesFile string `mapstructure:"bloodlines_file"`
	// TalentsFile is the single-file talent tree table.
	TalentsFile string `mapstructure:"talents_file"`
	// WorldFile is the optional world config holding player starting
	// stats. Stat names are case-sensitive, so the file is parsed by
	// the ruleset loader rather than through Viper (which lowercases
	// keys).
	WorldFile string `mapstructure:"world_file"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.ClassesDir == "" {
		errs = append(errs, "content.classes_dir must not be empty")
	}
	if c.SpecsDir == "" {
		errs = append(errs, "content.specs_dir must not be empty")
	}
	if c.BloodlinesFile == "" {
		errs = append(errs, "content.bloodlines_file must not be empty")
	}
	if c.TalentsFile == "" {
		errs = append(errs, "content.talents_file must not be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with HEROFORGE_ prefix
	v.SetEnvPrefix("HEROFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
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

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
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
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("content.classes_dir", "content/classes")
	v.SetDefault("content.specs_dir", "content/specializations")
	v.SetDefault("content.bloodlines_file", "content/bloodlines.yaml")
	v.SetDefault("content.talents_file", "content/talents.yaml")
	v.SetDefault("content.world_file", "content/world.yaml")
}
