// Package config loads picker defaults from the environment and an optional
// .almanac config file.
package config

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/label"
	"tableflip.dev/almanac/pkg/timeutil"
)

// Config carries the defaults applied when flags are not given.
type Config struct {
	Months int
	Locale string
	Month  time.Time
	Range  daterange.Range
}

// Load reads .almanac.yaml from the home directory, the working directory,
// or $ALMANAC_CONFIG_PATH, with ALMANAC_* environment overrides. A missing
// config file is fine; a malformed one is not.
func Load() (*Config, error) {
	viper.SetDefault("months", 1)
	viper.SetDefault("locale", label.DefaultLocale)
	viper.SetConfigName(".almanac") // .yaml is implicit
	viper.SetEnvPrefix("ALMANAC")
	viper.AutomaticEnv()

	if override := os.Getenv("ALMANAC_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Months: viper.GetInt("months"),
		Locale: viper.GetString("locale"),
	}
	if cfg.Months < 1 {
		cfg.Months = 1
	}

	if raw := viper.GetString("month"); raw != "" {
		month, err := timeutil.ParseMonth(raw)
		if err != nil {
			return nil, fmt.Errorf("config month: %w", err)
		}
		cfg.Month = month
	}
	if raw := viper.GetString("min"); raw != "" {
		min, err := timeutil.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("config min: %w", err)
		}
		cfg.Range.Min = min
	}
	if raw := viper.GetString("max"); raw != "" {
		max, err := timeutil.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("config max: %w", err)
		}
		cfg.Range.Max = max
	}

	return cfg, nil
}
