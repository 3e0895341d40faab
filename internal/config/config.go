// Package config provides configuration types and defaults for the catalog.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration options for the catalog.
type Config struct {
	// CatalogDir is the root directory resources live under.
	CatalogDir string `mapstructure:"catalog_dir"`

	// Collection is the category directory resources are grouped by,
	// e.g. "domains".
	Collection string `mapstructure:"collection"`

	// WatchDebounce bounds how long bursts of file changes are coalesced
	// before the watcher emits a notification.
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`

	// Tracing enables span export to stdout for store operations.
	Tracing bool `mapstructure:"tracing"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		CatalogDir:    ".",
		Collection:    "domains",
		WatchDebounce: 250 * time.Millisecond,
		LogLevel:      "info",
	}
}

// Load reads configuration from the given file, or from catalog.yaml in the
// working directory when path is empty, layered over defaults. Environment
// variables prefixed with CATALOG_ override file values.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("catalog_dir", def.CatalogDir)
	v.SetDefault("collection", def.Collection)
	v.SetDefault("watch_debounce", def.WatchDebounce)
	v.SetDefault("tracing", def.Tracing)
	v.SetDefault("log_level", def.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("catalog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.CatalogDir == "" {
		return fmt.Errorf("catalog_dir is required")
	}
	if c.Collection == "" {
		return fmt.Errorf("collection is required")
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error")
	}
	return nil
}
