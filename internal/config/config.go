// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NeyGuaiume2/sdisc/internal/logging"
	"github.com/NeyGuaiume2/sdisc/internal/scoring"
)

// Environment variables consulted by FillFromEnv
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvDataDir     = "DISC_DATA_DIR"
	EnvTierScheme  = "DISC_TIER_SCHEME"
)

// Defaults applied by MergeWithDefaults
const (
	DefaultPort            = 8080
	DefaultResultCacheSize = 256
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	DataDir     string `json:"data_dir,omitempty"`     // Reference data directory; empty uses the embedded data
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP port for serve
	TierScheme  string `json:"tier_scheme,omitempty"`  // standard or wide
	LogLevel    string `json:"log_level,omitempty"`    // debug, info, warn, error
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information

	ResultCacheSize int `json:"result_cache_size,omitempty"` // Stored results cached by serve; negative disables
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are left to CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}

	if _, err := scoring.BandsFor(c.TierScheme); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.DataDir != "" {
		info, err := os.Stat(c.DataDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: data directory not found: %s", c.DataDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: data_dir is not a directory: %s", c.DataDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TierScheme == "" {
		result.TierScheme = defaults.TierScheme
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}

	if result.ResultCacheSize == 0 {
		if defaults.ResultCacheSize != 0 {
			result.ResultCacheSize = defaults.ResultCacheSize
		} else {
			result.ResultCacheSize = DefaultResultCacheSize
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FillFromEnv fills empty fields from the environment.
func (c *Config) FillFromEnv() {
	fill := func(field *string, key string) {
		if *field == "" {
			*field = os.Getenv(key)
		}
	}
	fill(&c.DatabaseURL, EnvDatabaseURL)
	fill(&c.DataDir, EnvDataDir)
	fill(&c.TierScheme, EnvTierScheme)
}

// Bands returns the tier bands selected by TierScheme.
func (c *Config) Bands() (scoring.Bands, error) {
	return scoring.BandsFor(c.TierScheme)
}
