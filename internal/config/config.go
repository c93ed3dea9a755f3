// Package config loads runtime settings for the memfit binaries from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/joshuapare/memfit/alloc"
	"github.com/joshuapare/memfit/internal/logger"
	"github.com/joshuapare/memfit/pool"
)

const envVarPrefix = "MEMFIT"

// Config holds settings shared by memfitctl and memfitexplorer.
// Command-line flags take precedence over these values.
type Config struct {
	// PoolFile is a pool definition document. Empty means the demo pool.
	PoolFile string `envconfig:"POOL_FILE"`
	Strategy string `envconfig:"STRATEGY"  default:"first-fit"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDir   string `envconfig:"LOG_DIR"`
	NoColor  bool   `envconfig:"NO_COLOR"`
}

// Load reads the given dotenv files (missing files are skipped) and then the
// MEMFIT_* environment. Values already in the environment win over dotenv
// files.
func Load(dotenvFiles ...string) (*Config, error) {
	for _, path := range dotenvFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	var c Config
	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	return &c, nil
}

// Validate checks the strategy name and log level.
func (c *Config) Validate() error {
	if _, err := alloc.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("invalid %s_STRATEGY: %w", envVarPrefix, err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s_LOG_LEVEL: %w", envVarPrefix, err)
	}
	return nil
}

// StrategyValue returns the parsed strategy.
func (c *Config) StrategyValue() (alloc.Strategy, error) {
	return alloc.ParseStrategy(c.Strategy)
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() slog.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// Pool loads the configured pool definition, or returns the demo pool.
func (c *Config) Pool() (*pool.Pool, error) {
	if c.PoolFile == "" {
		return pool.Default(), nil
	}
	return pool.LoadFile(c.PoolFile)
}
