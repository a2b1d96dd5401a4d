// Package config loads formguard settings from the environment, after an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the runtime settings shared by the CLI commands.
type Config struct {
	LogLevel    string   `env:"FORMGUARD_LOG_LEVEL" envDefault:"info"`
	LogFormat   string   `env:"FORMGUARD_LOG_FORMAT" envDefault:"text"`
	MetricsAddr string   `env:"FORMGUARD_METRICS_ADDR"`
	PageSize    int      `env:"FORMGUARD_PAGE_SIZE" envDefault:"7"`
	Regions     []string `env:"FORMGUARD_REGIONS" envSeparator:","`
}

// Load reads the given .env files (default ".env"), then parses the process
// environment. Missing .env files are ignored; variables already set win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg.normalize()
}

// FromMap parses cfg from an explicit environment instead of the process one.
func FromMap(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	regions := c.Regions[:0]
	for _, region := range c.Regions {
		if region = strings.ToLower(strings.TrimSpace(region)); region != "" {
			regions = append(regions, region)
		}
	}
	c.Regions = regions
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page size %d", ErrInvalid, c.PageSize)
	}
	return nil
}
