// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ZoneDemo      = "demo"
	ZoneDiscovery = "discovery"
)

// Config is the sandbox configuration.
type Config struct {
	RunSeed    int32  `env:"CINDER_SEED" envDefault:"20240601"`
	MapWidth   int    `env:"CINDER_MAP_WIDTH" envDefault:"32"`
	MapHeight  int    `env:"CINDER_MAP_HEIGHT" envDefault:"24"`
	Zone       string `env:"CINDER_ZONE" envDefault:"demo"`
	ContentDir string `env:"CINDER_CONTENT_DIR"`
	Lang       string `env:"CINDER_LANG" envDefault:"en"`
	RunLogDir  string `env:"CINDER_RUNLOG_DIR"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"LOG_FILE"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	if c.MapWidth < 3 || c.MapHeight < 3 {
		return fmt.Errorf("map size %dx%d: width and height must be at least 3", c.MapWidth, c.MapHeight)
	}
	switch c.Zone {
	case ZoneDemo, ZoneDiscovery:
	default:
		return fmt.Errorf("unknown zone %q (want %q or %q)", c.Zone, ZoneDemo, ZoneDiscovery)
	}
	return nil
}

// SeedValue binds a run seed to a command-line flag. Values outside the
// int32 range are rejected rather than truncated.
type SeedValue struct{ Seed *int32 }

func (v SeedValue) String() string {
	if v.Seed == nil {
		return "0"
	}
	return strconv.FormatInt(int64(*v.Seed), 10)
}

func (v SeedValue) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fmt.Errorf("seed %q: want a 32-bit integer: %w", s, err)
	}
	*v.Seed = int32(n)
	return nil
}
