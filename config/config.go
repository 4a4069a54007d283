// Package config loads runtime settings for the aoc command.
//
// Sources are applied in order, each overriding the previous one:
//
//  1. built-in defaults;
//  2. a .env file in the working directory, if present;
//  3. a YAML file, if a path is given;
//  4. environment variables prefixed with AOC_ (AOC_INPUT_DIR, AOC_LOG_LEVEL,
//     AOC_CACHE_REDIS_URL, ...).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2021/logger"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "AOC"

// Config is the full runtime configuration.
type Config struct {
	InputDir string        `yaml:"input_dir" envconfig:"INPUT_DIR"`
	Workers  int           `yaml:"workers" envconfig:"WORKERS"`
	Log      logger.Config `yaml:"log" envconfig:"LOG"`
	Cache    CacheConfig   `yaml:"cache" envconfig:"CACHE"`
}

// CacheConfig controls the optional answer cache.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled" envconfig:"ENABLED"`
	RedisURL string        `yaml:"redis_url" envconfig:"REDIS_URL"`
	TTL      time.Duration `yaml:"ttl" envconfig:"TTL"`
	Prefix   string        `yaml:"prefix" envconfig:"PREFIX"`
	// Dir holds one JSON file per answer when RedisURL is empty.
	Dir string `yaml:"dir" envconfig:"DIR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InputDir: "inputs",
		Workers:  runtime.NumCPU(),
		Log: logger.Config{
			Level:      "info",
			Format:     "console",
			Output:     "stderr",
			FilePath:   "logs/aoc.log",
			TimeFormat: "rfc3339",
		},
		Cache: CacheConfig{
			TTL:    30 * 24 * time.Hour,
			Prefix: "aoc2021",
			Dir:    ".aoc-cache",
		},
	}
}

// Load builds a Config from defaults, .env, the optional YAML file at path
// and the environment. A missing .env is ignored; a missing YAML file named
// explicitly is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing YAML %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	return &cfg, nil
}
