package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidLogLevel = errors.New("unknown log level")
	ErrInvalidPageRank = errors.New("invalid pagerank settings")
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	PageRank PageRank `yaml:"pagerank"`
}

type PageRank struct {
	DampingFactor float64 `yaml:"damping-factor" env:"PAGERANK_DAMPING_FACTOR" env-default:"0.85"`
	Samples       int     `yaml:"samples" env:"PAGERANK_SAMPLES" env-default:"10000"`
	Tolerance     float64 `yaml:"tolerance" env:"PAGERANK_TOLERANCE" env-default:"0.001"`
	MaxIterations int     `yaml:"max-iterations" env:"PAGERANK_MAX_ITERATIONS" env-default:"0"`
	// Seed drives the sampling estimator; zero means seed from the clock.
	Seed int64 `yaml:"seed" env:"PAGERANK_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file at path. A missing file is not an error: the
// values then come from the environment and the defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	return that.PageRank.Validate()
}

func (that *PageRank) Validate() error {
	if !(that.DampingFactor >= 0 && that.DampingFactor <= 1) {
		return fmt.Errorf("%w: damping-factor %v is outside [0, 1]", ErrInvalidPageRank, that.DampingFactor)
	}

	if that.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidPageRank, that.Samples)
	}

	if that.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidPageRank, that.Tolerance)
	}

	if that.MaxIterations < 0 {
		return fmt.Errorf("%w: max-iterations must not be negative, got %d", ErrInvalidPageRank, that.MaxIterations)
	}

	return nil
}
