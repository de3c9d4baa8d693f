// Package config holds the YAML configuration of the sparsead command.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/sparsead/ad"
	"github.com/katalvlaran/sparsead/batch"
	"github.com/katalvlaran/sparsead/sparse"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file values.
const (
	EnvTolerance  = "SPARSEAD_TOLERANCE"
	EnvStep       = "SPARSEAD_STEP"
	EnvAccessMode = "SPARSEAD_ACCESS_MODE"
	EnvWorkers    = "SPARSEAD_WORKERS"
	EnvLogLevel   = "SPARSEAD_LOG_LEVEL"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the top-level configuration.
type Config struct {
	Check   CheckConfig   `yaml:"check"`
	Engine  EngineConfig  `yaml:"engine"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// CheckConfig configures finite-difference verification.
type CheckConfig struct {
	Tolerance float64 `yaml:"tolerance"`
	Step      float64 `yaml:"step"`
}

// EngineConfig configures sparse arrays.
type EngineConfig struct {
	// AccessMode is "checked" or "trusted".
	AccessMode string `yaml:"access_mode"`
}

// BatchConfig configures the batch evaluator.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Check: CheckConfig{
			Tolerance: ad.DefaultTolerance,
			Step:      ad.DefaultStep,
		},
		Engine:  EngineConfig{AccessMode: sparse.DefaultAccessMode.String()},
		Batch:   BatchConfig{Workers: batch.DefaultWorkers},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvTolerance); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTolerance, err)
		}
		c.Check.Tolerance = f
	}
	if v := os.Getenv(EnvStep); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStep, err)
		}
		c.Check.Step = f
	}
	if v := os.Getenv(EnvAccessMode); v != "" {
		c.Engine.AccessMode = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Batch.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	if !positive(c.Check.Tolerance) {
		return fmt.Errorf("check.tolerance %v: %w", c.Check.Tolerance, ErrInvalid)
	}
	if !positive(c.Check.Step) {
		return fmt.Errorf("check.step %v: %w", c.Check.Step, ErrInvalid)
	}
	if _, err := sparse.ParseAccessMode(c.Engine.AccessMode); err != nil {
		return fmt.Errorf("engine.access_mode: %w", err)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers %d: %w", c.Batch.Workers, ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	return nil
}

func positive(f float64) bool { return f > 0 && !math.IsInf(f, 0) }

// AccessMode returns the parsed engine access mode. Call Validate first.
func (c *Config) AccessMode() sparse.AccessMode {
	m, err := sparse.ParseAccessMode(c.Engine.AccessMode)
	if err != nil {
		return sparse.DefaultAccessMode
	}

	return m
}

// CheckOptions returns the gradient-check options. Call Validate first.
func (c *Config) CheckOptions() []ad.CheckOption {
	return []ad.CheckOption{ad.WithStep(c.Check.Step), ad.WithTolerance(c.Check.Tolerance)}
}

// BatchOptions returns evaluator options using logger. Call Validate first.
func (c *Config) BatchOptions(logger *zap.Logger) []batch.Option {
	return []batch.Option{
		batch.WithWorkers(c.Batch.Workers),
		batch.WithLogger(logger),
		batch.WithAccessMode(c.AccessMode()),
		batch.WithCheckOptions(c.CheckOptions()...),
	}
}

// Logger builds a production zap logger at the configured level; verbose
// forces debug.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
