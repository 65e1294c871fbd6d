package utils

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultAliveGlyph = "▣"
	defaultDeadGlyph  = "▢"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	UseParallel  bool   `json:"use_parallel" yaml:"use_parallel"`
	Workers      int    `json:"workers" yaml:"workers"` // 0 means runtime.NumCPU()
	AliveGlyph   string `json:"alive_glyph" yaml:"alive_glyph"`
	DeadGlyph    string `json:"dead_glyph" yaml:"dead_glyph"`
	DetectCycles bool   `json:"detect_cycles" yaml:"detect_cycles"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
	PatternsFile string `json:"patterns_file" yaml:"patterns_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		UseParallel:  false,
		Workers:      0,
		AliveGlyph:   defaultAliveGlyph,
		DeadGlyph:    defaultDeadGlyph,
		DetectCycles: true,
		LogLevel:     "info",
	}
}

// LoadConfig loads configuration from a YAML (or JSON) file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the config can drive a run
func (c Config) Validate() error {
	if c.AliveGlyph == "" || c.DeadGlyph == "" {
		return errors.Wrap(ErrInvalidConfig, "glyphs must not be empty")
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	return nil
}
