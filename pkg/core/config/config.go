package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
	aoclog "github.com/msto63/aoc2023/foundation/core/log"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Puzzles PuzzlesConfig `toml:"puzzles" yaml:"puzzles"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string   `toml:"log_level" yaml:"log_level"`
	LogFormat string   `toml:"log_format" yaml:"log_format"`
	Timeout   Duration `toml:"timeout" yaml:"timeout"`
}

// PuzzlesConfig locates the puzzle inputs
type PuzzlesConfig struct {
	InputDir string            `toml:"input_dir" yaml:"input_dir"`
	Inputs   map[string]string `toml:"inputs" yaml:"inputs"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
// Values missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, aocerror.Wrap(err, "config file not readable").
			WithCode(aocerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, aocerror.Newf("unsupported config format %q", ext).
			WithCode(aocerror.CodeInvalidConfig).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, aocerror.Wrap(err, "failed to parse config").
			WithCode(aocerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path, or returns the defaults when path is empty
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.General.Timeout.Duration == 0 {
		c.General.Timeout.Duration = time.Minute
	}

	if c.Puzzles.InputDir == "" {
		c.Puzzles.InputDir = "./input"
	}
	if c.Puzzles.Inputs == nil {
		c.Puzzles.Inputs = make(map[string]string)
	}
}

// expandEnvVars expands environment variables in configured paths
func (c *Config) expandEnvVars() {
	c.Puzzles.InputDir = os.ExpandEnv(c.Puzzles.InputDir)
	for day, path := range c.Puzzles.Inputs {
		c.Puzzles.Inputs[day] = os.ExpandEnv(path)
	}
}

// Validate checks the configuration for values the CLI cannot use
func (c *Config) Validate() error {
	if _, err := aoclog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := aoclog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat)
	}
	if c.General.Timeout.Duration < 0 {
		return invalid("general.timeout", c.General.Timeout.String())
	}
	if strings.TrimSpace(c.Puzzles.InputDir) == "" {
		return invalid("puzzles.input_dir", c.Puzzles.InputDir)
	}
	for day := range c.Puzzles.Inputs {
		if n, err := strconv.Atoi(day); err != nil || n < 1 || n > 25 {
			return invalid("puzzles.inputs", day)
		}
	}
	return nil
}

// InputPath returns the input file for day: the per-day override if one is
// configured, otherwise dayN.txt in the input directory.
func (c *Config) InputPath(day int) string {
	if path, ok := c.Puzzles.Inputs[strconv.Itoa(day)]; ok && path != "" {
		return path
	}
	return filepath.Join(c.Puzzles.InputDir, fmt.Sprintf("day%d.txt", day))
}

func invalid(key, value string) error {
	return aocerror.Newf("invalid configuration value for %s: %q", key, value).
		WithCode(aocerror.CodeInvalidConfig).
		WithDetail("key", key).
		WithDetail("value", value)
}
